package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damalga/funkhunt/internal/catalogue"
)

func browserAt(t *testing.T, dir string) *DirectoryBrowser {
	t.Helper()
	b := &DirectoryBrowser{path: dir}
	b.Reload()
	return b
}

func entryNames(b *DirectoryBrowser) []string {
	names := make([]string, 0, len(b.Entries()))
	for _, e := range b.Entries() {
		names = append(names, e.Name)
	}
	return names
}

func testBooks() []catalogue.Book {
	return []catalogue.Book{
		catalogue.NewBook("alpha.epub", "/lib/alpha.epub"),
		catalogue.NewBook("beta.epub", "/lib/beta.epub"),
	}
}

func TestDirectoryBrowserReload(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b", "A", "c", ".git", ".cache"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.txt"), []byte("x"), 0o644))

	b := browserAt(t, dir)

	t.Run("filters_and_sorts", func(t *testing.T) {
		assert.Equal(t, []string{"A", "b", "c"}, entryNames(b))
		assert.Equal(t, 0, b.Cursor())
	})

	t.Run("stable_across_reloads", func(t *testing.T) {
		b.Reload()
		assert.Equal(t, []string{"A", "b", "c"}, entryNames(b))
	})

	t.Run("reload_resets_cursor", func(t *testing.T) {
		b.MoveCursorDown()
		b.MoveCursorDown()
		require.Equal(t, 2, b.Cursor())
		b.Reload()
		assert.Equal(t, 0, b.Cursor())
	})

	t.Run("unreadable_path_degrades_to_empty", func(t *testing.T) {
		missing := browserAt(t, filepath.Join(dir, "nope"))
		assert.Empty(t, missing.Entries())
		assert.Equal(t, 0, missing.Cursor())
	})
}

func TestDirectoryBrowserCursorBounds(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one", "two", "three"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}
	b := browserAt(t, dir)

	for i := 0; i < 10; i++ {
		b.MoveCursorUp()
	}
	assert.Equal(t, 0, b.Cursor())

	for i := 0; i < 10; i++ {
		b.MoveCursorDown()
	}
	assert.Equal(t, len(b.Entries())-1, b.Cursor())

	t.Run("empty_list_stays_at_zero", func(t *testing.T) {
		empty := browserAt(t, t.TempDir())
		empty.MoveCursorDown()
		empty.MoveCursorUp()
		assert.Equal(t, 0, empty.Cursor())
	})
}

func TestDirectoryBrowserNavigation(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "outer", "inner"), 0o755))

	b := browserAt(t, root)
	require.Equal(t, []string{"outer"}, entryNames(b))

	b.DescendIntoSelected()
	assert.Equal(t, filepath.Join(root, "outer"), b.Path())
	assert.Equal(t, []string{"inner"}, entryNames(b))
	assert.Equal(t, 0, b.Cursor())

	b.DescendIntoSelected()
	assert.Equal(t, filepath.Join(root, "outer", "inner"), b.Path())
	assert.Empty(t, b.Entries())

	// Nothing selected in an empty directory
	b.DescendIntoSelected()
	assert.Equal(t, filepath.Join(root, "outer", "inner"), b.Path())

	b.Ascend()
	assert.Equal(t, filepath.Join(root, "outer"), b.Path())
	assert.Equal(t, 0, b.Cursor())
}

func TestDirectoryBrowserAscendAtRoot(t *testing.T) {
	b := &DirectoryBrowser{path: string(os.PathSeparator)}
	b.Ascend()
	assert.Equal(t, string(os.PathSeparator), b.Path())
}

func TestStateSelection(t *testing.T) {
	st := NewState(testBooks(), []string{"/lib"})

	book, ok := st.SelectedBook()
	require.True(t, ok)
	assert.Equal(t, "alpha.epub", book.Name)

	for i := 0; i < 5; i++ {
		st.MoveSelectionDown()
	}
	assert.Equal(t, 1, st.SelectedIndex())

	for i := 0; i < 5; i++ {
		st.MoveSelectionUp()
	}
	assert.Equal(t, 0, st.SelectedIndex())
}

func TestStateEmptyCatalogue(t *testing.T) {
	st := NewState(nil, nil)

	_, ok := st.SelectedBook()
	assert.False(t, ok)

	st.MoveSelectionDown()
	st.MoveSelectionUp()
	assert.Equal(t, 0, st.SelectedIndex())
}

func TestStateQuitIsMonotonic(t *testing.T) {
	st := NewState(nil, nil)
	assert.False(t, st.QuitRequested())
	st.RequestQuit()
	assert.True(t, st.QuitRequested())
}

func TestExtendCatalogue(t *testing.T) {
	st := NewState(testBooks(), []string{"/x"})

	st.ExtendCatalogue("/y", []catalogue.Book{catalogue.NewBook("gamma.epub", "/y/gamma.epub")})
	require.Len(t, st.Catalogue(), 3)
	assert.Equal(t, "gamma.epub", st.Catalogue()[2].Name)
	assert.Equal(t, []string{"/x", "/y"}, st.ScannedLocations())

	t.Run("merge_is_idempotent", func(t *testing.T) {
		st.ExtendCatalogue("/y", []catalogue.Book{catalogue.NewBook("gamma.epub", "/y/gamma.epub")})
		assert.Len(t, st.Catalogue(), 3)
		assert.Equal(t, []string{"/x", "/y"}, st.ScannedLocations())
	})

	t.Run("duplicate_paths_are_skipped", func(t *testing.T) {
		st.ExtendCatalogue("/z", []catalogue.Book{
			catalogue.NewBook("alpha.epub", "/lib/alpha.epub"),
			catalogue.NewBook("delta.epub", "/z/delta.epub"),
		})
		assert.Len(t, st.Catalogue(), 4)
		assert.Equal(t, []string{"/x", "/y", "/z"}, st.ScannedLocations())
	})

	t.Run("selection_survives_merge", func(t *testing.T) {
		st.MoveSelectionDown()
		idx := st.SelectedIndex()
		st.ExtendCatalogue("/w", nil)
		assert.Equal(t, idx, st.SelectedIndex())
		assert.Less(t, st.SelectedIndex(), len(st.Catalogue()))
	})
}
