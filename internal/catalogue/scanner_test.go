package catalogue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damalga/funkhunt/internal/errors"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
	}
}

func bookNames(books []Book) []string {
	names := make([]string, 0, len(books))
	for _, b := range books {
		names = append(names, b.Name)
	}
	return names
}

func TestNewScannerDefaults(t *testing.T) {
	s, err := NewScanner(nil)
	require.NoError(t, err)

	assert.True(t, s.Matches("book.epub"))
	assert.True(t, s.Matches("BOOK.EPUB"))
	assert.True(t, s.Matches("/some/where/book.Epub"))
	assert.False(t, s.Matches("notes.txt"))
	assert.False(t, s.Matches("book.epub.bak"))
}

func TestNewScannerInvalidPattern(t *testing.T) {
	_, err := NewScanner([]string{"["})
	require.Error(t, err)

	var perr *errors.PatternError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.InvalidPattern, perr.Kind())
	assert.Equal(t, "[", perr.Pattern())
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"a.epub",
		filepath.Join("sub", "B.EPUB"),
		filepath.Join(".hidden", "c.epub"),
		"notes.txt",
		filepath.Join("sub", "cover.jpg"),
	)

	s, err := NewScanner(nil)
	require.NoError(t, err)
	books := s.Scan(root)

	// Ordinal name sort: uppercase before lowercase. The recursive
	// scan descends hidden directories, unlike the directory browser.
	assert.Equal(t, []string{"B.EPUB", "a.epub", "c.epub"}, bookNames(books))
	assert.Equal(t, filepath.Join(root, "sub", "B.EPUB"), books[0].Path)
}

func TestScanMissingRoot(t *testing.T) {
	s, err := NewScanner(nil)
	require.NoError(t, err)

	assert.Empty(t, s.Scan(filepath.Join(t.TempDir(), "nope")))
}

func TestScanRootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.epub")

	s, err := NewScanner(nil)
	require.NoError(t, err)

	// WalkDir visits a file root directly; it still has to match
	books := s.Scan(filepath.Join(root, "a.epub"))
	assert.Equal(t, []string{"a.epub"}, bookNames(books))
}

func TestScanMultipleFormats(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.epub", "b.pdf", "c.mobi")

	s, err := NewScanner([]string{"*.epub", "*.pdf"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.epub", "b.pdf"}, bookNames(s.Scan(root)))
}

func TestScanDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		filepath.Join("x", "same.epub"),
		filepath.Join("y", "same.epub"),
	)

	s, err := NewScanner(nil)
	require.NoError(t, err)

	books := s.Scan(root)
	require.Len(t, books, 2)
	assert.Equal(t, filepath.Join(root, "x", "same.epub"), books[0].Path)
	assert.Equal(t, filepath.Join(root, "y", "same.epub"), books[1].Path)
}
