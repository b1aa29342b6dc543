package watch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := New(func(path string) bool {
		return strings.HasSuffix(strings.ToLower(path), ".epub")
	})
	require.NoError(t, err)
	w.debounce = 50 * time.Millisecond
	t.Cleanup(w.Stop)
	return w
}

func TestWatcherRescanOnMatchingFile(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)
	require.NoError(t, w.AddLocation(dir))
	require.NoError(t, w.Start())

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.epub"), []byte("book"), 0o644))

	select {
	case location := <-w.Changes():
		assert.Equal(t, dir, location)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a rescan notification")
	}
}

func TestWatcherIgnoresNonMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)
	require.NoError(t, w.AddLocation(dir))
	require.NoError(t, w.Start())

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("img"), 0o644))

	select {
	case location := <-w.Changes():
		t.Fatalf("unexpected rescan notification for %s", location)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)
	require.NoError(t, w.AddLocation(dir))
	require.NoError(t, w.Start())

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "book.epub")
		require.NoError(t, os.WriteFile(name, []byte(strings.Repeat("x", i+1)), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("expected a rescan notification")
	}

	// The burst collapses into a single notification
	select {
	case <-w.Changes():
		t.Fatal("expected the burst to be debounced into one notification")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherAddLocation(t *testing.T) {
	w := newTestWatcher(t)

	t.Run("missing_directory", func(t *testing.T) {
		assert.Error(t, w.AddLocation(filepath.Join(t.TempDir(), "nope")))
	})

	t.Run("not_a_directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.epub")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		assert.Error(t, w.AddLocation(file))
	})

	t.Run("duplicate_is_recorded_once", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, w.AddLocation(dir))
		require.NoError(t, w.AddLocation(dir))
		assert.Equal(t, []string{dir}, w.Locations())
	})
}

func TestWatcherLifecycle(t *testing.T) {
	w := newTestWatcher(t)
	require.NoError(t, w.Start())

	assert.Error(t, w.Start(), "second start must fail")

	w.Stop()
	w.Stop() // idempotent
}
