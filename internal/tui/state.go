package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/damalga/funkhunt/internal/catalogue"
	"github.com/damalga/funkhunt/internal/tui/common"
)

// DirectoryBrowser presents a navigable view of one directory level at
// a time, restricted to visible sub-directories, for picking a scan
// root. Every mutating operation leaves the browser self-consistent:
// the cursor never points past the end of the entries.
type DirectoryBrowser struct {
	path    string
	entries []common.DirEntry
	cursor  int
}

// NewDirectoryBrowser seeds the browser at the user's home directory,
// falling back to the filesystem root, and loads its entries.
func NewDirectoryBrowser() *DirectoryBrowser {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = string(os.PathSeparator)
	}
	b := &DirectoryBrowser{path: home}
	b.Reload()
	return b
}

// Path returns the directory currently being browsed
func (b *DirectoryBrowser) Path() string { return b.path }

// Entries returns the visible sub-directories of the current path
func (b *DirectoryBrowser) Entries() []common.DirEntry { return b.entries }

// Cursor returns the index of the selected entry
func (b *DirectoryBrowser) Cursor() int { return b.cursor }

// Reload re-reads the current path: sub-directories only, hidden
// entries dropped, sorted by name ascending. The cursor resets to 0.
// An unreadable path degrades silently to an empty list.
func (b *DirectoryBrowser) Reload() {
	b.entries = nil
	b.cursor = 0

	items, err := os.ReadDir(b.path)
	if err != nil {
		return
	}
	for _, item := range items {
		name := item.Name()
		if strings.HasPrefix(name, ".") || !item.IsDir() {
			continue
		}
		b.entries = append(b.entries, common.DirEntry{
			Name:  name,
			Path:  filepath.Join(b.path, name),
			IsDir: true,
		})
	}
	sort.Slice(b.entries, func(i, j int) bool {
		return b.entries[i].Name < b.entries[j].Name
	})
}

// MoveCursorUp moves the selection up one entry, clamped at the top
func (b *DirectoryBrowser) MoveCursorUp() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveCursorDown moves the selection down one entry, clamped at the
// bottom. No-op on an empty list.
func (b *DirectoryBrowser) MoveCursorDown() {
	if b.cursor < len(b.entries)-1 {
		b.cursor++
	}
}

// DescendIntoSelected navigates into the selected directory and
// reloads. No-op when nothing is selected.
func (b *DirectoryBrowser) DescendIntoSelected() {
	if b.cursor >= len(b.entries) {
		return
	}
	entry := b.entries[b.cursor]
	if !entry.IsDir {
		return
	}
	b.path = entry.Path
	b.Reload()
}

// Ascend navigates to the parent directory and reloads. No-op at the
// filesystem root.
func (b *DirectoryBrowser) Ascend() {
	parent := filepath.Dir(b.path)
	if parent == b.path {
		return
	}
	b.path = parent
	b.Reload()
}

// State is the single source of truth for what is displayed and how
// input is interpreted. It is owned exclusively by the event loop and
// mutated only through the router and the controller's result folding.
type State struct {
	catalogue        []catalogue.Book
	selectedIndex    int
	quitRequested    bool
	scannedLocations []string
	mode             common.Mode
	browser          *DirectoryBrowser
}

// NewState creates the application state from the startup catalogue
// and the locations that produced it.
func NewState(books []catalogue.Book, locations []string) *State {
	return &State{
		catalogue:        books,
		scannedLocations: locations,
		mode:             common.Browsing,
		browser:          NewDirectoryBrowser(),
	}
}

// Catalogue returns the books currently in the library
func (s *State) Catalogue() []catalogue.Book { return s.catalogue }

// SelectedIndex returns the catalogue selection cursor
func (s *State) SelectedIndex() int { return s.selectedIndex }

// ScannedLocations returns every location merged into the catalogue
func (s *State) ScannedLocations() []string { return s.scannedLocations }

// Mode returns the active interaction mode
func (s *State) Mode() common.Mode { return s.mode }

// Browser returns the embedded directory browser
func (s *State) Browser() *DirectoryBrowser { return s.browser }

// QuitRequested reports whether the event loop should terminate.
// Monotonic: nothing resets it.
func (s *State) QuitRequested() bool { return s.quitRequested }

// RequestQuit marks the state for termination
func (s *State) RequestQuit() { s.quitRequested = true }

// SelectedBook returns the book under the selection cursor, or false
// when the catalogue is empty.
func (s *State) SelectedBook() (catalogue.Book, bool) {
	if s.selectedIndex >= len(s.catalogue) {
		return catalogue.Book{}, false
	}
	return s.catalogue[s.selectedIndex], true
}

// MoveSelectionUp moves the catalogue selection up, clamped at the top
func (s *State) MoveSelectionUp() {
	if s.selectedIndex > 0 {
		s.selectedIndex--
	}
}

// MoveSelectionDown moves the catalogue selection down, clamped at the
// bottom. No-op on an empty catalogue.
func (s *State) MoveSelectionDown() {
	if s.selectedIndex < len(s.catalogue)-1 {
		s.selectedIndex++
	}
}

// ExtendCatalogue merges a scan result into the catalogue. Policy is
// accumulate: new books are appended (books whose path is already
// catalogued are skipped) and the location is recorded alongside the
// previously scanned ones.
func (s *State) ExtendCatalogue(location string, books []catalogue.Book) {
	known := make(map[string]struct{}, len(s.catalogue))
	for _, b := range s.catalogue {
		known[b.Path] = struct{}{}
	}
	for _, b := range books {
		if _, dup := known[b.Path]; dup {
			continue
		}
		known[b.Path] = struct{}{}
		s.catalogue = append(s.catalogue, b)
	}

	for _, loc := range s.scannedLocations {
		if loc == location {
			return
		}
	}
	s.scannedLocations = append(s.scannedLocations, location)
}
