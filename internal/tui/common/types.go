// Package common holds the types shared between the TUI state machine
// and the views that render it.
package common

import "github.com/damalga/funkhunt/internal/catalogue"

// Mode represents the current interaction context of the TUI.
// Exactly one mode is active at any time.
type Mode int

const (
	// Browsing is the default mode: catalogue list and details view
	Browsing Mode = iota
	// SelectingLocation is the directory-browser popup for picking a
	// new folder to scan
	SelectingLocation
)

// DirEntry represents a single entry in the directory browser
type DirEntry struct {
	Name  string
	Path  string
	IsDir bool
}

// Action is a side effect requested by the event router. The router
// itself never touches the filesystem or spawns processes; it returns
// an Action and the controller executes it.
type Action interface {
	isAction()
}

// RequestScan asks the controller to enumerate eligible files under
// Location and fold the result back into the catalogue.
type RequestScan struct {
	Location string
}

// OpenEntry asks the controller to launch the external viewer for a
// book. Fire-and-forget; launch failures are swallowed.
type OpenEntry struct {
	Book catalogue.Book
}

// CopyLocation asks the controller to place a path on the clipboard.
type CopyLocation struct {
	Location string
}

func (RequestScan) isAction()  {}
func (OpenEntry) isAction()    {}
func (CopyLocation) isAction() {}

// ModelReader defines the interface that views use to read model
// state. Views never mutate.
type ModelReader interface {
	Mode() Mode
	Catalogue() []catalogue.Book
	SelectedIndex() int
	SelectedDetails() string
	ScannedLocations() []string
	BrowserPath() string
	BrowserEntries() []DirEntry
	BrowserCursor() int
	Scanning() bool
	SpinnerView() string
	StatusMessage() string
	HelpView() string
	Width() int
	Height() int
}
