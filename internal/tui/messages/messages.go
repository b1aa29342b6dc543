// Package messages defines the tea.Msg types the controller folds
// back into the application state.
package messages

import "github.com/damalga/funkhunt/internal/catalogue"

// ScanCompleteMsg delivers the result of a requested scan
type ScanCompleteMsg struct {
	Location string
	Books    []catalogue.Book
}

// LibraryChangedMsg reports that a watched location changed on disk
// and should be rescanned
type LibraryChangedMsg struct {
	Location string
}

// ErrorMsg carries a non-fatal error to surface in the status line
type ErrorMsg struct {
	Err error
}
