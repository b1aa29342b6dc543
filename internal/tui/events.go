package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/damalga/funkhunt/internal/tui/common"
)

// HandleKey routes one key event to the handler for the current mode.
// It mutates state and returns at most one Action for the controller
// to execute; nil means the event was fully handled internally. Keys
// that no handler claims are ignored, never an error.
func HandleKey(msg tea.KeyMsg, keys keyMap, st *State) common.Action {
	switch st.mode {
	case common.SelectingLocation:
		return handleSelectingLocation(msg, keys, st)
	default:
		return handleBrowsing(msg, keys, st)
	}
}

func handleBrowsing(msg tea.KeyMsg, keys keyMap, st *State) common.Action {
	switch {
	case key.Matches(msg, keys.Quit):
		st.RequestQuit()

	case key.Matches(msg, keys.Up):
		st.MoveSelectionUp()

	case key.Matches(msg, keys.Down):
		st.MoveSelectionDown()

	case key.Matches(msg, keys.Confirm):
		if book, ok := st.SelectedBook(); ok {
			return common.OpenEntry{Book: book}
		}

	case key.Matches(msg, keys.Yank):
		if book, ok := st.SelectedBook(); ok {
			return common.CopyLocation{Location: book.Path}
		}

	case key.Matches(msg, keys.AddLocation):
		st.mode = common.SelectingLocation
		// Reload so the popup reflects current filesystem state
		st.browser.Reload()
	}
	return nil
}

func handleSelectingLocation(msg tea.KeyMsg, keys keyMap, st *State) common.Action {
	switch {
	case key.Matches(msg, keys.Up):
		st.browser.MoveCursorUp()

	case key.Matches(msg, keys.Down):
		st.browser.MoveCursorDown()

	case key.Matches(msg, keys.Descend):
		st.browser.DescendIntoSelected()

	case key.Matches(msg, keys.Ascend):
		st.browser.Ascend()

	case key.Matches(msg, keys.Confirm):
		location := st.browser.Path()
		st.mode = common.Browsing
		return common.RequestScan{Location: location}

	case key.Matches(msg, keys.Cancel):
		st.mode = common.Browsing
	}
	return nil
}
