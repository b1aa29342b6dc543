// Package tui implements the interactive catalogue browser: the
// application state machine, the event router and the bubbletea
// controller that ties them to the terminal.
package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/damalga/funkhunt/internal/catalogue"
	"github.com/damalga/funkhunt/internal/log"
	"github.com/damalga/funkhunt/internal/tui/common"
	"github.com/damalga/funkhunt/internal/tui/messages"
	"github.com/damalga/funkhunt/internal/tui/styles"
	"github.com/damalga/funkhunt/internal/tui/views"
	"github.com/damalga/funkhunt/internal/watch"
)

// Options configures a new Model
type Options struct {
	Books         []catalogue.Book
	Locations     []string
	Scanner       *catalogue.Scanner
	Watcher       *watch.Watcher // may be nil
	ViewerCommand string
}

// Model is the bubbletea controller around the application state: it
// routes key events, executes the actions the router returns, and
// folds scan results back into the state. All mutation happens on the
// bubbletea update loop, so the state has exactly one writer.
type Model struct {
	state         *State
	keys          keyMap
	scanner       *catalogue.Scanner
	watcher       *watch.Watcher
	viewerCommand string

	help     help.Model
	spinner  spinner.Model
	scanning bool
	status   string
	width    int
	height   int
}

// New creates the controller model
func New(opts Options) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return &Model{
		state:         NewState(opts.Books, opts.Locations),
		keys:          newKeyMap(),
		scanner:       opts.Scanner,
		watcher:       opts.Watcher,
		viewerCommand: opts.ViewerCommand,
		help:          help.New(),
		spinner:       sp,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.waitForLibraryChange()
	}
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case spinner.TickMsg:
		if m.scanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case messages.ScanCompleteMsg:
		m.scanning = false
		m.state.ExtendCatalogue(msg.Location, msg.Books)
		m.status = fmt.Sprintf("%d books in library after scanning %s", len(m.state.Catalogue()), msg.Location)
		if m.watcher != nil {
			if err := m.watcher.AddLocation(msg.Location); err != nil {
				log.LogWithFields(log.F("location", msg.Location), log.F("error", err)).Warn("could not watch location")
			}
		}

	case messages.LibraryChangedMsg:
		log.LogWithFields(log.F("location", msg.Location)).Debug("library changed, rescanning")
		cmds := []tea.Cmd{m.scanCmd(msg.Location)}
		if m.watcher != nil {
			cmds = append(cmds, m.waitForLibraryChange())
		}
		return m, tea.Batch(cmds...)

	case messages.ErrorMsg:
		m.status = msg.Err.Error()
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	action := HandleKey(msg, m.keys, m.state)
	if m.state.QuitRequested() {
		return m, tea.Quit
	}
	if action == nil {
		return m, nil
	}
	return m, m.runAction(action)
}

// runAction executes one controller-side effect requested by the
// router. Failures degrade to a log line or a status message; the
// core never sees them.
func (m *Model) runAction(action common.Action) tea.Cmd {
	switch a := action.(type) {
	case common.RequestScan:
		m.scanning = true
		m.status = "Scanning " + a.Location
		return tea.Batch(m.spinner.Tick, m.scanCmd(a.Location))

	case common.OpenEntry:
		if err := a.Book.Open(m.viewerCommand); err != nil {
			log.LogWithFields(log.F("book", a.Book.Path), log.F("error", err)).Warn("viewer launch failed")
		}

	case common.CopyLocation:
		if err := clipboard.WriteAll(a.Location); err != nil {
			log.LogWithFields(log.F("error", err)).Warn("clipboard write failed")
		} else {
			m.status = "Copied " + a.Location
		}
	}
	return nil
}

func (m *Model) scanCmd(location string) tea.Cmd {
	return func() tea.Msg {
		return messages.ScanCompleteMsg{
			Location: location,
			Books:    m.scanner.Scan(location),
		}
	}
}

// waitForLibraryChange blocks on the watcher until a location needs a
// rescan. Re-armed after every LibraryChangedMsg.
func (m *Model) waitForLibraryChange() tea.Cmd {
	return func() tea.Msg {
		location, ok := <-m.watcher.Changes()
		if !ok {
			return nil
		}
		return messages.LibraryChangedMsg{Location: location}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMain(m)
}

// ModelReader implementation, read by the views.

// Mode returns the active interaction mode
func (m *Model) Mode() common.Mode { return m.state.Mode() }

// Catalogue returns the books in the library
func (m *Model) Catalogue() []catalogue.Book { return m.state.Catalogue() }

// SelectedIndex returns the catalogue selection cursor
func (m *Model) SelectedIndex() int { return m.state.SelectedIndex() }

// SelectedDetails returns the details block for the selected book
func (m *Model) SelectedDetails() string {
	book, ok := m.state.SelectedBook()
	if !ok {
		return "No book selected"
	}
	return book.Describe()
}

// ScannedLocations returns every catalogued location
func (m *Model) ScannedLocations() []string { return m.state.ScannedLocations() }

// BrowserPath returns the directory the popup is browsing
func (m *Model) BrowserPath() string { return m.state.Browser().Path() }

// BrowserEntries returns the popup's directory entries
func (m *Model) BrowserEntries() []common.DirEntry { return m.state.Browser().Entries() }

// BrowserCursor returns the popup's selection cursor
func (m *Model) BrowserCursor() int { return m.state.Browser().Cursor() }

// Scanning reports whether a requested scan is in flight
func (m *Model) Scanning() bool { return m.scanning }

// SpinnerView returns the current spinner frame
func (m *Model) SpinnerView() string { return m.spinner.View() }

// StatusMessage returns the transient status line
func (m *Model) StatusMessage() string { return m.status }

// HelpView renders the footer keybind help for the active mode
func (m *Model) HelpView() string {
	if m.state.Mode() == common.SelectingLocation {
		return m.help.ShortHelpView(m.keys.selectingHelp())
	}
	return m.help.ShortHelpView(m.keys.browsingHelp())
}

// Width returns the terminal width
func (m *Model) Width() int { return m.width }

// Height returns the terminal height
func (m *Model) Height() int { return m.height }
