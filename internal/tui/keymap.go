package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Confirm     key.Binding
	AddLocation key.Binding
	Yank        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	Descend     key.Binding
	Ascend      key.Binding
	Cancel      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		AddLocation: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add folder")),
		Yank:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		Descend:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "enter dir")),
		Ascend:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "parent dir")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// browsingHelp is the footer help for the catalogue view
func (k keyMap) browsingHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.AddLocation, k.Yank, k.Quit}
}

// selectingHelp is the footer help for the directory popup. Confirm
// means "scan this folder" here, so the help label differs.
func (k keyMap) selectingHelp() []key.Binding {
	confirm := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "scan folder"))
	return []key.Binding{k.Up, k.Down, k.Descend, k.Ascend, confirm, k.Cancel}
}
