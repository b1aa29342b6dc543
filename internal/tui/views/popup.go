package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/damalga/funkhunt/internal/tui/common"
	"github.com/damalga/funkhunt/internal/tui/styles"
)

// renderLocationPopup draws the directory-browser modal, centered on
// the frame, for picking a new folder to scan.
func renderLocationPopup(m common.ModelReader) string {
	w, h := frameSize(m)
	boxWidth := w * 9 / 10
	boxHeight := h * 4 / 5
	if boxWidth < 20 {
		boxWidth = 20
	}
	if boxHeight < 6 {
		boxHeight = 6
	}

	var sb strings.Builder
	sb.WriteString(styles.PaneTitle.Render("Add folder"))
	sb.WriteString("\n")
	sb.WriteString(styles.PopupPath.Render(m.BrowserPath()))
	sb.WriteString("\n\n")

	entries := m.BrowserEntries()
	if len(entries) == 0 {
		sb.WriteString(styles.Empty.Render("(empty)"))
		sb.WriteString("\n")
	} else {
		visible := boxHeight - 7 // border, title, path line, help
		if visible < 1 {
			visible = 1
		}
		start := 0
		if m.BrowserCursor() >= visible {
			start = m.BrowserCursor() - visible + 1
		}
		for i := start; i < len(entries) && i < start+visible; i++ {
			if i == m.BrowserCursor() {
				sb.WriteString(styles.Selected.Render("> " + entries[i].Name + "/"))
			} else {
				sb.WriteString(styles.Unselected.Render("  " + entries[i].Name + "/"))
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(m.HelpView())

	box := styles.Popup.Width(boxWidth - 2).Height(boxHeight - 2).Render(sb.String())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}
