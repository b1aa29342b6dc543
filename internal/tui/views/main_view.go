// Package views renders the application state. Views are pure
// consumers of the ModelReader interface and never mutate state.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/damalga/funkhunt/internal/tui/common"
	"github.com/damalga/funkhunt/internal/tui/styles"
)

// RenderMain draws the full frame for the current mode
func RenderMain(m common.ModelReader) string {
	if m.Mode() == common.SelectingLocation {
		return renderLocationPopup(m)
	}

	w, h := frameSize(m)
	header := renderHeader(m, w)
	footer := renderFooter(m, w)

	bodyHeight := h - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	listWidth := w / 2
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderBookList(m, listWidth, bodyHeight),
		renderDetails(m, w-listWidth, bodyHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func renderHeader(m common.ModelReader, width int) string {
	locations := m.ScannedLocations()
	var pathInfo string
	switch len(locations) {
	case 0:
		pathInfo = "No folders added"
	case 1:
		pathInfo = locations[0]
	default:
		pathInfo = fmt.Sprintf("%d folders", len(locations))
	}
	text := fmt.Sprintf("FunkHunt | Books: %d | %s", len(m.Catalogue()), pathInfo)
	return styles.Header.Width(width - 2).Render(text)
}

func renderBookList(m common.ModelReader, width, height int) string {
	var sb strings.Builder
	books := m.Catalogue()
	sb.WriteString(styles.PaneTitle.Render(fmt.Sprintf("Books (%d)", len(books))))
	sb.WriteString("\n")

	if len(books) == 0 {
		sb.WriteString(styles.Empty.Render("No books yet. Press a to add a folder."))
	} else {
		visible := height - 3 // border and title
		if visible < 1 {
			visible = 1
		}
		start := 0
		if m.SelectedIndex() >= visible {
			start = m.SelectedIndex() - visible + 1
		}
		for i := start; i < len(books) && i < start+visible; i++ {
			if i == m.SelectedIndex() {
				sb.WriteString(styles.Selected.Render("> " + books[i].Name))
			} else {
				sb.WriteString(styles.Unselected.Render("  " + books[i].Name))
			}
			sb.WriteString("\n")
		}
	}
	return styles.Pane.Width(width - 2).Height(height - 2).Render(sb.String())
}

func renderDetails(m common.ModelReader, width, height int) string {
	var sb strings.Builder
	sb.WriteString(styles.PaneTitle.Render("Details"))
	sb.WriteString("\n")
	sb.WriteString(m.SelectedDetails())
	return styles.Pane.Width(width - 2).Height(height - 2).Render(sb.String())
}

func renderFooter(m common.ModelReader, width int) string {
	var parts []string
	if m.Scanning() {
		parts = append(parts, m.SpinnerView()+" "+styles.Status.Render(m.StatusMessage()))
	} else if m.StatusMessage() != "" {
		parts = append(parts, styles.Status.Render(m.StatusMessage()))
	}
	parts = append(parts, m.HelpView())
	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, "  "))
}

func frameSize(m common.ModelReader) (int, int) {
	w, h := m.Width(), m.Height()
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}
