package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const sidebarWidth = 22

// contentWidth is the inner width available to the active screen.
func (m model) contentWidth() int {
	if m.width == 0 {
		return 80
	}
	w := m.width - sidebarWidth - 6
	if w < 40 {
		w = 40
	}
	return w
}

// bodyHeight is the number of rows between the header and the status line.
func (m model) bodyHeight() int {
	if m.height == 0 {
		return 24
	}
	h := m.height - 5
	if h < 8 {
		h = 8
	}
	return h
}

func (m *model) resize() {
	m.table.SetWidth(m.contentWidth())
	h := m.bodyHeight() - 8
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
}

func (m model) sidebarView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Menu"))
	b.WriteString("\n\n")
	for i, item := range menuItems() {
		label := ellipsize(item, sidebarWidth-4)
		switch {
		case i == m.menu && m.focus == focusSidebar:
			b.WriteString(menuActiveStyle.Render("> " + label))
		case i == m.menu:
			b.WriteString(menuActiveStyle.Render("  " + label))
		case i == m.exitIndex():
			b.WriteString(menuExitStyle.Render("  " + label))
		default:
			b.WriteString(menuItemStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	style := sidebarStyle
	if m.focus == focusSidebar {
		style = sidebarFocusStyle
	}
	return style.Width(sidebarWidth).Height(m.bodyHeight() - 2).Render(b.String())
}

func (m model) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// full-width lines so nothing from the previous frame survives
	lines := strings.Split(main, "\n")
	for i, line := range lines {
		lines[i] = fitWidth(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

func (m model) composeOverlay(base, statusLine, footer, content string) string {
	baseView := m.placeWithFooter(base, statusLine, footer)
	if m.height == 0 || m.width == 0 {
		return baseView + "\n\n" + content
	}
	modalContent := lipgloss.NewStyle().Width(min(50, m.width-10)).Align(lipgloss.Center).Render(content)
	modal := modalStyle.Render(modalContent)

	rows := max(m.height-2, 1)
	col := max((m.width-lipgloss.Width(modal))/2, 0)
	row := max((rows-lipgloss.Height(modal))/2, 0)
	return stampModal(baseView, modal, col, row, m.width, rows)
}

// stampModal draws modal over frame with its top-left corner at (col, row).
// Only the first rows lines of frame are touched; every touched line comes
// out exactly width cells wide.
func stampModal(frame, modal string, col, row, width, rows int) string {
	out := strings.Split(frame, "\n")
	boxWidth := lipgloss.Width(modal)
	for i, seg := range strings.Split(modal, "\n") {
		r := row + i
		if r < 0 || r >= len(out) || r >= rows {
			continue
		}
		line := fitWidth(out[r], width)
		left := fitWidth(ansi.Truncate(line, col, ""), col)
		right := ansi.TruncateLeft(line, col+boxWidth, "")
		out[r] = left + fitWidth(seg, boxWidth) + right
	}
	return strings.Join(out, "\n")
}

// fitWidth pads s with spaces up to width cells. Longer strings are kept.
func fitWidth(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// ellipsize cuts s to width cells, marking the cut with "…".
func ellipsize(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
