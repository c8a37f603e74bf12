package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/revenda/internal/dashboard"
)

const chartHeight = 10

func (m *model) refreshSummary() {
	sum, err := m.sess.Summary(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	m.summary = sum
}

func (m model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.ActionFor(msg.String(), scopeDashboard) {
	case actionBack:
		m.focus = focusSidebar
	case actionQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) dashboardView(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Visão Geral"))
	b.WriteString("\n\n")
	b.WriteString(renderCards(dashboard.Cards(m.summary), width))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Distribuição do Estoque"))
	b.WriteString("\n")
	b.WriteString(renderStatusChart(dashboard.Slices(m.summary), width))
	return b.String()
}

// renderCards lays the stat cards out in one row, or two when narrow.
func renderCards(cards []dashboard.StatCard, width int) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		value := lipgloss.NewStyle().Foreground(toneColor(c.Tone)).Bold(true).Render(c.Value)
		rendered[i] = cardStyle.BorderForeground(toneColor(c.Tone)).
			Render(cardTitleStyle.Render(c.Title) + "\n" + value)
	}
	if len(rendered) == 0 {
		return ""
	}
	if lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, rendered...)) <= width {
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}
	var rows []string
	for i := 0; i < len(rendered); i += 2 {
		end := min(i+2, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStatusChart draws one bar per non-empty status with a legend below.
func renderStatusChart(slices []dashboard.Slice, width int) string {
	if len(slices) == 0 {
		return mutedStyle.Render("Sem dados para exibir")
	}
	data := make([]barchart.BarData, 0, len(slices))
	legend := make([]string, 0, len(slices))
	for _, sl := range slices {
		style := lipgloss.NewStyle().Foreground(statusColor(sl.Status))
		data = append(data, barchart.BarData{
			Label: sl.Label,
			Values: []barchart.BarValue{
				{Name: sl.Label, Value: float64(sl.Value), Style: style},
			},
		})
		legend = append(legend, style.Render("■")+" "+fmt.Sprintf("%s: %d", sl.Label, sl.Value))
	}

	chartWidth := min(width-2, 18*len(slices))
	chart := barchart.New(chartWidth, chartHeight)
	chart.PushAll(data)
	chart.Draw()
	return chart.View() + "\n" + strings.Join(legend, "   ")
}
