package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jask/revenda/internal/database/repository"
	"github.com/jask/revenda/internal/inventory"
	"github.com/jask/revenda/internal/session"
)

const emptyInventoryText = "Nenhum veículo encontrado com os filtros atuais."

func newInventoryTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Modelo", Width: 24},
			{Title: "Placa", Width: 9},
			{Title: "Ano", Width: 5},
			{Title: "Cor", Width: 9},
			{Title: "KM", Width: 10},
			{Title: "Status", Width: 14},
			{Title: "Preço", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSurface2).
		BorderBottom(true).
		Foreground(colorSubtext0).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorBase).
		Background(colorAccent).
		Bold(false)
	t.SetStyles(s)
	return t
}

func vehicleRow(v repository.Vehicle) table.Row {
	year, color, km := "-", "-", "-"
	if v.Year != nil {
		year = strconv.Itoa(*v.Year)
	}
	if v.Color != nil && *v.Color != "" {
		color = *v.Color
	}
	if v.Odometer != nil {
		km = formatKM(*v.Odometer)
	}
	return table.Row{
		strconv.FormatInt(v.ID, 10),
		v.Model,
		v.Plate,
		year,
		color,
		km,
		v.Status.Label(),
		inventory.FormatBRL(v.PriceCents),
	}
}

// formatKM groups thousands with dots as pt-BR does ("45.000").
func formatKM(km int) string {
	return strings.ReplaceAll(humanize.Comma(int64(km)), ",", ".")
}

// refreshInventory reloads the filtered rows and recomputes the empty-state hint.
func (m *model) refreshInventory() {
	rows, err := m.sess.Inventory(m.ctx, m.filter)
	if err != nil {
		m.setError(err)
		return
	}
	m.rows = rows
	tableRows := make([]table.Row, len(rows))
	for i, v := range rows {
		tableRows[i] = vehicleRow(v)
	}
	m.table.SetRows(tableRows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}

	m.hint = ""
	if len(rows) == 0 && m.filter.Query != "" {
		all, err := m.sess.Vehicles(m.ctx)
		if err == nil {
			if s, ok := inventory.Suggest(all, m.filter); ok {
				m.hint = fmt.Sprintf("Você quis dizer %q?", s)
			}
		}
	}
}

func (m *model) cycleStatus(delta int) {
	choices := inventory.FilterChoices()
	m.statusIdx = (m.statusIdx + delta + len(choices)) % len(choices)
	m.filter.Status = choices[m.statusIdx]
	m.refreshInventory()
}

func (m model) updateInventory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}
	switch m.keys.ActionFor(msg.String(), scopeInventory) {
	case actionSearch:
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case actionPrevStatus:
		m.cycleStatus(-1)
	case actionNextStatus:
		m.cycleStatus(1)
	case actionClearSearch:
		m.search.SetValue("")
		m.filter.Query = ""
		m.refreshInventory()
	case actionEdit:
		if len(m.rows) == 0 {
			return m, nil
		}
		id := m.rows[m.table.Cursor()].ID
		if err := m.sess.BeginEdit(m.ctx, id); err != nil {
			m.setError(err)
			return m, nil
		}
		m.menu = int(session.ViewVehicleForm)
		m.status = ""
		cmd := m.loadVehicleForm()
		return m, cmd
	case actionExportCSV:
		cmd := m.exportCmd(inventory.FormatCSV)
		return m, cmd
	case actionExportPDF:
		cmd := m.exportCmd(inventory.FormatPDF)
		return m, cmd
	case actionBack:
		m.focus = focusSidebar
	case actionQuit:
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.ActionFor(msg.String(), scopeSearch) {
	case actionSelect:
		m.searching = false
		m.search.Blur()
		return m, nil
	case actionClearSearch:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.filter.Query = ""
		m.refreshInventory()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.filter.Query {
		m.filter.Query = q
		m.refreshInventory()
	}
	return m, cmd
}

// exportCmd renders the current filtered view off the update loop.
func (m *model) exportCmd(format inventory.Format) tea.Cmd {
	if m.exporting {
		return nil
	}
	m.exporting = true
	m.setStatus(fmt.Sprintf("Exportando %s...", strings.ToUpper(string(format))))
	ctx, sess, filter := m.ctx, m.sess, m.filter
	return func() tea.Msg {
		art, err := sess.Export(ctx, format, filter)
		return exportDoneMsg{art: art, err: err}
	}
}

func (m model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	m.exporting = false
	if msg.err != nil {
		m.status = "Falha ao exportar: " + msg.err.Error()
		m.statusErr = true
		m.log.Error("export failed", "err", msg.err)
		return m, nil
	}
	detail := fmt.Sprintf("%d veículos", msg.art.Rows)
	if msg.art.Format == inventory.FormatPDF {
		detail += fmt.Sprintf(", %d página(s)", msg.art.Pages)
	}
	m.setStatus(fmt.Sprintf("Arquivo gerado: %s (%s, %s)", msg.art.Path, detail, humanize.Bytes(uint64(msg.art.SizeBytes))))
	return m, nil
}

func (m model) inventoryView(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Estoque de Veículos"))
	b.WriteString("\n\n")

	chips := make([]string, 0, len(inventory.FilterChoices()))
	for i, c := range inventory.FilterChoices() {
		if i == m.statusIdx {
			chips = append(chips, chipActiveStyle.Render(c.Label()))
		} else {
			chips = append(chips, chipStyle.Render(c.Label()))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n")
	search := m.search
	search.Width = max(width-len(search.Prompt)-2, 10)
	b.WriteString(search.View())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render(emptyInventoryText))
		if m.hint != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(colorInfo).Render(m.hint))
		}
		return b.String()
	}
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d veículo(s)", len(m.rows))))
	return b.String()
}
