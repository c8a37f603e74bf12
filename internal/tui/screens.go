package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/revenda/internal/forms"
	"github.com/jask/revenda/internal/session"
)

const recentClients = 5

// ---------------------------------------------------------------------------
// Vehicle form
// ---------------------------------------------------------------------------

// loadVehicleForm stages the session's edit target, or a blank record.
func (m *model) loadVehicleForm() tea.Cmd {
	m.vehicleForm = forms.NewVehicleForm(m.sess.Editing())
	m.vehicleScreen = newFormScreen(m.vehicleForm.Title(), m.vehicleForm.SubmitLabel(), m.vehicleForm)
	m.focus = focusContent
	return m.vehicleScreen.focusField(0)
}

func (m model) updateVehicleForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	switch m.keys.ActionFor(keyName, scopeForm) {
	case actionNextField:
		cmd := m.vehicleScreen.next()
		return m, cmd
	case actionPrevField:
		cmd := m.vehicleScreen.prev()
		return m, cmd
	case actionSubmit:
		if keyName == "enter" && !m.vehicleScreen.onLast() {
			cmd := m.vehicleScreen.next()
			return m, cmd
		}
		return m.submitVehicle()
	case actionClear:
		cmd := m.loadVehicleForm()
		return m, cmd
	case actionBack:
		if m.sess.Editing() != nil {
			m.sess.CancelEdit()
			m.menu = int(session.ViewInventory)
			m.refreshInventory()
			m.setStatus("Edição cancelada.")
			return m, nil
		}
		m.focus = focusSidebar
		return m, nil
	}
	cmd := m.vehicleScreen.update(msg)
	return m, cmd
}

func (m model) submitVehicle() (tea.Model, tea.Cmd) {
	if err := m.vehicleScreen.sync(m.vehicleForm); err != nil {
		m.setError(err)
		return m, nil
	}
	v, err := m.vehicleForm.Submit()
	var missing *forms.MissingFieldError
	if errors.As(err, &missing) {
		m.setError(err)
		cmd := m.vehicleScreen.focusKey(missing.Key)
		return m, cmd
	}
	if err != nil {
		m.setError(err)
		return m, nil
	}
	notice, err := m.sess.SaveVehicle(m.ctx, v)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.notice = &notice
	m.vehicleForm = nil
	m.menu = int(m.sess.View())
	m.focus = focusContent
	m.status = ""
	m.refreshInventory()
	return m, nil
}

// ---------------------------------------------------------------------------
// Client form
// ---------------------------------------------------------------------------

func (m *model) loadClientForm() tea.Cmd {
	if m.clientForm == nil {
		m.clientForm = forms.NewClientForm()
	}
	m.clientScreen = newFormScreen("Cadastrar Novo Cliente", "Salvar Cliente", m.clientForm)
	m.focus = focusContent
	m.refreshClients()
	return m.clientScreen.focusField(0)
}

func (m *model) refreshClients() {
	clients, err := m.sess.Clients(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	m.clients = clients
}

func (m model) updateClientForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	switch m.keys.ActionFor(keyName, scopeForm) {
	case actionNextField:
		cmd := m.clientScreen.next()
		return m, cmd
	case actionPrevField:
		cmd := m.clientScreen.prev()
		return m, cmd
	case actionSubmit:
		if keyName == "enter" && !m.clientScreen.onLast() {
			cmd := m.clientScreen.next()
			return m, cmd
		}
		return m.submitClient()
	case actionClear:
		m.clientForm.Reset()
		cmd := m.loadClientForm()
		return m, cmd
	case actionBack:
		m.focus = focusSidebar
		return m, nil
	}
	cmd := m.clientScreen.update(msg)
	return m, cmd
}

func (m model) submitClient() (tea.Model, tea.Cmd) {
	if err := m.clientScreen.sync(m.clientForm); err != nil {
		m.setError(err)
		return m, nil
	}
	c, err := m.clientForm.Submit()
	var missing *forms.MissingFieldError
	if errors.As(err, &missing) {
		m.setError(err)
		cmd := m.clientScreen.focusKey(missing.Key)
		return m, cmd
	}
	if err != nil {
		m.setError(err)
		return m, nil
	}
	notice, err := m.sess.SaveClient(m.ctx, c)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.notice = &notice
	m.status = ""
	cmd := m.loadClientForm()
	return m, cmd
}

func (m model) clientView(width int) string {
	var b strings.Builder
	b.WriteString(m.clientScreen.view(width))
	if len(m.clients) == 0 {
		return b.String()
	}
	b.WriteString("\n\n")
	b.WriteString(sectionLabelStyle.Render(fmt.Sprintf("Clientes cadastrados (%d)", len(m.clients))))
	b.WriteString("\n")
	start := max(len(m.clients)-recentClients, 0)
	for _, c := range m.clients[start:] {
		line := fmt.Sprintf("%s  %s  %s", c.CreatedAt.Format(m.dateFormat), c.Name, c.Email)
		b.WriteString(mutedStyle.Render(ellipsize(line, width-2)))
		b.WriteString("\n")
	}
	return b.String()
}
