package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/revenda/internal/auth"
	"github.com/jask/revenda/internal/forms"
)

func (m *model) resetLogin() {
	m.loginForm = forms.NewLoginForm()
	m.loginScreen = newFormScreen("Acesse o painel administrativo", "Entrar", m.loginForm)
	m.focus = focusSidebar
	m.menu = 0
	m.notice = nil
	m.searching = false
	m.vehicleForm = nil
	m.clientForm = nil
}

func (m model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.ActionFor(msg.String(), scopeLogin) {
	case actionNextField:
		cmd := m.loginScreen.next()
		return m, cmd
	case actionPrevField:
		cmd := m.loginScreen.prev()
		return m, cmd
	case actionSubmit:
		return m.submitLogin()
	case actionQuit:
		return m, tea.Quit
	}
	cmd := m.loginScreen.update(msg)
	return m, cmd
}

func (m model) submitLogin() (tea.Model, tea.Cmd) {
	if err := m.loginScreen.sync(m.loginForm); err != nil {
		m.setError(err)
		return m, nil
	}
	creds, err := m.loginForm.Submit()
	var missing *forms.MissingFieldError
	if errors.As(err, &missing) {
		m.setError(err)
		cmd := m.loginScreen.focusKey(missing.Key)
		return m, cmd
	}
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if err := m.sess.Login(creds.Email, creds.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			m.status = "E-mail ou senha inválidos."
			m.statusErr = true
			return m, nil
		}
		m.setError(err)
		return m, nil
	}
	m.loginForm = forms.NewLoginForm()
	m.loginScreen = newFormScreen("Acesse o painel administrativo", "Entrar", m.loginForm)
	cmd := m.open(m.sess.View())
	m.focus = focusSidebar
	m.setStatus("Bem-vindo, " + creds.Email)
	return m, cmd
}

func (m model) loginView() string {
	brand := lipgloss.NewStyle().Foreground(colorBrand).Bold(true).Render(appName)
	body := brand + "\n\n" + m.loginScreen.view(60)
	if m.sess.GateOpen() {
		body += "\n\n" + mutedStyle.Render("Modo demonstração: qualquer e-mail e senha são aceitos.")
	}
	if m.status != "" {
		style := mutedStyle
		if m.statusErr {
			style = errorTextStyle
		}
		body += "\n\n" + style.Render(m.status)
	}
	box := modalStyle.Render(body)
	if m.width == 0 || m.height == 0 {
		return box + "\n" + m.renderFooter(m.keys.HelpBindings(scopeLogin))
	}
	main := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
	return main + "\n" + m.renderFooter(m.keys.HelpBindings(scopeLogin))
}
