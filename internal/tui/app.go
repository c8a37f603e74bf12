// Package tui is the terminal front end of the back office. One model owns
// the screen; all state it shows comes from a *session.Session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/revenda/internal/dashboard"
	"github.com/jask/revenda/internal/database/repository"
	"github.com/jask/revenda/internal/forms"
	"github.com/jask/revenda/internal/inventory"
	"github.com/jask/revenda/internal/session"
)

const appName = "Revenda Fácil"

type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type exportDoneMsg struct {
	art inventory.Artifact
	err error
}

// Options tunes presentation.
type Options struct {
	DateFormat string
	Logger     *slog.Logger
}

type model struct {
	ctx        context.Context
	sess       *session.Session
	keys       *KeyRegistry
	log        *slog.Logger
	dateFormat string

	width  int
	height int
	focus  focusArea
	menu   int

	loginForm   *forms.LoginForm
	loginScreen formScreen

	summary dashboard.Summary

	filter    inventory.Filter
	statusIdx int
	search    textinput.Model
	searching bool
	table     table.Model
	rows      []repository.Vehicle
	hint      string
	exporting bool

	vehicleForm   *forms.VehicleForm
	vehicleScreen formScreen

	clientForm   *forms.ClientForm
	clientScreen formScreen
	clients      []repository.Client

	notice    *session.Notice
	status    string
	statusErr bool
}

// New builds the root model for sess.
func New(ctx context.Context, sess *session.Session, opts Options) tea.Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	dateFormat := opts.DateFormat
	if dateFormat == "" {
		dateFormat = "02/01/2006"
	}

	search := textinput.New()
	search.Prompt = "Buscar: "
	search.Placeholder = "modelo ou placa"
	search.CharLimit = 60

	m := model{
		ctx:        ctx,
		sess:       sess,
		keys:       NewKeyRegistry(),
		log:        logger,
		dateFormat: dateFormat,
		search:     search,
		table:      newInventoryTable(),
		filter:     inventory.Filter{Status: inventory.FilterAll},
	}
	m.resetLogin()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case exportDoneMsg:
		return m.handleExportDone(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateInputs(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	if m.keys.ActionFor(keyName, scopeGlobal) == actionQuit {
		return m, tea.Quit
	}
	if m.notice != nil {
		if m.keys.ActionFor(keyName, scopeNotice) == actionDismiss {
			m.notice = nil
		}
		return m, nil
	}
	if !m.sess.Authenticated() {
		return m.updateLogin(msg)
	}
	if m.focus == focusSidebar {
		return m.updateSidebar(msg)
	}
	switch m.sess.View() {
	case session.ViewInventory:
		return m.updateInventory(msg)
	case session.ViewVehicleForm:
		return m.updateVehicleForm(msg)
	case session.ViewClientForm:
		return m.updateClientForm(msg)
	default:
		return m.updateDashboard(msg)
	}
}

// updateInputs forwards non-key messages (cursor blink) to the focused input.
func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case !m.sess.Authenticated():
		cmd = m.loginScreen.update(msg)
	case m.focus != focusContent:
	case m.sess.View() == session.ViewInventory && m.searching:
		m.search, cmd = m.search.Update(msg)
	case m.sess.View() == session.ViewVehicleForm:
		cmd = m.vehicleScreen.update(msg)
	case m.sess.View() == session.ViewClientForm:
		cmd = m.clientScreen.update(msg)
	}
	return m, cmd
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

// menuItems is the sidebar: every view plus the exit entry.
func menuItems() []string {
	items := make([]string, 0, len(session.Views())+1)
	for _, v := range session.Views() {
		items = append(items, v.Title())
	}
	return append(items, "Sair")
}

func (m model) exitIndex() int { return len(session.Views()) }

func (m model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.ActionFor(msg.String(), scopeSidebar) {
	case actionUp:
		if m.menu > 0 {
			m.menu--
		}
	case actionDown:
		if m.menu < m.exitIndex() {
			m.menu++
		}
	case actionSelect:
		if m.menu == m.exitIndex() {
			m.sess.Logout()
			m.resetLogin()
			m.setStatus("Sessão encerrada.")
			return m, nil
		}
		cmd := m.open(session.Views()[m.menu])
		return m, cmd
	case actionQuit:
		return m, tea.Quit
	}
	return m, nil
}

// open switches to v and gives it focus.
func (m *model) open(v session.View) tea.Cmd {
	if err := m.sess.Navigate(v); err != nil {
		m.setError(err)
		return nil
	}
	m.focus = focusContent
	m.menu = int(v)
	m.status = ""
	switch v {
	case session.ViewDashboard:
		m.refreshSummary()
	case session.ViewInventory:
		m.refreshInventory()
	case session.ViewVehicleForm:
		return m.loadVehicleForm()
	case session.ViewClientForm:
		m.clientForm = nil
		return m.loadClientForm()
	}
	return nil
}

// ---------------------------------------------------------------------------
// Status line
// ---------------------------------------------------------------------------

func (m *model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *model) setError(err error) {
	var missing *forms.MissingFieldError
	switch {
	case errors.As(err, &missing):
		m.status = "Preencha o campo obrigatório: " + missing.Label
	default:
		m.status = "Erro: " + err.Error()
		m.log.Error("ui error", "err", err)
	}
	m.statusErr = true
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	if !m.sess.Authenticated() {
		return m.loginView()
	}

	contentWidth := m.contentWidth()
	var content string
	switch m.sess.View() {
	case session.ViewInventory:
		content = m.inventoryView(contentWidth)
	case session.ViewVehicleForm:
		content = m.vehicleScreen.view(contentWidth)
	case session.ViewClientForm:
		content = m.clientView(contentWidth)
	default:
		content = m.dashboardView(contentWidth)
	}

	boxStyle := sectionStyle
	if m.focus == focusContent {
		boxStyle = boxStyle.BorderForeground(colorFocus)
	}
	if m.width > 0 {
		boxStyle = boxStyle.Width(contentWidth)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), boxStyle.Render(content))
	body = m.renderHeader() + "\n" + body

	statusLine := m.renderStatus()
	footer := m.renderFooter(m.keys.HelpBindings(m.scope()))
	if m.notice != nil {
		return m.composeOverlay(body, statusLine, footer, m.noticeView())
	}
	return m.placeWithFooter(body, statusLine, footer)
}

// scope is the key scope of whatever currently receives key presses.
func (m model) scope() string {
	switch {
	case m.notice != nil:
		return scopeNotice
	case !m.sess.Authenticated():
		return scopeLogin
	case m.focus == focusSidebar:
		return scopeSidebar
	}
	switch m.sess.View() {
	case session.ViewInventory:
		if m.searching {
			return scopeSearch
		}
		return scopeInventory
	case session.ViewVehicleForm, session.ViewClientForm:
		return scopeForm
	default:
		return scopeDashboard
	}
}

func (m model) noticeView() string {
	msg := lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Render(m.notice.Message)
	hint := mutedStyle.Render("pressione enter para continuar")
	return msg + "\n\n" + hint
}

func (m model) renderStatus() string {
	text := strings.ReplaceAll(m.status, "\n", " ")
	style := statusBarStyle
	if m.statusErr {
		style = statusErrStyle
	}
	if m.width == 0 {
		return style.Render(text)
	}
	return style.Width(m.width).Render(text)
}

func (m model) renderHeader() string {
	name := headerAppStyle.Background(colorMantle).Render(appName)
	user := headerUserStyle.Render(fmt.Sprintf("  %s", m.sess.User()))
	line := name + user
	if m.width <= 0 {
		return headerBarStyle.Render(line)
	}
	return headerBarStyle.Width(m.width).Render(line)
}
