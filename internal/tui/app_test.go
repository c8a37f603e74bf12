package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/revenda/internal/forms"
	"github.com/jask/revenda/internal/inventory"
	"github.com/jask/revenda/internal/seed"
	"github.com/jask/revenda/internal/session"
)

func newTestModel(t *testing.T) (model, string) {
	t.Helper()
	data, err := seed.Default()
	require.NoError(t, err)
	dir := t.TempDir()
	sess, err := session.Open(context.Background(), session.Options{Seed: data, ExportDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })

	m := New(context.Background(), sess, Options{}).(model)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return next.(model), dir
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		got, ok := next.(model)
		require.True(t, ok, "Update returned %T", next)
		m = got
	}
	return m
}

func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runeKey(string(r)))
	}
	return m
}

func login(t *testing.T, m model) model {
	t.Helper()
	m = typeText(t, m, "12.345.678/0001-90")
	m = press(t, m, keyTab)
	m = typeText(t, m, "gerente@revenda.com")
	m = press(t, m, keyTab)
	m = typeText(t, m, "123")
	m = press(t, m, keyEnter)
	require.True(t, m.sess.Authenticated())
	return m
}

// openMenu moves the sidebar cursor to index i and selects it.
func openMenu(t *testing.T, m model, i int) model {
	t.Helper()
	if m.focus != focusSidebar {
		m = press(t, m, keyEsc)
	}
	for m.menu > i {
		m = press(t, m, runeKey("k"))
	}
	for m.menu < i {
		m = press(t, m, runeKey("j"))
	}
	return press(t, m, keyEnter)
}

func TestLoginRequiresEveryField(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	m = press(t, m, keyEnter)
	require.False(t, m.sess.Authenticated())
	require.Contains(t, m.status, "CNPJ da Empresa")
	require.Equal(t, 0, m.loginScreen.focus)

	m = typeText(t, m, "12.345.678/0001-90")
	m = press(t, m, keyTab)
	m = typeText(t, m, "gerente@revenda.com")
	m = press(t, m, keyEnter)
	require.False(t, m.sess.Authenticated())
	require.True(t, m.statusErr)
	require.Contains(t, m.status, "Senha")
	require.Equal(t, 2, m.loginScreen.focus)

	m = typeText(t, m, "x")
	m = press(t, m, keyEnter)
	require.True(t, m.sess.Authenticated())
	require.Equal(t, session.ViewDashboard, m.sess.View())
	require.Contains(t, m.View(), "Total em Estoque")
}

func TestLoginScreenDoesNotQuitOnLetters(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = press(t, m, runeKey("q"))
	require.Equal(t, "q", m.loginScreen.inputs[0].Value())
	require.False(t, m.sess.Authenticated())
}

func TestSidebarNavigation(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = login(t, m)

	m = openMenu(t, m, int(session.ViewInventory))
	require.Equal(t, session.ViewInventory, m.sess.View())
	require.Equal(t, focusContent, m.focus)
	require.Len(t, m.rows, 5)
	require.Contains(t, m.View(), "Honda Civic Touring")

	m = openMenu(t, m, m.exitIndex())
	require.False(t, m.sess.Authenticated())
	require.Contains(t, m.View(), "Acesse o painel administrativo")
}

func TestInventorySearchAndStatusChips(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = login(t, m)
	m = openMenu(t, m, int(session.ViewInventory))

	m = press(t, m, runeKey("/"))
	require.True(t, m.searching)
	m = typeText(t, m, "zzz")
	require.Empty(t, m.rows)
	require.Contains(t, m.View(), emptyInventoryText)

	m = press(t, m, keyEsc)
	require.False(t, m.searching)
	require.Len(t, m.rows, 5)

	m = press(t, m, runeKey("/"))
	m = typeText(t, m, "civc")
	require.Empty(t, m.rows)
	require.Contains(t, m.hint, "Civic")
	m = press(t, m, keyEnter)
	m = press(t, m, runeKey("x"))
	require.Len(t, m.rows, 5)

	m = press(t, m, runeKey("l"))
	require.Equal(t, inventory.StatusFilter("disponivel"), m.filter.Status)
	require.Len(t, m.rows, 3)
	m = press(t, m, runeKey("h"), runeKey("h"))
	require.Equal(t, inventory.StatusFilter("vendido"), m.filter.Status)
	require.Len(t, m.rows, 1)
	require.Equal(t, "XYZ-9876", m.rows[0].Plate)
}

func TestEditVehicleInPlace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestModel(t)
	m = login(t, m)
	m = openMenu(t, m, int(session.ViewInventory))

	m = press(t, m, keyEnter)
	require.Equal(t, session.ViewVehicleForm, m.sess.View())
	require.NotNil(t, m.sess.Editing())
	require.EqualValues(t, 1, m.sess.Editing().ID)
	require.Equal(t, "Honda Civic Touring", m.vehicleScreen.inputs[0].Value())

	m = typeText(t, m, " Sport")
	m = press(t, m, keySave)
	require.NotNil(t, m.notice)
	require.Equal(t, session.NoticeVehicleUpdated, m.notice.Message)
	require.Equal(t, session.ViewInventory, m.sess.View())
	require.Nil(t, m.sess.Editing())

	// the notice blocks everything but dismissal
	_, cmd := m.Update(runeKey("q"))
	require.Nil(t, cmd)
	m = press(t, m, keyEnter)
	require.Nil(t, m.notice)

	all, err := m.sess.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, "Honda Civic Touring Sport", all[0].Model)
	require.EqualValues(t, 1, all[0].ID)
}

func TestCancelEditReturnsToInventory(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = login(t, m)
	m = openMenu(t, m, int(session.ViewInventory))
	m = press(t, m, keyEnter)
	require.NotNil(t, m.sess.Editing())

	m = press(t, m, keyEsc)
	require.Nil(t, m.sess.Editing())
	require.Equal(t, session.ViewInventory, m.sess.View())
}

func TestCreateVehicle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestModel(t)
	m = login(t, m)
	m = openMenu(t, m, int(session.ViewVehicleForm))
	require.Nil(t, m.sess.Editing())

	m = press(t, m, keySave)
	require.Nil(t, m.notice)
	require.True(t, m.statusErr)
	require.Contains(t, m.status, "Modelo")

	m = typeText(t, m, "Pulse")
	m = press(t, m, keyEnter)
	m = typeText(t, m, "FIA-1111")
	m = press(t, m, keyEnter)
	m = typeText(t, m, "99900")
	m = press(t, m, keySave)
	require.NotNil(t, m.notice)
	require.Equal(t, session.NoticeVehicleCreated, m.notice.Message)

	all, err := m.sess.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	require.Equal(t, "Pulse", all[5].Model)
	require.EqualValues(t, 9_990_000, all[5].PriceCents)
}

func TestSaveClientStaysOnForm(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestModel(t)
	m = login(t, m)
	m = openMenu(t, m, int(session.ViewClientForm))

	for i, v := range []string{"Ana", "123.456.789-00", "11999990000", "ana@example.com"} {
		if i > 0 {
			m = press(t, m, keyTab)
		}
		m = typeText(t, m, v)
	}
	m = press(t, m, keySave)
	require.NotNil(t, m.notice)
	require.Equal(t, session.NoticeClientCreated, m.notice.Message)
	require.Equal(t, session.ViewClientForm, m.sess.View())
	require.Empty(t, m.clientScreen.inputs[0].Value())

	m = press(t, m, keyEsc)
	require.Contains(t, m.View(), "Clientes cadastrados (1)")

	list, err := m.sess.Clients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Ana", list[0].Name)
}

func TestClearClientForm(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = login(t, m)
	m = openMenu(t, m, int(session.ViewClientForm))
	m = typeText(t, m, "Bruno")
	m = press(t, m, keySave)
	require.True(t, m.statusErr)
	require.Equal(t, "Bruno", m.clientForm.Value(forms.FieldClientName))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	require.Empty(t, m.clientScreen.inputs[0].Value())
}

func TestExportWritesArtifact(t *testing.T) {
	t.Parallel()
	m, dir := newTestModel(t)
	m = login(t, m)
	m = openMenu(t, m, int(session.ViewInventory))

	next, cmd := m.Update(runeKey("c"))
	m = next.(model)
	require.NotNil(t, cmd)
	require.True(t, m.exporting)

	next, _ = m.Update(cmd())
	m = next.(model)
	require.False(t, m.exporting)
	require.False(t, m.statusErr)
	require.Contains(t, m.status, inventory.CSVFileName)

	data, err := os.ReadFile(filepath.Join(dir, inventory.CSVFileName))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "\ufeffID;Modelo;Placa"))
}

func TestExportFailureIsReported(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = login(t, m)
	next, _ := m.Update(exportDoneMsg{err: os.ErrPermission})
	m = next.(model)
	require.True(t, m.statusErr)
	require.Contains(t, m.status, "Falha ao exportar")
}
