package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/revenda/internal/auth"
	"github.com/jask/revenda/internal/database/repository"
	"github.com/jask/revenda/internal/fixtures"
	"github.com/jask/revenda/internal/inventory"
	"github.com/jask/revenda/internal/seed"
)

func openTestSession(t *testing.T, gate *auth.Gate) *Session {
	t.Helper()
	data, err := seed.Default()
	require.NoError(t, err)
	s, err := Open(context.Background(), Options{Seed: data, Gate: gate, ExportDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func loggedIn(t *testing.T) *Session {
	t.Helper()
	s := openTestSession(t, nil)
	require.NoError(t, s.Login("gerente@revenda.com", "123"))
	return s
}

func TestLoginGatesViews(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTestSession(t, nil)

	require.False(t, s.Authenticated())
	require.ErrorIs(t, s.Navigate(ViewInventory), ErrUnauthenticated)
	require.ErrorIs(t, s.BeginEdit(ctx, 1), ErrUnauthenticated)
	_, err := s.SaveClient(ctx, repository.Client{Name: "x"})
	require.ErrorIs(t, err, ErrUnauthenticated)

	require.ErrorIs(t, s.Login("", "x"), auth.ErrInvalidCredentials)
	require.NoError(t, s.Login("a@b.c", "x"))
	require.True(t, s.Authenticated())
	require.Equal(t, ViewDashboard, s.View())

	s.Logout()
	require.False(t, s.Authenticated())
	require.Nil(t, s.Editing())
}

func TestLoginWithConfiguredHash(t *testing.T) {
	t.Parallel()
	hash, err := auth.HashPassword("segredo")
	require.NoError(t, err)
	s := openTestSession(t, auth.NewGate("gerente@revenda.com", hash))

	require.ErrorIs(t, s.Login("gerente@revenda.com", "errada"), auth.ErrInvalidCredentials)
	require.False(t, s.Authenticated())
	require.NoError(t, s.Login("GERENTE@revenda.com", "segredo"))
	require.Equal(t, "GERENTE@revenda.com", s.User())
}

func TestEditUpdatesInPlace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := loggedIn(t)

	require.NoError(t, s.BeginEdit(ctx, 3))
	require.Equal(t, ViewVehicleForm, s.View())
	edited := *s.Editing()
	edited.PriceCents = 8_000_000
	edited.ID = 99

	notice, err := s.SaveVehicle(ctx, edited)
	require.NoError(t, err)
	require.Equal(t, NoticeVehicleUpdated, notice.Message)
	require.Equal(t, ViewInventory, s.View())
	require.Nil(t, s.Editing())

	all, err := s.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.EqualValues(t, 3, all[2].ID)
	require.EqualValues(t, 8_000_000, all[2].PriceCents)
	require.Equal(t, "Chevrolet Onix Plus", all[2].Model)
}

func TestCreateAppendsWithNewID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := loggedIn(t)
	require.NoError(t, s.Navigate(ViewVehicleForm))

	notice, err := s.SaveVehicle(ctx, repository.Vehicle{
		Model: "Fiat Pulse", Plate: "FIA-1111", Status: repository.StatusAvailable, PriceCents: 9_900_000,
	})
	require.NoError(t, err)
	require.Equal(t, NoticeVehicleCreated, notice.Message)

	all, err := s.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	require.EqualValues(t, 6, all[5].ID)
}

func TestNavigateClearsEditTarget(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := loggedIn(t)

	require.NoError(t, s.BeginEdit(ctx, 1))
	require.NoError(t, s.Navigate(ViewVehicleForm))
	require.NotNil(t, s.Editing())

	require.NoError(t, s.Navigate(ViewDashboard))
	require.Nil(t, s.Editing())

	require.NoError(t, s.BeginEdit(ctx, 1))
	s.CancelEdit()
	require.Nil(t, s.Editing())
	require.Equal(t, ViewInventory, s.View())

	require.ErrorIs(t, s.BeginEdit(ctx, 404), repository.ErrNotFound)
}

func TestClientsAppendOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := loggedIn(t)
	require.NoError(t, s.Navigate(ViewClientForm))

	for _, name := range []string{"Ana", "Bruno"} {
		n, err := s.SaveClient(ctx, repository.Client{Name: name, TaxID: "1", Phone: "2", Email: "e"})
		require.NoError(t, err)
		require.Equal(t, NoticeClientCreated, n.Message)
	}
	require.Equal(t, ViewClientForm, s.View())

	list, err := s.Clients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Ana", list[0].Name)
	require.Less(t, list[0].ID, list[1].ID)
}

func TestInventorySummaryAndExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := loggedIn(t)

	rows, err := s.Inventory(ctx, inventory.Filter{Status: inventory.FilterAll, Query: "civic"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "ABC-1234", rows[0].Plate)

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, sum.Total)
	require.Equal(t, 3, sum.Count(repository.StatusAvailable))
	require.EqualValues(t, 13_800_000, sum.SoldRevenueCents)

	art, err := s.Export(ctx, inventory.FormatCSV, inventory.Filter{Status: inventory.StatusFilter(repository.StatusSold)})
	require.NoError(t, err)
	require.Equal(t, 1, art.Rows)
	require.Equal(t, inventory.CSVFileName, filepath.Base(art.Path))
	data, err := os.ReadFile(art.Path)
	require.NoError(t, err)
	require.Contains(t, string(data), "XYZ-9876")
	require.NotContains(t, string(data), "ABC-1234")
}

func TestViewTitles(t *testing.T) {
	t.Parallel()
	var titles []string
	for _, v := range Views() {
		titles = append(titles, v.Title())
	}
	require.Equal(t, []string{"Dashboard", "Estoque", "Cadastrar Veículo", "Cadastrar Cliente"}, titles)
}

func TestOpenWithGeneratedSeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s, err := Open(ctx, Options{Seed: seed.Data{
		Vehicles: fixtures.Vehicles(30, 3),
		Clients:  fixtures.Clients(4, 3, base),
	}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Login("a@b.c", "x"))

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 30, sum.Total)

	clients, err := s.Clients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 4)
	require.True(t, base.Add(time.Hour).Equal(clients[1].CreatedAt), "got %s", clients[1].CreatedAt)

	v, err := s.SaveVehicle(ctx, repository.Vehicle{Model: "Novo", Plate: "NOV-0001", Status: repository.StatusAvailable})
	require.NoError(t, err)
	require.Equal(t, NoticeVehicleCreated, v.Message)
	all, err := s.Vehicles(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 31, all[30].ID)
}

func TestSeedOrderSurvivesUnsortedIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, err := Open(ctx, Options{Seed: seed.Data{Vehicles: []repository.Vehicle{
		{ID: 10, Model: "Zeta", Plate: "ZZZ-0010", Status: repository.StatusAvailable},
		{ID: 2, Model: "Alpha", Plate: "AAA-0002", Status: repository.StatusAvailable},
	}}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Login("a@b.c", "x"))

	all, err := s.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.EqualValues(t, 10, all[0].ID)
	require.EqualValues(t, 2, all[1].ID)

	filtered, err := s.Inventory(ctx, inventory.Filter{Status: inventory.FilterAll, Query: "a"})
	require.NoError(t, err)
	require.Equal(t, "Zeta", filtered[0].Model)
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a := loggedIn(t)
	b := loggedIn(t)
	require.NotEqual(t, a.ID, b.ID)

	_, err := a.SaveClient(ctx, repository.Client{Name: "Só A"})
	require.NoError(t, err)
	list, err := b.Clients(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
