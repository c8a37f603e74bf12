package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/revenda/internal/database"
	"github.com/jask/revenda/internal/database/repository"
)

func TestDefaultInventory(t *testing.T) {
	t.Parallel()
	d, err := Default()
	require.NoError(t, err)
	require.Len(t, d.Vehicles, 5)
	require.Empty(t, d.Clients)

	first := d.Vehicles[0]
	require.EqualValues(t, 1, first.ID)
	require.Equal(t, "Honda Civic Touring", first.Model)
	require.Equal(t, "ABC-1234", first.Plate)
	require.Equal(t, repository.StatusAvailable, first.Status)
	require.EqualValues(t, 14500000, first.PriceCents)
	require.Equal(t, 2021, *first.Year)
	require.Equal(t, 45000, *first.Odometer)
	require.Equal(t, "Branco", *first.Color)

	var sold int
	for _, v := range d.Vehicles {
		if v.Status == repository.StatusSold {
			sold++
			require.EqualValues(t, 13800000, v.PriceCents)
		}
	}
	require.Equal(t, 1, sold)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
vehicles:
  - model: Fiat Pulse
    plate: FIA-1111
    price: 99990.5
    renavam: "12345678901"
    owner:
      name: Maria
      city: Recife
clients:
  - name: João Silva
    cpf: 123.456.789-00
    email: joao@example.com
    city: Curitiba
`), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Vehicles, 1)
	v := d.Vehicles[0]
	require.Zero(t, v.ID)
	require.Equal(t, repository.StatusAvailable, v.Status)
	require.EqualValues(t, 9999050, v.PriceCents)
	require.Nil(t, v.Year)
	require.Equal(t, "Maria", v.PreviousOwner.Name)
	require.Equal(t, "Recife", v.PreviousOwner.City)

	require.Len(t, d.Clients, 1)
	require.Equal(t, "Curitiba", d.Clients[0].Address.City)
}

func TestLoadRejectsBadInput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`
[[vehicles]]
model = "X"
plate = "Y"
status = "reservado"
`), 0o600))
	_, err := Load(bad)
	require.ErrorContains(t, err, "invalid status")

	unknown := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{}`), 0o600))
	_, err = Load(unknown)
	require.ErrorContains(t, err, "unsupported extension")

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte(`
vehicles:
  - {id: 3, model: A, plate: AAA-0001}
  - {id: 3, model: B, plate: BBB-0002}
`), 0o600))
	_, err = Load(dup)
	require.ErrorContains(t, err, "vehicle 2: duplicate id 3")

	huge := filepath.Join(dir, "huge.toml")
	require.NoError(t, os.WriteFile(huge, []byte(`
[[vehicles]]
model = "X"
plate = "Y"
price = 1e20
`), 0o600))
	_, err = Load(huge)
	require.ErrorContains(t, err, "vehicle 1: invalid price")

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte(`
clients:
  - {id: -1, name: Ana}
`), 0o600))
	_, err = Load(negative)
	require.ErrorContains(t, err, "client 1: invalid id -1")
}

func TestMixedIDsLoadInFileOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mixed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
vehicles:
  - {model: NoID, plate: NOI-0001}
  - {id: 1, model: One, plate: ONE-0001}
  - {id: 10, model: Zeta, plate: ZZZ-0010}
  - {id: 2, model: Alpha, plate: AAA-0002}
clients:
  - name: Ana
    created_at: 2024-03-15T09:30:00Z
`), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	require.EqualValues(t, 11, d.Vehicles[0].ID)
	require.Zero(t, d.Clients[0].ID)

	db, err := database.OpenMemory("seed-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	require.NoError(t, Apply(ctx, db, d))

	list, err := repository.NewVehicleRepo(db).List(ctx)
	require.NoError(t, err)
	var got []string
	for _, v := range list {
		got = append(got, v.Model)
	}
	require.Equal(t, []string{"NoID", "One", "Zeta", "Alpha"}, got)

	clients, err := repository.NewClientRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.True(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC).Equal(clients[0].CreatedAt))
}

func TestApplyFillsEmptyStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := database.OpenMemory("seed-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))

	d, err := Default()
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, db, d))
	require.NoError(t, Apply(ctx, db, d))

	list, err := repository.NewVehicleRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	require.Equal(t, "VW T-Cross Highline", list[4].Model)

	v, err := repository.NewVehicleRepo(db).Insert(ctx, repository.Vehicle{
		Model: "Novo", Plate: "NEW-0001", Status: repository.StatusAvailable,
	})
	require.NoError(t, err)
	require.EqualValues(t, 6, v.ID)
}
