package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestVehiclesDeterministic(t *testing.T) {
	t.Parallel()
	a := Vehicles(50, 7)
	b := Vehicles(50, 7)
	require.Equal(t, a, b)
	require.Len(t, a, 50)
	for i, v := range a {
		require.EqualValues(t, i+1, v.ID)
		require.True(t, v.Status.Valid())
		require.NotEmpty(t, v.Model)
		require.Len(t, v.Plate, 8)
		require.Positive(t, v.PriceCents)
	}
}

func TestClientsSpacedInTime(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	cs := Clients(3, 1, base)
	require.Len(t, cs, 3)
	require.Equal(t, base.Add(2*time.Hour), cs[2].CreatedAt)
	require.Equal(t, "cliente3@example.com", cs[2].Email)
}
