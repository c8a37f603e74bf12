package dashboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/revenda/internal/database/repository"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	vs := []repository.Vehicle{
		{ID: 1, Model: "Honda Civic", Plate: "ABC-1234", Status: repository.StatusAvailable, PriceCents: 14500000},
		{ID: 2, Model: "Toyota Corolla", Plate: "XYZ-9876", Status: repository.StatusSold, PriceCents: 13800000},
	}
	s := Summarize(vs)
	require.Equal(t, 2, s.Total)
	require.Equal(t, 1, s.Count(repository.StatusAvailable))
	require.Equal(t, 1, s.Count(repository.StatusSold))
	require.Equal(t, 0, s.Count(repository.StatusNegotiation))
	require.Equal(t, int64(13800000), s.SoldRevenueCents)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)
	require.Zero(t, s.Total)
	require.Zero(t, s.SoldRevenueCents)
	require.Len(t, s.Counts, 3)
	require.Empty(t, Slices(s))
}

func TestCards(t *testing.T) {
	t.Parallel()

	s := Summarize([]repository.Vehicle{
		{Status: repository.StatusAvailable, PriceCents: 100},
		{Status: repository.StatusNegotiation, PriceCents: 100},
		{Status: repository.StatusSold, PriceCents: 28300000},
	})
	cards := Cards(s)
	require.Len(t, cards, 4)
	require.Equal(t, StatCard{Title: "Total em Estoque", Value: "3", Tone: ToneNeutral}, cards[0])
	require.Equal(t, "1", cards[1].Value)
	require.Equal(t, ToneWarning, cards[2].Tone)
	require.Equal(t, "R$ 283 mil", cards[3].Value)
}

func TestSlicesSkipEmptyStatuses(t *testing.T) {
	t.Parallel()

	s := Summarize([]repository.Vehicle{
		{Status: repository.StatusAvailable},
		{Status: repository.StatusAvailable},
		{Status: repository.StatusSold},
	})
	got := Slices(s)
	require.Len(t, got, 2)
	require.Equal(t, repository.StatusAvailable, got[0].Status)
	require.Equal(t, 2, got[0].Value)
	require.Equal(t, repository.StatusSold, got[1].Status)
}

func TestCompactBRLSmallAmounts(t *testing.T) {
	t.Parallel()

	require.Equal(t, "R$ 0,00", CompactBRL(0))
	require.Equal(t, "R$ 999,00", CompactBRL(99900))
}

func TestCompactBRLShortScale(t *testing.T) {
	t.Parallel()

	cases := map[int64]string{
		123400:          "R$ 1,2 mil",
		1234500:         "R$ 12 mil",
		28300000:        "R$ 283 mil",
		99960000:        "R$ 1 mi",
		150000000:       "R$ 1,5 mi",
		230000000000:    "R$ 2,3 bi",
		400000000000000: "R$ 4 tri",
	}
	for cents, want := range cases {
		require.Equal(t, want, CompactBRL(cents), "cents %d", cents)
	}
}
