// Package dashboard aggregates the vehicle inventory into the figures shown on
// the summary screen. Nothing here holds state; callers recompute on render.
package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jask/revenda/internal/database/repository"
	"github.com/jask/revenda/internal/inventory"
)

// Summary is the per-status breakdown of an inventory.
type Summary struct {
	Total            int
	Counts           map[repository.Status]int
	SoldRevenueCents int64
}

// Count returns the number of vehicles with status s.
func (s Summary) Count(status repository.Status) int {
	return s.Counts[status]
}

// Summarize counts vehicles per status and sums the price of sold vehicles.
func Summarize(vehicles []repository.Vehicle) Summary {
	s := Summary{Total: len(vehicles), Counts: make(map[repository.Status]int, 3)}
	for _, st := range repository.Statuses() {
		s.Counts[st] = 0
	}
	for _, v := range vehicles {
		s.Counts[v.Status]++
		if v.Status == repository.StatusSold {
			s.SoldRevenueCents += v.PriceCents
		}
	}
	return s
}

// Tone is the color family a card or slice is drawn with.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneWarning
	ToneInfo
)

// StatCard is one headline figure on the dashboard.
type StatCard struct {
	Title string
	Value string
	Tone  Tone
}

// Cards returns the headline figures in display order.
func Cards(s Summary) []StatCard {
	return []StatCard{
		{Title: "Total em Estoque", Value: fmt.Sprint(s.Total), Tone: ToneNeutral},
		{Title: "Disponíveis", Value: fmt.Sprint(s.Count(repository.StatusAvailable)), Tone: ToneSuccess},
		{Title: "Em Negociação", Value: fmt.Sprint(s.Count(repository.StatusNegotiation)), Tone: ToneWarning},
		{Title: "Vendas Realizadas", Value: CompactBRL(s.SoldRevenueCents), Tone: ToneInfo},
	}
}

// Slice is one segment of the status chart.
type Slice struct {
	Label  string
	Status repository.Status
	Value  int
	Tone   Tone
}

// Slices returns the chart segments for statuses that have at least one
// vehicle. An empty result means there is nothing to chart.
func Slices(s Summary) []Slice {
	all := []Slice{
		{Label: "Disponíveis", Status: repository.StatusAvailable, Tone: ToneSuccess},
		{Label: "Vendidos", Status: repository.StatusSold, Tone: ToneInfo},
		{Label: "Em Negociação", Status: repository.StatusNegotiation, Tone: ToneWarning},
	}
	out := all[:0]
	for _, sl := range all {
		sl.Value = s.Count(sl.Status)
		if sl.Value > 0 {
			out = append(out, sl)
		}
	}
	return out
}

// compactScale lists the pt-BR short scale from thousands upward, keyed by
// the SI prefix go-humanize reports for the same magnitude.
var compactScale = []struct{ prefix, suffix string }{
	{"k", "mil"}, {"M", "mi"}, {"G", "bi"}, {"T", "tri"},
}

// CompactBRL renders a currency amount in pt-BR short form ("R$ 283 mil",
// "R$ 1,5 mi"). Amounts under one thousand reais are printed in full.
func CompactBRL(cents int64) string {
	reais := float64(cents) / 100
	if reais < 1000 && reais > -1000 {
		return inventory.FormatBRL(cents)
	}
	value, prefix := humanize.ComputeSI(reais)
	step := -1
	for i, sc := range compactScale {
		if sc.prefix == prefix {
			step = i
		}
	}
	if step < 0 {
		return inventory.FormatBRL(cents)
	}
	// 999.6 mil reads as 1 mi
	if math.Abs(math.Round(value)) >= 1000 && step+1 < len(compactScale) {
		value /= 1000
		step++
	}
	digits := strconv.FormatFloat(value, 'f', 0, 64)
	if math.Abs(value) < 9.95 {
		digits = strings.TrimSuffix(strconv.FormatFloat(value, 'f', 1, 64), ".0")
	}
	return "R$ " + strings.Replace(digits, ".", ",", 1) + " " + compactScale[step].suffix
}
