// Package fixtures generates plausible inventory and client data for tests
// and benchmarks.
package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jask/revenda/internal/database/repository"
)

var (
	makes  = []string{"Honda", "Toyota", "Chevrolet", "Jeep", "VW", "Fiat", "Hyundai", "Renault"}
	models = []string{"Civic", "Corolla", "Onix", "Compass", "T-Cross", "Pulse", "HB20", "Kwid"}
	trims  = []string{"Touring", "Altis", "Plus", "Longitude", "Highline", "Drive", "Comfort", "Zen"}
	colors = []string{"Branco", "Preto", "Prata", "Cinza", "Azul", "Vermelho"}
	names  = []string{"Ana Souza", "Bruno Lima", "Carla Dias", "Diego Alves", "Elisa Rocha", "Fábio Nunes"}
	cities = []string{"São Paulo", "Curitiba", "Recife", "Belo Horizonte", "Porto Alegre"}
)

// Vehicles returns n vehicles with IDs 1..n. The same seed always yields the
// same list. Roughly one in five has no color and one in ten no year.
func Vehicles(n int, seed int64) []repository.Vehicle {
	r := rand.New(rand.NewSource(seed))
	statuses := repository.Statuses()
	out := make([]repository.Vehicle, 0, n)
	for i := 0; i < n; i++ {
		k := r.Intn(len(makes))
		v := repository.Vehicle{
			ID:         int64(i + 1),
			Model:      fmt.Sprintf("%s %s %s", makes[k], models[k], trims[r.Intn(len(trims))]),
			Plate:      fmt.Sprintf("%c%c%c-%04d", 'A'+r.Intn(26), 'A'+r.Intn(26), 'A'+r.Intn(26), r.Intn(10000)),
			Status:     statuses[r.Intn(len(statuses))],
			PriceCents: int64(40_000+r.Intn(160_000)) * 100,
		}
		if r.Intn(10) > 0 {
			year := 2012 + r.Intn(13)
			v.Year = &year
		}
		if r.Intn(5) > 0 {
			c := colors[r.Intn(len(colors))]
			v.Color = &c
		}
		km := r.Intn(150_000)
		v.Odometer = &km
		out = append(out, v)
	}
	return out
}

// Clients returns n clients with IDs 1..n created one hour apart from base.
func Clients(n int, seed int64, base time.Time) []repository.Client {
	r := rand.New(rand.NewSource(seed))
	out := make([]repository.Client, 0, n)
	for i := 0; i < n; i++ {
		name := names[r.Intn(len(names))]
		out = append(out, repository.Client{
			ID:        int64(i + 1),
			Name:      name,
			TaxID:     fmt.Sprintf("%03d.%03d.%03d-%02d", r.Intn(1000), r.Intn(1000), r.Intn(1000), r.Intn(100)),
			Phone:     fmt.Sprintf("(11) 9%04d-%04d", r.Intn(10000), r.Intn(10000)),
			Email:     fmt.Sprintf("cliente%d@example.com", i+1),
			Address:   repository.Address{City: cities[r.Intn(len(cities))]},
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return out
}
