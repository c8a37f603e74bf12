// Package seed decodes starting data for a session from TOML or YAML files.
package seed

import (
	"bytes"
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jask/revenda/internal/database"
	"github.com/jask/revenda/internal/database/repository"
)

//go:embed inventory.toml
var defaultInventory []byte

// Data is the decoded content of a seed file.
type Data struct {
	Vehicles []repository.Vehicle
	Clients  []repository.Client
}

type file struct {
	Vehicles []vehicleRecord `toml:"vehicles" yaml:"vehicles"`
	Clients  []clientRecord  `toml:"clients" yaml:"clients"`
}

type ownerRecord struct {
	Name       string `toml:"name" yaml:"name"`
	TaxID      string `toml:"cpf" yaml:"cpf"`
	Phone      string `toml:"phone" yaml:"phone"`
	PostalCode string `toml:"cep" yaml:"cep"`
	Street     string `toml:"street" yaml:"street"`
	District   string `toml:"district" yaml:"district"`
	City       string `toml:"city" yaml:"city"`
}

type vehicleRecord struct {
	ID       int64       `toml:"id" yaml:"id"`
	Model    string      `toml:"model" yaml:"model"`
	Plate    string      `toml:"plate" yaml:"plate"`
	Status   string      `toml:"status" yaml:"status"`
	Price    float64     `toml:"price" yaml:"price"`
	Year     *int        `toml:"year" yaml:"year"`
	Color    *string     `toml:"color" yaml:"color"`
	Odometer *int        `toml:"odometer" yaml:"odometer"`
	Renavam  string      `toml:"renavam" yaml:"renavam"`
	Chassis  string      `toml:"chassis" yaml:"chassis"`
	Owner    ownerRecord `toml:"owner" yaml:"owner"`
}

type clientRecord struct {
	ID         int64     `toml:"id" yaml:"id"`
	Name       string    `toml:"name" yaml:"name"`
	TaxID      string    `toml:"cpf" yaml:"cpf"`
	Phone      string    `toml:"phone" yaml:"phone"`
	Email      string    `toml:"email" yaml:"email"`
	PostalCode string    `toml:"cep" yaml:"cep"`
	City       string    `toml:"city" yaml:"city"`
	Street     string    `toml:"street" yaml:"street"`
	District   string    `toml:"district" yaml:"district"`
	Complement string    `toml:"complement" yaml:"complement"`
	CreatedAt  time.Time `toml:"created_at" yaml:"created_at"`
}

// Default returns the built-in starting inventory.
func Default() (Data, error) {
	return decodeTOML(defaultInventory)
}

// Load reads a seed file. The format is chosen by extension: .toml, .yaml or .yml.
// An empty path returns Default().
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed: %w", err)
	}
	var d Data
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		d, err = decodeTOML(raw)
	case ".yaml", ".yml":
		d, err = decodeYAML(raw)
	default:
		return Data{}, fmt.Errorf("seed %s: unsupported extension", path)
	}
	if err != nil {
		return Data{}, fmt.Errorf("seed %s: %w", path, err)
	}
	return d, nil
}

// Apply inserts d into the session stores that are still empty.
func Apply(ctx context.Context, db *sql.DB, d Data) error {
	return database.SeedDefaults(ctx, db, d.Vehicles, d.Clients)
}

func decodeTOML(raw []byte) (Data, error) {
	var f file
	if _, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&f); err != nil {
		return Data{}, fmt.Errorf("decode toml: %w", err)
	}
	return f.data()
}

func decodeYAML(raw []byte) (Data, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Data{}, fmt.Errorf("decode yaml: %w", err)
	}
	return f.data()
}

func (f file) data() (Data, error) {
	d := Data{
		Vehicles: make([]repository.Vehicle, 0, len(f.Vehicles)),
		Clients:  make([]repository.Client, 0, len(f.Clients)),
	}
	vehicleIDs, err := assignIDs("vehicle", len(f.Vehicles), func(i int) int64 { return f.Vehicles[i].ID })
	if err != nil {
		return Data{}, err
	}
	clientIDs, err := assignIDs("client", len(f.Clients), func(i int) int64 { return f.Clients[i].ID })
	if err != nil {
		return Data{}, err
	}
	for i, r := range f.Vehicles {
		status := repository.Status(r.Status)
		if r.Status == "" {
			status = repository.StatusAvailable
		}
		if !status.Valid() {
			return Data{}, fmt.Errorf("vehicle %d: invalid status %q", i+1, r.Status)
		}
		if r.Model == "" || r.Plate == "" {
			return Data{}, fmt.Errorf("vehicle %d: model and plate are required", i+1)
		}
		cents := math.Round(r.Price * 100)
		if math.IsNaN(cents) || cents < 0 || cents >= math.MaxInt64 {
			return Data{}, fmt.Errorf("vehicle %d: invalid price %v", i+1, r.Price)
		}
		d.Vehicles = append(d.Vehicles, repository.Vehicle{
			ID:         vehicleIDs[i],
			Model:      r.Model,
			Plate:      r.Plate,
			Status:     status,
			PriceCents: int64(cents),
			Year:       r.Year,
			Color:      r.Color,
			Odometer:   r.Odometer,
			Renavam:    r.Renavam,
			Chassis:    r.Chassis,
			PreviousOwner: repository.Owner{
				Name:       r.Owner.Name,
				TaxID:      r.Owner.TaxID,
				Phone:      r.Owner.Phone,
				PostalCode: r.Owner.PostalCode,
				Street:     r.Owner.Street,
				District:   r.Owner.District,
				City:       r.Owner.City,
			},
		})
	}
	for i, r := range f.Clients {
		if r.Name == "" {
			return Data{}, fmt.Errorf("client %d: name is required", i+1)
		}
		d.Clients = append(d.Clients, repository.Client{
			ID:        clientIDs[i],
			Name:      r.Name,
			TaxID:     r.TaxID,
			Phone:     r.Phone,
			Email:     r.Email,
			CreatedAt: r.CreatedAt,
			Address: repository.Address{
				PostalCode: r.PostalCode,
				City:       r.City,
				Street:     r.Street,
				District:   r.District,
				Complement: r.Complement,
			},
		})
	}
	return d, nil
}

// assignIDs checks the explicit ids of n records and returns the ids to
// store. Explicit ids must be positive and unique. When a file mixes records
// with and without ids, the missing ones are numbered after the largest
// explicit id in file order; a file without any ids leaves them to the store.
func assignIDs(kind string, n int, idOf func(int) int64) ([]int64, error) {
	ids := make([]int64, n)
	seen := make(map[int64]int, n)
	var maxID int64
	for i := range ids {
		id := idOf(i)
		if id < 0 {
			return nil, fmt.Errorf("%s %d: invalid id %d", kind, i+1, id)
		}
		if id == 0 {
			continue
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%s %d: duplicate id %d (also used by %s %d)", kind, i+1, id, kind, prev)
		}
		seen[id] = i + 1
		ids[i] = id
		maxID = max(maxID, id)
	}
	if maxID == 0 {
		return ids, nil
	}
	for i, id := range ids {
		if id == 0 {
			maxID++
			ids[i] = maxID
		}
	}
	return ids, nil
}
