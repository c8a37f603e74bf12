package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so repos can run inside a
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrNotFound is returned when an update targets a record that does not exist.
var ErrNotFound = errors.New("record not found")

// Status is the mutually exclusive sale state of a vehicle.
type Status string

const (
	StatusAvailable   Status = "disponivel"
	StatusSold        Status = "vendido"
	StatusNegotiation Status = "negociacao"
)

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusNegotiation, StatusSold}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusNegotiation:
		return true
	}
	return false
}

// Label returns the display label.
func (s Status) Label() string {
	switch s {
	case StatusAvailable:
		return "Disponível"
	case StatusSold:
		return "Vendido"
	case StatusNegotiation:
		return "Em Negociação"
	default:
		return string(s)
	}
}

// Owner holds the previous-owner details captured with a vehicle.
type Owner struct {
	Name       string
	TaxID      string
	Phone      string
	PostalCode string
	Street     string
	District   string
	City       string
}

// Vehicle represents one inventory entry.
type Vehicle struct {
	ID            int64
	Model         string
	Plate         string
	Status        Status
	PriceCents    int64
	Year          *int
	Color         *string
	Odometer      *int
	Renavam       string
	Chassis       string
	PreviousOwner Owner
}

// Address is a client's postal address.
type Address struct {
	PostalCode string
	City       string
	Street     string
	District   string
	Complement string
}

// Client represents a customer contact.
type Client struct {
	ID        int64
	Name      string
	TaxID     string
	Phone     string
	Email     string
	Address   Address
	CreatedAt time.Time
}
