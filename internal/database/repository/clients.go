package repository

import (
	"context"
	"fmt"
	"time"
)

// ClientRepo handles client records. Records are append-only.
type ClientRepo struct {
	db DBTX
}

func NewClientRepo(db DBTX) *ClientRepo { return &ClientRepo{db: db} }

// Insert appends c and returns it with its assigned ID. A zero CreatedAt is
// stamped with the insert time.
func (r *ClientRepo) Insert(ctx context.Context, c Client) (Client, error) {
	var id any
	if c.ID != 0 {
		id = c.ID
	}
	var createdAt any
	if !c.CreatedAt.IsZero() {
		createdAt = c.CreatedAt.UTC().Format(time.DateTime)
	}
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO clients(seq, id, name, tax_id, phone, email, postal_code, city, street, district, complement, created_at)
	VALUES((SELECT COALESCE(MAX(seq), 0) + 1 FROM clients),
	 ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP));
	`, id, c.Name, c.TaxID, c.Phone, c.Email,
		c.Address.PostalCode, c.Address.City, c.Address.Street, c.Address.District, c.Address.Complement,
		createdAt)
	if err != nil {
		return Client{}, fmt.Errorf("insert client: %w", err)
	}
	if c.ID == 0 {
		if c.ID, err = res.LastInsertId(); err != nil {
			return Client{}, fmt.Errorf("insert client: %w", err)
		}
	}
	row := r.db.QueryRowContext(ctx, `SELECT created_at FROM clients WHERE id = ?`, c.ID)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return Client{}, fmt.Errorf("insert client: %w", err)
	}
	return c, nil
}

// List returns clients in submission order.
func (r *ClientRepo) List(ctx context.Context) ([]Client, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, tax_id, phone, email, postal_code, city, street, district, complement, created_at
	FROM clients ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Client
	for rows.Next() {
		var c Client
		a := &c.Address
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.Email,
			&a.PostalCode, &a.City, &a.Street, &a.District, &a.Complement, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Count returns the number of stored clients.
func (r *ClientRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n)
	return n, err
}
