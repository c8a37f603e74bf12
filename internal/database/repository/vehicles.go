package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// VehicleRepo handles the vehicle inventory.
type VehicleRepo struct {
	db DBTX
}

func NewVehicleRepo(db DBTX) *VehicleRepo { return &VehicleRepo{db: db} }

const vehicleColumns = `id, model, plate, status, price_cents, year, color, odometer, renavam, chassis,
 owner_name, owner_tax_id, owner_phone, owner_postal, owner_street, owner_district, owner_city`

// Insert appends v to the inventory. A zero ID is assigned from the table's
// autoincrement sequence; the stored record is returned. The row is placed
// after every existing row whatever its ID.
func (r *VehicleRepo) Insert(ctx context.Context, v Vehicle) (Vehicle, error) {
	if !v.Status.Valid() {
		return Vehicle{}, fmt.Errorf("insert vehicle: invalid status %q", v.Status)
	}
	var id any
	if v.ID != 0 {
		id = v.ID
	}
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO vehicles(seq, `+vehicleColumns+`)
	VALUES((SELECT COALESCE(MAX(seq), 0) + 1 FROM vehicles),
	 ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		id, v.Model, v.Plate, string(v.Status), v.PriceCents, v.Year, v.Color, v.Odometer, v.Renavam, v.Chassis,
		v.PreviousOwner.Name, v.PreviousOwner.TaxID, v.PreviousOwner.Phone, v.PreviousOwner.PostalCode,
		v.PreviousOwner.Street, v.PreviousOwner.District, v.PreviousOwner.City)
	if err != nil {
		return Vehicle{}, fmt.Errorf("insert vehicle: %w", err)
	}
	if v.ID == 0 {
		if v.ID, err = res.LastInsertId(); err != nil {
			return Vehicle{}, fmt.Errorf("insert vehicle: %w", err)
		}
	}
	return v, nil
}

// Update replaces every field of the record with v.ID. The row keeps its
// position in the inventory order.
func (r *VehicleRepo) Update(ctx context.Context, v Vehicle) error {
	if !v.Status.Valid() {
		return fmt.Errorf("update vehicle %d: invalid status %q", v.ID, v.Status)
	}
	res, err := r.db.ExecContext(ctx, `
	UPDATE vehicles SET
	 model = ?, plate = ?, status = ?, price_cents = ?, year = ?, color = ?, odometer = ?,
	 renavam = ?, chassis = ?, owner_name = ?, owner_tax_id = ?, owner_phone = ?,
	 owner_postal = ?, owner_street = ?, owner_district = ?, owner_city = ?,
	 updated_at = CURRENT_TIMESTAMP
	WHERE id = ?;
	`,
		v.Model, v.Plate, string(v.Status), v.PriceCents, v.Year, v.Color, v.Odometer,
		v.Renavam, v.Chassis, v.PreviousOwner.Name, v.PreviousOwner.TaxID, v.PreviousOwner.Phone,
		v.PreviousOwner.PostalCode, v.PreviousOwner.Street, v.PreviousOwner.District, v.PreviousOwner.City,
		v.ID)
	if err != nil {
		return fmt.Errorf("update vehicle %d: %w", v.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update vehicle %d: %w", v.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("update vehicle %d: %w", v.ID, ErrNotFound)
	}
	return nil
}

// List returns the inventory in insertion order.
func (r *VehicleRepo) List(ctx context.Context) ([]Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VehicleRepo) Get(ctx context.Context, id int64) (*Vehicle, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = ?`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// Count returns the number of stored vehicles.
func (r *VehicleRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&n)
	return n, err
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row scanner) (Vehicle, error) {
	var v Vehicle
	var status string
	var year, odometer sql.NullInt64
	var color sql.NullString
	o := &v.PreviousOwner
	if err := row.Scan(&v.ID, &v.Model, &v.Plate, &status, &v.PriceCents, &year, &color, &odometer,
		&v.Renavam, &v.Chassis, &o.Name, &o.TaxID, &o.Phone, &o.PostalCode, &o.Street, &o.District, &o.City); err != nil {
		return Vehicle{}, err
	}
	v.Status = Status(status)
	if year.Valid {
		y := int(year.Int64)
		v.Year = &y
	}
	if color.Valid {
		v.Color = &color.String
	}
	if odometer.Valid {
		km := int(odometer.Int64)
		v.Odometer = &km
	}
	return v, nil
}
