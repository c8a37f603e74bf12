package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/revenda/internal/database/repository"
)

// SeedDefaults loads the starting inventory and clients into an empty session
// store in one transaction. It is idempotent: stores that already hold records
// are left alone.
func SeedDefaults(ctx context.Context, db *sql.DB, vehicles []repository.Vehicle, clients []repository.Client) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		return seed(ctx, tx, vehicles, clients)
	})
}

func seed(ctx context.Context, tx repository.DBTX, vehicles []repository.Vehicle, clients []repository.Client) error {
	vehicleRepo := repository.NewVehicleRepo(tx)
	n, err := vehicleRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed vehicles: %w", err)
	}
	if n == 0 {
		for _, v := range vehicles {
			if _, err := vehicleRepo.Insert(ctx, v); err != nil {
				return fmt.Errorf("seed vehicle %q: %w", v.Model, err)
			}
		}
	}

	clientRepo := repository.NewClientRepo(tx)
	n, err = clientRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed clients: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, c := range clients {
		if _, err := clientRepo.Insert(ctx, c); err != nil {
			return fmt.Errorf("seed client %q: %w", c.Name, err)
		}
	}
	return nil
}
