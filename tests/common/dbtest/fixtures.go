//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// VehiclesSchema mirrors the catalog owner's table; only the columns read here.
const VehiclesSchema = `
CREATE TABLE IF NOT EXISTS vehicles (
	id        BIGSERIAL PRIMARY KEY,
	name      TEXT NOT NULL UNIQUE,
	model     TEXT NOT NULL DEFAULT '',
	price     TEXT NOT NULL,
	available BOOLEAN NOT NULL DEFAULT TRUE
)`

func CreateTestVehicle(t *testing.T, db DBLike, name, model, price string, available bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO vehicles (name, model, price, available) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO UPDATE SET model = EXCLUDED.model, price = EXCLUDED.price, available = EXCLUDED.available
		 RETURNING id`,
		name, model, price, available).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts the reference fleet used by the e2e suites
func SeedReferenceData(db DBLike) error {
	ctx := context.Background()
	if _, err := db.Exec(ctx, VehiclesSchema); err != nil {
		return err
	}
	_, err := db.Exec(ctx, `
		INSERT INTO vehicles (name, model, price, available) VALUES
			('Citycar', 'Suzuki Swift', '$25.000', TRUE),
			('SUV', 'Hyundai Tucson', '$35.000', TRUE),
			('Van', 'Hyundai H1', 'A consultar', FALSE)
		ON CONFLICT (name) DO NOTHING`)
	return err
}

// drops every vehicle and reseeds the reference fleet
func ResetDB(db DBLike) error {
	if _, err := db.Exec(context.Background(), "TRUNCATE vehicles RESTART IDENTITY"); err != nil {
		return err
	}
	return SeedReferenceData(db)
}
