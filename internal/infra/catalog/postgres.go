package catalog

import (
	"context"

	domain "booking-intake/internal/domain/catalog"
	"booking-intake/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const listVehicles = `SELECT id, name, model, price, available FROM vehicles ORDER BY id`

// Postgres reads the fleet table owned by the catalog service.
type Postgres struct {
	db Querier
}

func NewPostgres(db Querier) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) List(ctx context.Context) ([]domain.Entry, error) {
	rows, err := p.db.Query(ctx, listVehicles)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "query vehicles"), errs.ErrCatalogLoad)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Entry, error) {
		var e domain.Entry
		err := row.Scan(&e.ID, &e.Name, &e.Model, &e.DailyPrice, &e.Available)
		return e, err
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "scan vehicles"), errs.ErrCatalogLoad)
	}
	return entries, nil
}
