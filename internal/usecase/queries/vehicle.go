package queries

import (
	"context"

	"booking-intake/internal/domain/catalog"
	"booking-intake/internal/pkg/errs"
)

//go:generate mockgen -source=vehicle.go -destination=../../../tests/mock/queries/vehicle.go -package=queriesmock
type VehicleQueries interface {
	List(ctx context.Context) ([]catalog.Entry, error)
}

type vehicleQueriesImpl struct {
	catalog catalog.Reader
}

func NewVehicleQueries(reader catalog.Reader) VehicleQueries {
	return &vehicleQueriesImpl{catalog: reader}
}

func (q *vehicleQueriesImpl) List(ctx context.Context) ([]catalog.Entry, error) {
	entries, err := q.catalog.List(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list vehicles"), errs.ErrCatalogLoad)
	}
	return entries, nil
}
