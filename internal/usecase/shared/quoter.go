package shared

import (
	"context"
	"log/slog"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/catalog"
	"booking-intake/internal/domain/pricing"
)

// Quoter prices a draft against the current catalog snapshot.
type Quoter struct {
	calculator *pricing.Calculator
	catalog    catalog.Reader
	logger     *slog.Logger
}

func NewQuoter(calculator *pricing.Calculator, reader catalog.Reader, logger *slog.Logger) *Quoter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Quoter{calculator: calculator, catalog: reader, logger: logger}
}

// Days counts rental days for d. An unreadable time falls back to whole
// dates; unreadable dates report zero.
func (q *Quoter) Days(d booking.Draft) int {
	days, err := pricing.RentalDays(d.PickupDate, d.PickupTime, d.ReturnDate, d.ReturnTime)
	if err == nil {
		return days
	}
	days, err = pricing.RentalDays(d.PickupDate, "", d.ReturnDate, "")
	if err != nil {
		return 0
	}
	return days
}

// Price returns nil when the vehicle has no usable catalog price or the
// catalog cannot be read. A catalog failure never blocks a booking.
func (q *Quoter) Price(ctx context.Context, vehicleName string, days int) *pricing.Breakdown {
	if vehicleName == "" || days <= 0 {
		return nil
	}
	entries, err := q.catalog.List(ctx)
	if err != nil {
		q.logger.WarnContext(ctx, "catalog unavailable, continuing without price", "error", err)
		return nil
	}
	b, ok := q.calculator.Quote(entries, vehicleName, days)
	if !ok {
		return nil
	}
	return &b
}
