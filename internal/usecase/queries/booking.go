package queries

import (
	"context"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/pricing"
	"booking-intake/internal/domain/throttle"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase/shared"
)

var ErrUnknownField = errs.New("unknown booking field")

type QuoteView struct {
	Days  int
	Price *pricing.Breakdown
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock
type BookingQueries interface {
	// Validate checks the whole draft, or only field when it is not empty.
	Validate(ctx context.Context, draft booking.Draft, field string) (booking.Result, error)
	Quote(ctx context.Context, draft booking.Draft) (*QuoteView, error)
	ThrottleStatus(ctx context.Context, signals throttle.Signals) throttle.Decision
}

type bookingQueriesImpl struct {
	validator *booking.Validator
	quoter    *shared.Quoter
	limiter   *throttle.Limiter
	defaults  booking.Defaults
}

func NewBookingQueries(
	validator *booking.Validator,
	quoter *shared.Quoter,
	limiter *throttle.Limiter,
	cfg config.Config,
) BookingQueries {
	return &bookingQueriesImpl{
		validator: validator,
		quoter:    quoter,
		limiter:   limiter,
		defaults: booking.Defaults{
			PickupLocation: cfg.Booking.DefaultPickupLocation,
			PickupTime:     cfg.Booking.DefaultPickupTime,
		},
	}
}

func (q *bookingQueriesImpl) Validate(_ context.Context, draft booking.Draft, field string) (booking.Result, error) {
	d := draft.WithDefaults(q.defaults)
	if field == "" {
		return q.validator.Validate(d), nil
	}
	if !booking.IsKnownField(field) {
		return booking.Result{}, errs.Wrapf(ErrUnknownField, "field %q", field)
	}
	return q.validator.ValidateField(d, field), nil
}

func (q *bookingQueriesImpl) Quote(ctx context.Context, draft booking.Draft) (*QuoteView, error) {
	d := draft.WithDefaults(q.defaults)
	days := q.quoter.Days(d)
	return &QuoteView{
		Days:  days,
		Price: q.quoter.Price(ctx, d.VehicleName, days),
	}, nil
}

func (q *bookingQueriesImpl) ThrottleStatus(ctx context.Context, signals throttle.Signals) throttle.Decision {
	return q.limiter.Check(ctx, throttle.Fingerprint(signals))
}
