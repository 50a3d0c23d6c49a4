package commands

import (
	"context"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/outbound"
	"booking-intake/internal/domain/throttle"
)

// Mailer delivers one rendered email template.
//
//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock
type Mailer interface {
	Send(ctx context.Context, tpl outbound.Template, params outbound.EmailParams) error
}

// ValidationError carries the per-field messages of a rejected draft.
type ValidationError struct {
	Result booking.Result
}

func (e *ValidationError) Error() string {
	return "booking validation failed"
}

// RateLimitedError carries the decision that blocked the submission.
type RateLimitedError struct {
	Decision throttle.Decision
}

func (e *RateLimitedError) Error() string {
	return "submission rate limit reached"
}
