package commands

import (
	"context"
	"log/slog"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/outbound"
	"booking-intake/internal/domain/pricing"
	"booking-intake/internal/domain/throttle"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/pkg/metrics"
	"booking-intake/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	channelEmail    = "email"
	channelWhatsApp = "whatsapp"
)

type SubmitResult struct {
	Reference    string
	Days         int
	Price        *pricing.Breakdown
	AttemptsLeft int
}

type WhatsAppResult struct {
	Link  string
	Days  int
	Price *pricing.Breakdown
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock
type BookingCommands interface {
	// Submit sends the booking by email and charges one throttle attempt.
	Submit(ctx context.Context, draft booking.Draft, signals throttle.Signals) (*SubmitResult, error)
	// WhatsApp builds the messaging deep link. It is not throttled.
	WhatsApp(ctx context.Context, draft booking.Draft) (*WhatsAppResult, error)
	ResetThrottle(ctx context.Context, signals throttle.Signals) error
}

type bookingCommandsImpl struct {
	validator *booking.Validator
	quoter    *shared.Quoter
	limiter   *throttle.Limiter
	mailer    Mailer
	metrics   *metrics.Intake
	logger    *slog.Logger
	defaults  booking.Defaults
	msgHost   string
	msgNumber string
}

func NewBookingCommands(
	validator *booking.Validator,
	quoter *shared.Quoter,
	limiter *throttle.Limiter,
	mailer Mailer,
	intake *metrics.Intake,
	logger *slog.Logger,
	cfg config.Config,
) BookingCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingCommandsImpl{
		validator: validator,
		quoter:    quoter,
		limiter:   limiter,
		mailer:    mailer,
		metrics:   intake,
		logger:    logger,
		defaults: booking.Defaults{
			PickupLocation: cfg.Booking.DefaultPickupLocation,
			PickupTime:     cfg.Booking.DefaultPickupTime,
		},
		msgHost:   cfg.Booking.MessagingHost,
		msgNumber: cfg.Booking.MessagingNumber,
	}
}

func (b *bookingCommandsImpl) Submit(ctx context.Context, draft booking.Draft, signals throttle.Signals) (*SubmitResult, error) {
	d := draft.WithDefaults(b.defaults)

	if result := b.validator.Validate(d); !result.Valid {
		b.metrics.IncSubmission(channelEmail, metrics.OutcomeInvalid)
		return nil, errs.Mark(&ValidationError{Result: result}, errs.ErrValidationFailed)
	}

	fingerprint := throttle.Fingerprint(signals)
	decision := b.limiter.Check(ctx, fingerprint)
	b.metrics.IncThrottle(decision.Allowed)
	if !decision.Allowed {
		b.metrics.IncSubmission(channelEmail, metrics.OutcomeThrottled)
		return nil, errs.Mark(&RateLimitedError{Decision: decision}, errs.ErrRateLimited)
	}

	days := b.quoter.Days(d)
	price := b.quoter.Price(ctx, d.VehicleName, days)
	reference := uuid.NewString()
	params := outbound.NewEmailParams(reference, d, days, price)

	err := b.mailer.Send(ctx, outbound.TemplateOwner, params)
	b.metrics.IncDispatch(string(outbound.TemplateOwner), err)
	if err != nil {
		b.metrics.IncSubmission(channelEmail, metrics.OutcomeFailed)
		return nil, errs.Mark(errs.Wrap(err, "send owner email"), errs.ErrDispatchFailed)
	}

	err = b.mailer.Send(ctx, outbound.TemplateClient, params)
	b.metrics.IncDispatch(string(outbound.TemplateClient), err)
	if err != nil {
		b.logger.WarnContext(ctx, "client confirmation email failed",
			"reference", reference, "error", err)
	}

	if err := b.limiter.Record(ctx, fingerprint); err != nil {
		b.logger.WarnContext(ctx, "failed to record submission attempt",
			"reference", reference, "fingerprint", fingerprint, "error", err)
	}

	b.metrics.IncSubmission(channelEmail, metrics.OutcomeAccepted)
	b.logger.InfoContext(ctx, "booking submitted",
		"reference", reference, "car_type", d.VehicleName, "rental_days", days)

	return &SubmitResult{
		Reference:    reference,
		Days:         days,
		Price:        price,
		AttemptsLeft: decision.AttemptsLeft,
	}, nil
}

func (b *bookingCommandsImpl) WhatsApp(ctx context.Context, draft booking.Draft) (*WhatsAppResult, error) {
	d := draft.WithDefaults(b.defaults)

	if result := b.validator.Validate(d); !result.Valid {
		b.metrics.IncSubmission(channelWhatsApp, metrics.OutcomeInvalid)
		return nil, errs.Mark(&ValidationError{Result: result}, errs.ErrValidationFailed)
	}

	days := b.quoter.Days(d)
	price := b.quoter.Price(ctx, d.VehicleName, days)
	b.metrics.IncSubmission(channelWhatsApp, metrics.OutcomeAccepted)

	return &WhatsAppResult{
		Link:  outbound.WhatsAppLink(b.msgHost, b.msgNumber, d, days, price),
		Days:  days,
		Price: price,
	}, nil
}

func (b *bookingCommandsImpl) ResetThrottle(ctx context.Context, signals throttle.Signals) error {
	return b.limiter.Reset(ctx, throttle.Fingerprint(signals))
}
