package dispatch

import (
	"context"
	"log/slog"

	"booking-intake/internal/domain/outbound"
)

// Log only writes the email to the logger. Used in development and tests.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Send(ctx context.Context, tpl outbound.Template, params outbound.EmailParams) error {
	l.logger.InfoContext(ctx, "email dispatched",
		"template", string(tpl),
		"reference", params["reference"],
		"car_type", params["car_type"],
		"rental_days", params["rental_days"],
		"total", params["total"],
	)
	return nil
}
