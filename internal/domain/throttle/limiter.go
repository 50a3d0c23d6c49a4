package throttle

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"booking-intake/internal/pkg/clock"
	"booking-intake/internal/pkg/errs"
)

const (
	DefaultMaxAttempts = 3
	DefaultWindow      = time.Hour
	DefaultKeyPrefix   = "booking_submissions"
)

type Config struct {
	MaxAttempts int
	Window      time.Duration
	KeyPrefix   string
}

// Decision is derived on every check and never stored.
type Decision struct {
	Allowed              bool
	RemainingTimeMinutes int
	AttemptsLeft         int
}

// record is the persisted value: attempt times in epoch milliseconds.
type record struct {
	Attempts []int64 `json:"attempts"`
}

// Limiter is a per-fingerprint sliding window over successful submissions.
// It is advisory: storage failures let the user through.
type Limiter struct {
	store  Store
	clock  clock.Clock
	cfg    Config
	logger *slog.Logger
}

func NewLimiter(store Store, clk clock.Clock, cfg Config, logger *slog.Logger) *Limiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Limiter{store: store, clock: clk, cfg: cfg, logger: logger}
}

func (l *Limiter) Key(fingerprint string) string {
	return l.cfg.KeyPrefix + "_" + fingerprint
}

// Check reports whether fingerprint may submit now.
func (l *Limiter) Check(ctx context.Context, fingerprint string) Decision {
	now := l.clock.Now().UnixMilli()

	rec, found, err := l.load(ctx, fingerprint)
	if err != nil {
		l.logger.WarnContext(ctx, "throttle check failed, allowing submission",
			"fingerprint", fingerprint, "error", err)
		return Decision{Allowed: true, AttemptsLeft: l.cfg.MaxAttempts}
	}
	if !found {
		return Decision{Allowed: true, AttemptsLeft: l.cfg.MaxAttempts - 1}
	}

	attempts := l.prune(rec.Attempts, now)
	if len(attempts) >= l.cfg.MaxAttempts {
		oldest := attempts[0]
		for _, ts := range attempts[1:] {
			oldest = min(oldest, ts)
		}
		remaining := l.cfg.Window.Milliseconds() - (now - oldest)
		return Decision{
			Allowed:              false,
			RemainingTimeMinutes: int(math.Ceil(float64(remaining) / 60000)),
			AttemptsLeft:         0,
		}
	}

	return Decision{
		Allowed:      true,
		AttemptsLeft: l.cfg.MaxAttempts - len(attempts) - 1,
	}
}

// Record charges one attempt. Call it only after the submission went out.
// A corrupt record is replaced rather than left blocking future writes.
func (l *Limiter) Record(ctx context.Context, fingerprint string) error {
	now := l.clock.Now().UnixMilli()

	rec, _, err := l.load(ctx, fingerprint)
	if err != nil {
		if !errs.Is(err, errs.ErrCorruptThrottle) {
			return err
		}
		l.logger.WarnContext(ctx, "discarding corrupt throttle record",
			"fingerprint", fingerprint, "error", err)
		rec = record{}
	}

	rec.Attempts = append(l.prune(rec.Attempts, now), now)
	raw, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "encode throttle record")
	}
	if err := l.store.Set(ctx, l.Key(fingerprint), string(raw)); err != nil {
		return errs.Mark(errs.Wrap(err, "write throttle record"), errs.ErrThrottleStorage)
	}
	return nil
}

// Reset forgets every attempt of fingerprint. Debug and test use only.
func (l *Limiter) Reset(ctx context.Context, fingerprint string) error {
	if err := l.store.Remove(ctx, l.Key(fingerprint)); err != nil {
		return errs.Mark(errs.Wrap(err, "remove throttle record"), errs.ErrThrottleStorage)
	}
	return nil
}

func (l *Limiter) load(ctx context.Context, fingerprint string) (record, bool, error) {
	raw, found, err := l.store.Get(ctx, l.Key(fingerprint))
	if err != nil {
		return record{}, false, errs.Mark(errs.Wrap(err, "read throttle record"), errs.ErrThrottleStorage)
	}
	if !found {
		return record{}, false, nil
	}
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return record{}, false, errs.Mark(errs.Wrap(err, "decode throttle record"), errs.ErrCorruptThrottle)
	}
	return rec, true, nil
}

// prune keeps attempts younger than the window, preserving order.
func (l *Limiter) prune(attempts []int64, now int64) []int64 {
	window := l.cfg.Window.Milliseconds()
	kept := make([]int64, 0, len(attempts))
	for _, ts := range attempts {
		if now-ts < window {
			kept = append(kept, ts)
		}
	}
	return kept
}
