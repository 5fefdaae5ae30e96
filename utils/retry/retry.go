package retry

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	errs "c2p-system/errors"
)

// Config bounds one retry loop. Attempt numbering starts at 1; a call with
// MaxRetries=3 performs at most three attempts.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultConfig - 3 attempts, 1s base, 30s cap
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   time.Second * 30,
	}
}

// Backoff returns the jitter-free delay after a failed attempt:
// min(BaseDelay * 2^(attempt-1), MaxDelay).
func Backoff(attempt int, cfg Config) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := cfg.BaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= cfg.MaxDelay || delay <= 0 {
			return cfg.MaxDelay
		}
	}

	if delay > cfg.MaxDelay {
		return cfg.MaxDelay
	}
	return delay
}

// Delay adds up to 10% uniform jitter on top of Backoff, floored to a
// whole millisecond.
func Delay(attempt int, cfg Config) time.Duration {
	base := Backoff(attempt, cfg)
	jitter := time.Duration(rand.Float64() * 0.1 * float64(base))

	return (base + jitter) / time.Millisecond * time.Millisecond
}

// Do runs fn up to cfg.MaxRetries times, classifying each failure and
// sleeping Delay between retryable attempts. Non-retryable failures and
// the final attempt surface immediately as a *errs.GatewayError. The
// attempt counter is local to the call, there is no resumable state.
func Do(ctx context.Context, cfg Config, logger *zap.Logger, fn func(ctx context.Context) error) error {
	var normalized *errs.GatewayError

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		normalized = errs.Classify(err)

		if !errs.IsRetryable(normalized) || attempt >= cfg.MaxRetries {
			logger.With(
				zap.String("code", string(normalized.Code)),
				zap.String("severity", string(normalized.Severity)),
				zap.Int("attempt", attempt),
				zap.Int("max_retries", cfg.MaxRetries),
			).Error("gateway_operation_failed")
			return normalized
		}

		delay := Delay(attempt, cfg)
		logger.With(
			zap.String("code", string(normalized.Code)),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", cfg.MaxRetries),
			zap.Duration("delay", delay),
		).Warn("gateway_operation_retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return errs.Classify(ctx.Err())
		}
	}

	return normalized
}
