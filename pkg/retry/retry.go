package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// Config configures exponential backoff between attempts
type Config struct {
	MaxRetries int           `mapstructure:"max_retries" default:"3"`
	BaseDelay  time.Duration `mapstructure:"base_delay" default:"100ms"`
	MaxDelay   time.Duration `mapstructure:"max_delay" default:"2s"`
	Jitter     bool          `mapstructure:"jitter" default:"true"`
}

// permanentError stops the retry loop
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so that Do returns it without further attempts
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err}
}

// Do calls operation until it succeeds, returns a permanent error, the
// retries are exhausted or ctx is done. The last error is returned.
func Do(ctx context.Context, cfg Config, operation func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(Backoff(cfg, attempt-1))
			select {
			case <-ctx.Done():
				timer.Stop()
				return errors.Join(err, ctx.Err())
			case <-timer.C:
			}
		}

		err = operation(ctx)
		if err == nil {
			return nil
		}

		var permanent *permanentError
		if errors.As(err, &permanent) {
			return permanent.err
		}
	}
	return err
}

// Backoff returns the delay before the retry following the given attempt
func Backoff(cfg Config, attempt int) time.Duration {
	if cfg.BaseDelay <= 0 {
		return 0
	}
	delay := time.Duration(float64(cfg.BaseDelay) * math.Pow(2, float64(attempt)))
	if cfg.MaxDelay > 0 && (delay > cfg.MaxDelay || delay <= 0) {
		delay = cfg.MaxDelay
	}
	if cfg.Jitter {
		// +/- 20%
		jitter := float64(delay) * 0.2 * (2*rand.Float64() - 1)
		delay += time.Duration(jitter)
	}
	return delay
}
