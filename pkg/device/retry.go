package device

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a failure as transient: a network timeout, a
// busy automation server, a 5xx response. [retry] attempts the
// operation again only for errors wrapped in this type.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

const (
	retryAttempts     = 3
	retryInitialDelay = time.Second
)

// retry runs fn up to retryAttempts times with exponentially growing
// delays. Non-retryable errors abort immediately; a cancelled context
// wins over the remaining attempts.
func retry(ctx context.Context, fn func() error) error {
	delay := retryInitialDelay
	var lastErr error

	for i := range retryAttempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !errors.As(err, new(*RetryableError)) {
			return err
		}

		if i < retryAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
