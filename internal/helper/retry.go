package helper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const maxRetryDelay = 30 * time.Second

// RetryableFunc reports its result, whether a failure is worth another attempt, and the error.
type RetryableFunc[T any] func() (T, bool, error)

// RetryWithBackoff runs operation up to maxRetries+1 times, doubling the delay after each
// retryable failure. Context cancellation stops it between attempts.
func RetryWithBackoff[T any](ctx context.Context, operation RetryableFunc[T], maxRetries int, baseDelay time.Duration) (T, error) {
	var (
		result T
		err    error
		retry  bool
	)

	delay := baseDelay
	for attempt := 1; attempt <= maxRetries+1; attempt++ {
		result, retry, err = operation()
		switch {
		case err == nil:
			return result, nil
		case !retry, errors.Is(err, context.Canceled):
			return result, err
		case attempt > maxRetries:
			return result, fmt.Errorf("gave up after %d attempts: %w", attempt, err)
		}

		slog.Warn("Retrying failed operation", "attempt", attempt, "delay", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		delay = min(delay*2, maxRetryDelay)
	}
	return result, err
}

// ShouldRetryHTTP treats transport errors, 5xx and 429 as transient.
func ShouldRetryHTTP(resp *http.Response, err error) bool {
	if err != nil || resp == nil {
		return true
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
}
