package prefs

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	maxRetries = 50
	baseDelay  = 10 * time.Millisecond
	maxDelay   = 25 * time.Millisecond
)

// isRetryableError checks if the error is a retryable SQLite error
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked") ||
		strings.Contains(errStr, "busy")
}

// retry runs fn until it succeeds, fails with a non-lock error or ctx ends
func (s *SQLiteStore) retry(ctx context.Context, what string, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = fn()
		if !isRetryableError(err) {
			return err
		}

		// Linear backoff with jitter (up to 50% of delay)
		delay := min(time.Duration(attempt+1)*baseDelay, maxDelay)
		delay += rand.N(delay / 2)

		s.log.Warn("[PREFS]: SQLite retry",
			zap.String("op", what),
			zap.Int("attempt", attempt+1),
			zap.Int("max", maxRetries),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(delay):
		}
	}
	return err
}
