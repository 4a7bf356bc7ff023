package httpclient

import (
	"fmt"
	"time"
)

// RetryableError records a response that was retried until attempts ran out.
type RetryableError struct {
	StatusCode int
	RetryAfter time.Duration
}

func (e *RetryableError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("retryable status %d (retry after %s)", e.StatusCode, e.RetryAfter)
	}
	return fmt.Sprintf("retryable status %d", e.StatusCode)
}
