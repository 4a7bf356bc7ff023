// Package httpclient provides a shared retrying HTTP client used by the
// Hevo API client, the LLM providers and the embedders.
package httpclient

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// RetryStrategy selects which responses are retried.
type RetryStrategy int

const (
	// NoRetry fails immediately on any error response.
	NoRetry RetryStrategy = iota
	// ConservativeRetry retries only 429 and 5xx responses.
	ConservativeRetry
	// SmartRetry additionally retries 408 request timeouts.
	SmartRetry
)

// Client wraps http.Client with retry and backoff behavior.
type Client struct {
	httpClient *http.Client
	strategy   RetryStrategy
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithRetryStrategy selects the retry strategy.
func WithRetryStrategy(strategy RetryStrategy) Option {
	return func(c *Client) { c.strategy = strategy }
}

// WithMaxRetries caps the number of retry attempts.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithBaseDelay sets the initial backoff delay.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) { c.baseDelay = d }
}

// WithTransport replaces the underlying transport, used by tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.httpClient.Transport = rt }
}

// New builds a client. Defaults: 60s timeout, conservative retry, 3
// attempts, 500ms base delay.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		strategy:   ConservativeRetry,
		maxRetries: 3,
		baseDelay:  500 * time.Millisecond,
		maxDelay:   30 * time.Second,
		log:        slog.Default().With("component", "httpclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes the request, retrying per strategy. Requests with a body must
// set req.GetBody (http.NewRequest does this for common body types) so the
// body can be rewound between attempts.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, fmt.Errorf("failed to rewind request body: %w", err)
				}
				req.Body = body
			}
			delay := c.backoff(attempt, lastErr)
			c.log.Debug("retrying request",
				"method", req.Method, "url", req.URL.String(),
				"attempt", attempt, "delay", delay)
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(delay):
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if c.strategy == NoRetry {
				return nil, err
			}
			continue
		}

		if !c.shouldRetry(resp.StatusCode) {
			return resp, nil
		}

		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		resp.Body.Close()
		lastErr = &RetryableError{
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter,
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) shouldRetry(status int) bool {
	switch c.strategy {
	case NoRetry:
		return false
	case ConservativeRetry:
		return status == http.StatusTooManyRequests || status >= 500
	case SmartRetry:
		return status == http.StatusTooManyRequests ||
			status == http.StatusRequestTimeout || status >= 500
	}
	return false
}

// backoff computes the delay before the next attempt: exponential with
// jitter, honoring Retry-After when the server supplied one.
func (c *Client) backoff(attempt int, lastErr error) time.Duration {
	if re, ok := lastErr.(*RetryableError); ok && re.RetryAfter > 0 {
		return re.RetryAfter
	}

	delay := time.Duration(float64(c.baseDelay) * math.Pow(2, float64(attempt-1)))
	if delay > c.maxDelay {
		delay = c.maxDelay
	}
	// Up to 25% jitter to avoid thundering herds.
	jitter := time.Duration(rand.Int63n(int64(delay)/4 + 1))
	return delay + jitter
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return 0
}
