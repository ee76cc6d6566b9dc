// Package http builds the retryablehttp client shared by the Infura API client.
// Responses are handed back to the caller untouched, including non-2xx ones,
// so status handling stays with the code that knows the endpoint.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/infura/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      10 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     0 (a single attempt per request)
//
// The returned client never turns an exhausted response into an error: the
// last response (or transport error) is passed through as is. Attempts are
// logged at debug level with the request context, so fields attached with
// logger.Derive appear on every attempt.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      10 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RequestLogHook = logAttempt
	client.ResponseLogHook = logResponse
	client.CheckRetry = logFailedAttempt(client.CheckRetry)
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 0.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// logAttempt logs every attempt, including the first one (attempt 0).
func logAttempt(_ retryablehttp.Logger, req *http.Request, attempt int) {
	logger.Debug(req.Context(), "sending http request", "attempt", attempt)
}

// logResponse logs the status of every response received.
func logResponse(_ retryablehttp.Logger, res *http.Response) {
	logger.Debug(res.Request.Context(), "received http response", "status", res.StatusCode)
}

// logFailedAttempt wraps policy so transport errors of each attempt are logged
// before the retry decision.
func logFailedAttempt(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, res *http.Response, err error) (bool, error) {
		if err != nil {
			logger.Debug(ctx, "http request attempt failed", "error", err)
		}
		return policy(ctx, res, err)
	}
}
