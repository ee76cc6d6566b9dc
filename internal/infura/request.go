package infura

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabapcia/infura/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrRequestFailed wraps transport failures: connection errors, timeouts,
	// cancelled contexts and unreadable bodies.
	ErrRequestFailed = errors.New("infura request failed")

	// ErrUnexpectedStatus is matched by every *APIError.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrInvalidResponse indicates a 2xx response whose body is not valid JSON.
	ErrInvalidResponse = errors.New("invalid response body")
)

// APIError is returned when the API answers with a non-2xx status.
type APIError struct {
	Method     string // HTTP method of the request
	URL        string // Requested URL
	StatusCode int    // Response status code
	Body       []byte // Raw response body, possibly empty
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if body := strings.TrimSpace(string(e.Body)); body != "" {
		msg += ": " + body
	}
	return msg
}

// Unwrap lets errors.Is(err, ErrUnexpectedStatus) match.
func (e *APIError) Unwrap() error {
	return ErrUnexpectedStatus
}

// ConstructURL returns {base}/{version}/{path}. The version is the client's
// API version unless overridden with WithCallAPIVersion. path is used as is.
func (c *Client) ConstructURL(path string, opts ...CallOption) string {
	cc := c.resolve(opts)
	return c.cfg.baseURL + "/" + cc.apiVersion + "/" + path
}

// Get issues a GET request to url and returns the response body.
func (c *Client) Get(ctx context.Context, url string) (json.RawMessage, error) {
	return c.do(ctx, "get", http.MethodGet, url, nil)
}

// Post issues a POST request to url with body encoded as JSON and returns the
// response body. A nil body sends an empty request body.
func (c *Client) Post(ctx context.Context, url string, body any) (json.RawMessage, error) {
	return c.do(ctx, "post", http.MethodPost, url, body)
}

// do performs a single request, tracing and counting it under operation.
func (c *Client) do(ctx context.Context, operation, method, url string, body any) (json.RawMessage, error) {
	ctx = logger.Derive(ctx,
		"request_id", uuid.NewString(),
		"operation", operation,
		"method", method,
		"url", url,
	)

	ctx, span := c.tracer.Start(ctx, "infura."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", url),
		),
	)
	defer span.End()

	logger.Debug(ctx, "sending infura request")

	data, status, err := c.roundTrip(ctx, method, url, body)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Debug(ctx, "infura request failed", "status", status, "error", err)
	}

	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))

	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "infura request completed", "status", status, "bytes", len(data))
	return data, nil
}

// roundTrip sends the request and classifies the response. The returned status
// is zero when no response was received.
func (c *Client) roundTrip(ctx context.Context, method, url string, body any) (json.RawMessage, int, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, 0, fmt.Errorf("encoding request body: %w", err)
		}
	}

	var rawBody any
	if payload != nil {
		rawBody = payload
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, rawBody)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, res.StatusCode, fmt.Errorf("%w: reading body: %w", ErrRequestFailed, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, res.StatusCode, &APIError{
			Method:     method,
			URL:        url,
			StatusCode: res.StatusCode,
			Body:       data,
		}
	}

	if !json.Valid(data) {
		return nil, res.StatusCode, fmt.Errorf("%w: %s %s returned %d bytes of non-JSON content", ErrInvalidResponse, method, url, len(data))
	}

	return json.RawMessage(data), res.StatusCode, nil
}
