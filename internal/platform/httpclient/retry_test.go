package httpclient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestBackoff(t *testing.T) {
	t.Parallel()

	p := retryPolicy{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}

	for attempt := 1; attempt <= 6; attempt++ {
		base := math.Min(float64(p.initialInterval)*math.Pow(2, float64(attempt-1)), float64(p.maxInterval))
		lo := time.Duration(base * (1 - jitterFraction))
		hi := time.Duration(base * (1 + jitterFraction))

		for range 200 {
			if d := backoff(attempt, p); d < lo || d > hi {
				t.Fatalf("backoff(%d) = %v, want within [%v, %v]", attempt, d, lo, hi)
			}
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: context.Canceled, want: false},
		{err: fmt.Errorf("wrapped: %w", context.DeadlineExceeded), want: false},
		{err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{err: errors.New("unexpected EOF"), want: true},
	}

	for _, tt := range tests {
		if got := isRetryable(tt.err); got != tt.want {
			t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestShouldRetryStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		idempotent bool
		status     int
		want       bool
	}{
		{idempotent: true, status: http.StatusOK, want: false},
		{idempotent: true, status: http.StatusNotFound, want: false},
		{idempotent: true, status: http.StatusUnprocessableEntity, want: false},
		{idempotent: true, status: http.StatusTooManyRequests, want: true},
		{idempotent: true, status: http.StatusInternalServerError, want: true},
		{idempotent: true, status: http.StatusBadGateway, want: true},
		{idempotent: false, status: http.StatusInternalServerError, want: false},
		{idempotent: false, status: http.StatusBadGateway, want: false},
		{idempotent: false, status: http.StatusServiceUnavailable, want: true},
		{idempotent: false, status: http.StatusTooManyRequests, want: true},
	}

	for _, tt := range tests {
		if got := shouldRetryStatus(tt.idempotent, tt.status); got != tt.want {
			t.Errorf("shouldRetryStatus(%v, %d) = %v, want %v", tt.idempotent, tt.status, got, tt.want)
		}
	}
}

func TestIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodHead} {
		if !isIdempotent(m) {
			t.Errorf("isIdempotent(%s) = false, want true", m)
		}
	}
	for _, m := range []string{http.MethodPost, http.MethodPatch} {
		if isIdempotent(m) {
			t.Errorf("isIdempotent(%s) = true, want false", m)
		}
	}
}
