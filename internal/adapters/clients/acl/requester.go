package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/todo-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/logging"
)

// Requester runs one JSON round trip against the backing API: build the
// request, send it through the resilient client, check the status, translate
// errors and decode the body.
type Requester struct {
	client *httpclient.Client
}

// NewRequester wraps client.
func NewRequester(client *httpclient.Client) *Requester {
	return &Requester{client: client}
}

// Call describes one request. Query, Header, Body and Into are optional;
// Want defaults to 200.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   any
	Want   int
	Into   any
}

// Do executes c.
func (r *Requester) Do(ctx context.Context, c Call) error {
	req, err := r.newRequest(ctx, c)
	if err != nil {
		return err
	}

	want := c.Want
	if want == 0 {
		want = http.StatusOK
	}
	logger := logging.FromContext(ctx)

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
	}
	if err != nil {
		// Exhausted retries still hand back the last response; its body is
		// more useful than the retry error.
		if resp != nil && resp.StatusCode != want {
			return TranslateHTTPError(resp)
		}
		logger.ErrorContext(ctx, "backing API request failed",
			slog.String("method", c.Method),
			slog.String("path", c.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", c.Method, c.Path, err)
	}

	if resp.StatusCode != want {
		logger.WarnContext(ctx, "unexpected status from backing API",
			slog.String("method", c.Method),
			slog.String("path", c.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", want),
		)
		return TranslateHTTPError(resp)
	}

	if c.Into != nil {
		if err := json.NewDecoder(resp.Body).Decode(c.Into); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", c.Method, c.Path, err)
		}
	}
	return nil
}

func (r *Requester) newRequest(ctx context.Context, c Call) (*http.Request, error) {
	target := r.client.BaseURL() + c.Path
	if len(c.Query) > 0 {
		target += "?" + c.Query.Encode()
	}

	body := io.Reader(http.NoBody)
	if c.Body != nil {
		b, err := json.Marshal(c.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", c.Method, c.Path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", c.Method, c.Path, err)
	}
	for k, vs := range c.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
