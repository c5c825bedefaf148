// Package acl is the anti-corruption layer in front of the backing todo API.
// It owns the wire shapes (see the todo and auth subpackages) and turns the
// API's error responses into domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 1 << 20

// validationErrorType is the "type" the backing API puts on 422 bodies.
const validationErrorType = "validation_error"

// errorBody covers both error shapes the backing API produces: its own
// validation body ({status, type, errors:[{field, reason, limit}], detail})
// and RFC 9457 problem details ({title, detail, errors:[{location, message}]}).
type errorBody struct {
	Status int              `json:"status"`
	Type   string           `json:"type"`
	Title  string           `json:"title"`
	Detail string           `json:"detail"`
	Errors []wireFieldError `json:"errors"`
}

type wireFieldError struct {
	Field    string `json:"field"`
	Reason   string `json:"reason"`
	Limit    *int   `json:"limit,omitempty"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a non-success response to a domain error. 400 and
// 422 bodies with field errors become a *domain.ValidationError that keeps
// the API's field names, reasons and limits as sent.
func TranslateHTTPError(resp *http.Response) error {
	body := readErrorBody(resp)

	detail := body.Detail
	if detail == "" {
		detail = body.Title
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch status := resp.StatusCode; {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if errs := toFieldErrors(body.Errors); len(errs) > 0 {
			return &domain.ValidationError{Errors: errs, Detail: body.Detail}
		}
		return &domain.ValidationError{Detail: detail}
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnauthorized)
	case status == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case status == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", status, detail)
	}
}

func readErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}
	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") && !strings.HasPrefix(ct, "application/problem+json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errorBody{}
	}
	return body
}

// toFieldErrors keeps validation-body entries verbatim. Problem-detail
// entries carry only a location and free text, so they are reported as
// invalid_format on the field the location names.
func toFieldErrors(wire []wireFieldError) []domain.FieldError {
	out := make([]domain.FieldError, 0, len(wire))
	for _, w := range wire {
		switch {
		case w.Field != "" && w.Reason != "":
			fe := domain.FieldError{Field: w.Field, Reason: domain.Reason(w.Reason)}
			if w.Limit != nil {
				fe.Limit = *w.Limit
			}
			out = append(out, fe)
		case w.Location != "":
			field := w.Location[strings.LastIndex(w.Location, ".")+1:]
			out = append(out, domain.InvalidFormat(field))
		}
	}
	return out
}
