package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/i18n"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/logging"
)

// ErrBadRequest marks a request that could not be read at all, such as
// malformed JSON or a non-numeric path id. It answers 400; field problems
// in a well-formed request are domain validation errors and answer 422.
var ErrBadRequest = errors.New("bad request")

// BadRequest wraps ErrBadRequest with a detail.
func BadRequest(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadRequest)
}

// Localizer renders problem titles and field errors in the caller's
// language. *i18n.Translator implements it.
type Localizer interface {
	Message(ctx context.Context, id string) string
	FieldError(ctx context.Context, fe domain.FieldError) string
}

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation error. Field, Reason and Limit
// are stable for programs; Message is for people.
type ErrorDetail struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Limit   *int   `json:"limit,omitempty"`
	Message string `json:"message"`
}

// problem pairs a status with its title message.
type problem struct {
	status  int
	titleID string
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// loc may be nil, in which case titles and messages stay untranslated.
func NewErrorResponse(r *http.Request, loc Localizer, err error) ErrorResponse {
	ctx := r.Context()
	p := classify(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    localize(ctx, loc, p.titleID, http.StatusText(p.status)),
		Status:   p.status,
		Detail:   err.Error(),
		Instance: r.URL.RequestURI(),
	}
	if p.status == http.StatusInternalServerError {
		// Internal errors can carry backing API URLs and other plumbing.
		resp.Detail = ""
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = FieldErrorDetails(ctx, loc, verr.Errors)
		resp.Detail = verr.Detail
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error with Content-Type application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, loc Localizer, err error) {
	resp := NewErrorResponse(r, loc, err)

	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// FieldErrorDetails converts domain field errors, keeping their order.
// The result is never nil.
func FieldErrorDetails(ctx context.Context, loc Localizer, errs []domain.FieldError) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(errs))
	for _, fe := range errs {
		d := ErrorDetail{Field: fe.Field, Reason: string(fe.Reason), Message: fe.String()}
		if fe.Reason.HasLimit() {
			limit := fe.Limit
			d.Limit = &limit
		}
		if loc != nil {
			d.Message = loc.FieldError(ctx, fe)
		}
		details = append(details, d)
	}
	return details
}

// classify maps domain sentinel errors to a status and title.
func classify(err error) problem {
	switch {
	case errors.Is(err, ErrBadRequest):
		return problem{http.StatusBadRequest, i18n.ProblemBadRequest}
	case errors.Is(err, domain.ErrValidation):
		return problem{http.StatusUnprocessableEntity, i18n.ProblemValidation}
	case errors.Is(err, domain.ErrNotFound):
		return problem{http.StatusNotFound, i18n.ProblemNotFound}
	case errors.Is(err, domain.ErrUnauthorized):
		return problem{http.StatusUnauthorized, i18n.ProblemUnauthorized}
	case errors.Is(err, domain.ErrForbidden):
		return problem{http.StatusForbidden, i18n.ProblemForbidden}
	case errors.Is(err, domain.ErrSuperseded):
		return problem{http.StatusConflict, i18n.ProblemSuperseded}
	case errors.Is(err, domain.ErrConflict):
		return problem{http.StatusConflict, i18n.ProblemConflict}
	case errors.Is(err, domain.ErrUnavailable):
		return problem{http.StatusBadGateway, i18n.ProblemUnavailable}
	case errors.Is(err, context.DeadlineExceeded):
		return problem{http.StatusGatewayTimeout, i18n.ProblemUnavailable}
	default:
		return problem{http.StatusInternalServerError, i18n.ProblemInternal}
	}
}

// StatusOf returns the HTTP status err maps to.
func StatusOf(err error) int {
	return classify(err).status
}

func localize(ctx context.Context, loc Localizer, id, fallback string) string {
	if loc == nil {
		return fallback
	}
	return loc.Message(ctx, id)
}
