// Package i18n renders user-facing messages (field validation reasons and
// problem titles) in the caller's language.
package i18n

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/logging"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Problem title message IDs.
const (
	ProblemValidation   = "problem_validation"
	ProblemNotFound     = "problem_not_found"
	ProblemConflict     = "problem_conflict"
	ProblemUnauthorized = "problem_unauthorized"
	ProblemForbidden    = "problem_forbidden"
	ProblemSuperseded   = "problem_superseded"
	ProblemUnavailable  = "problem_unavailable"
	ProblemInternal     = "problem_internal"
	ProblemBadRequest   = "problem_bad_request"
)

// Translator wraps a message bundle loaded from the embedded catalogs.
type Translator struct {
	bundle   *goi18n.Bundle
	fallback string
}

// New loads every embedded catalog. defaultLocale is used when none of the
// requested languages has a translation.
func New(defaultLocale string) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parsing default locale %q: %w", defaultLocale, err)
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(messageFS, "messages/*.toml")
	if err != nil {
		return nil, fmt.Errorf("listing message files: %w", err)
	}
	for _, p := range paths {
		if _, err := bundle.LoadMessageFileFS(messageFS, p); err != nil {
			return nil, fmt.Errorf("loading message file %s: %w", p, err)
		}
	}

	return &Translator{bundle: bundle, fallback: tag.String()}, nil
}

// Languages returns the tags that have a catalog.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// Message localizes id for the languages in ctx. Unknown IDs come back as
// the ID itself so a missing translation never blanks a response.
func (t *Translator) Message(ctx context.Context, id string) string {
	return t.localize(ctx, &goi18n.LocalizeConfig{MessageID: id})
}

// FieldLabel is the display name of a field.
func (t *Translator) FieldLabel(ctx context.Context, field string) string {
	label := t.Message(ctx, "field_"+field)
	if label == "field_"+field {
		return field
	}
	return label
}

// FieldError renders fe as a sentence, for example
// "Task name must be at most 100 characters".
func (t *Translator) FieldError(ctx context.Context, fe domain.FieldError) string {
	return t.localize(ctx, &goi18n.LocalizeConfig{
		MessageID: "reason_" + string(fe.Reason),
		TemplateData: map[string]any{
			"Field": t.FieldLabel(ctx, fe.Field),
			"Limit": fe.Limit,
		},
	})
}

func (t *Translator) localize(ctx context.Context, cfg *goi18n.LocalizeConfig) string {
	loc := goi18n.NewLocalizer(t.bundle, append(Languages(ctx), t.fallback)...)
	msg, err := loc.Localize(cfg)
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "translation not found",
			slog.String("message_id", cfg.MessageID),
			slog.Any("languages", Languages(ctx)),
			slog.String("error", err.Error()),
		)
		return cfg.MessageID
	}
	return msg
}

type languagesKey struct{}

// WithLanguages stores the caller's preferred languages in ctx, most
// preferred first. Values may be tags or raw Accept-Language headers.
func WithLanguages(ctx context.Context, langs ...string) context.Context {
	return context.WithValue(ctx, languagesKey{}, langs)
}

// Languages returns the preferences stored by WithLanguages.
func Languages(ctx context.Context) []string {
	langs, _ := ctx.Value(languagesKey{}).([]string)
	return langs
}
