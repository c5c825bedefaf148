package quickadd

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// Catalog holds one Parser per locale and picks the best one for a
// client's language preferences.
type Catalog struct {
	parsers []*Parser
	matcher language.Matcher
}

// NewCatalog builds parsers for sets. The set for defaultLocale is used
// when nothing else matches. When enabled is non-empty, only those locales
// are loaded.
func NewCatalog(sets []KeywordSet, defaultLocale string, enabled []string, opts ...Option) (*Catalog, error) {
	var (
		parsers []*Parser
		tags    []language.Tag
	)
	for _, set := range sets {
		if len(enabled) > 0 && !slices.Contains(enabled, set.Locale) {
			continue
		}
		tag, err := language.Parse(set.Locale)
		if err != nil {
			return nil, fmt.Errorf("keyword set locale %q: %w", set.Locale, err)
		}
		p, err := NewParser(set, opts...)
		if err != nil {
			return nil, err
		}

		// The matcher falls back to its first tag, so the default goes first.
		if set.Locale == defaultLocale {
			parsers = append([]*Parser{p}, parsers...)
			tags = append([]language.Tag{tag}, tags...)
		} else {
			parsers = append(parsers, p)
			tags = append(tags, tag)
		}
	}

	if len(parsers) == 0 {
		return nil, errors.New("no keyword sets enabled")
	}
	if parsers[0].Locale() != defaultLocale {
		return nil, fmt.Errorf("default locale %q has no keyword set", defaultLocale)
	}

	return &Catalog{parsers: parsers, matcher: language.NewMatcher(tags)}, nil
}

// LoadCatalog builds a Catalog from the embedded keyword files.
func LoadCatalog(defaultLocale string, enabled []string, opts ...Option) (*Catalog, error) {
	sets, err := EmbeddedKeywordSets()
	if err != nil {
		return nil, err
	}
	return NewCatalog(sets, defaultLocale, enabled, opts...)
}

// ForAcceptLanguage returns the parser that best serves an Accept-Language
// header value. Malformed or empty headers get the default parser.
func (c *Catalog) ForAcceptLanguage(header string) *Parser {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return c.parsers[0]
	}
	return c.ForTags(tags...)
}

// ForTags returns the parser that best serves the preferred tags.
func (c *Catalog) ForTags(tags ...language.Tag) *Parser {
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.parsers[0]
	}
	return c.parsers[idx]
}

// Locale returns the parser for an exact locale name, or the default.
func (c *Catalog) Locale(name string) *Parser {
	for _, p := range c.parsers {
		if p.Locale() == name {
			return p
		}
	}
	return c.parsers[0]
}

// Locales lists the loaded locales, default first.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.parsers))
	for i, p := range c.parsers {
		out[i] = p.Locale()
	}
	return out
}
