// Package quickadd splits one line of free text into a task name and an
// optional due date. Date vocabulary is data (see keywords/*.toml); the
// matching rules are shared by every locale.
package quickadd

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
)

// Result is the outcome of a parse. DueDate is a UTC midnight date or nil.
// Matched is the text that produced DueDate.
type Result struct {
	Name    string
	DueDate *time.Time
	Matched string
}

// DueDateString returns DueDate as YYYY-MM-DD, or "" when absent.
func (r Result) DueDateString() string {
	return todo.FormatDate(r.DueDate)
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the clock used when Parse gets a zero base date.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// Parser recognizes date expressions for one locale. It holds no mutable
// state and is safe for concurrent use.
type Parser struct {
	locale      string
	recognizers []recognizer
	now         func() time.Time
}

// NewParser compiles set into a Parser. The ISO date recognizer is always
// present.
func NewParser(set KeywordSet, opts ...Option) (*Parser, error) {
	recs, err := set.compile()
	if err != nil {
		return nil, fmt.Errorf("compiling keyword set: %w", err)
	}

	p := &Parser{
		locale:      set.Locale,
		recognizers: append(recs, isoRecognizer{}),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Locale returns the locale of the keyword set.
func (p *Parser) Locale() string {
	return p.locale
}

// Parse extracts at most one date expression from raw. Relative
// expressions resolve against base's calendar date; a zero base means
// today. Parse never fails: text that looks like a date but is not one
// stays in the name.
func (p *Parser) Parse(raw string, base time.Time) Result {
	text := normalizeWhitespace(raw)
	if text == "" {
		return Result{}
	}
	if base.IsZero() {
		base = p.now()
	}
	base = dateOnly(base)

	var (
		best  candidate
		found bool
	)
	for _, r := range p.recognizers {
		c, ok := r.find(text, base)
		if !ok {
			continue
		}
		if !found || c.beats(best) {
			best, found = c, true
		}
	}
	if !found {
		return Result{Name: text}
	}

	name := normalizeWhitespace(text[:best.index] + " " + text[best.index+len(best.text):])
	if name == "" {
		// The date expression was the whole input; keep it as the name.
		name = text
	}
	due := best.date
	return Result{Name: name, DueDate: &due, Matched: best.text}
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
