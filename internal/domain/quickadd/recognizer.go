package quickadd

import (
	"regexp"
	"time"

	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
)

// candidate is one recognized date expression.
type candidate struct {
	index int
	text  string
	date  time.Time
}

// beats reports whether c should win over o: earliest start first, then
// the longer match.
func (c candidate) beats(o candidate) bool {
	if c.index != o.index {
		return c.index < o.index
	}
	return len(c.text) > len(o.text)
}

// recognizer reports the first occurrence of its expression in text.
type recognizer interface {
	find(text string, base time.Time) (candidate, bool)
}

type keywordRecognizer struct {
	re      *regexp.Regexp
	resolve func(base time.Time) time.Time
}

func (r keywordRecognizer) find(text string, base time.Time) (candidate, bool) {
	loc := r.re.FindStringIndex(text)
	if loc == nil {
		return candidate{}, false
	}
	return candidate{index: loc[0], text: text[loc[0]:loc[1]], date: r.resolve(base)}, true
}

func offsetDays(n int) func(time.Time) time.Time {
	return func(base time.Time) time.Time {
		return base.AddDate(0, 0, n)
	}
}

// nextWeekWeekday resolves to the day off days after the Monday that starts
// the week following base's week.
func nextWeekWeekday(off int) func(time.Time) time.Time {
	return func(base time.Time) time.Time {
		sinceMonday := (int(base.Weekday()) + 6) % 7
		return base.AddDate(0, 0, 7-sinceMonday+off)
	}
}

var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// isoRecognizer matches a literal YYYY-MM-DD. Only the first such literal
// is considered, and it is dropped when it is not a real calendar date.
type isoRecognizer struct{}

func (isoRecognizer) find(text string, _ time.Time) (candidate, bool) {
	loc := isoDatePattern.FindStringIndex(text)
	if loc == nil {
		return candidate{}, false
	}
	s := text[loc[0]:loc[1]]
	d, err := todo.ParseDate(s)
	if err != nil {
		return candidate{}, false
	}
	return candidate{index: loc[0], text: s, date: d}, true
}
