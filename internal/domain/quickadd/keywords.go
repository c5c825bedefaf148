package quickadd

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed keywords/*.toml
var keywordFiles embed.FS

// Rule kinds understood in keyword files.
const (
	RuleOffset      = "offset"
	RuleNextWeekday = "next_weekday"
)

// Keyword is one date expression in a keyword file. Pattern is an RE2
// fragment matched against whitespace-normalized input.
type Keyword struct {
	Pattern string `toml:"pattern"`
	Rule    string `toml:"rule"`
	Days    int    `toml:"days"`
	Weekday string `toml:"weekday"`
}

// KeywordSet is the date vocabulary of one locale.
type KeywordSet struct {
	Locale          string    `toml:"locale"`
	CaseInsensitive bool      `toml:"case_insensitive"`
	WordBoundary    bool      `toml:"word_boundary"`
	Keywords        []Keyword `toml:"keyword"`
}

// DecodeKeywordSet parses a TOML keyword file.
func DecodeKeywordSet(data []byte) (KeywordSet, error) {
	var set KeywordSet
	if err := toml.Unmarshal(data, &set); err != nil {
		return KeywordSet{}, fmt.Errorf("decoding keyword set: %w", err)
	}
	if set.Locale == "" {
		return KeywordSet{}, fmt.Errorf("decoding keyword set: locale is required")
	}
	return set, nil
}

// EmbeddedKeywordSets returns the keyword sets compiled into the binary,
// ordered by file name.
func EmbeddedKeywordSets() ([]KeywordSet, error) {
	names, err := fs.Glob(keywordFiles, "keywords/*.toml")
	if err != nil {
		return nil, fmt.Errorf("listing keyword files: %w", err)
	}

	sets := make([]KeywordSet, 0, len(names))
	for _, name := range names {
		data, err := keywordFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		set, err := DecodeKeywordSet(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

var weekdayOffsets = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// compile turns the set into recognizers, in file order.
func (s KeywordSet) compile() ([]recognizer, error) {
	out := make([]recognizer, 0, len(s.Keywords))
	for i, kw := range s.Keywords {
		expr := "(?:" + kw.Pattern + ")"
		if s.WordBoundary {
			expr = `\b` + expr + `\b`
		}
		if s.CaseInsensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%s keyword %d %q: %w", s.Locale, i, kw.Pattern, err)
		}

		switch kw.Rule {
		case RuleOffset, "":
			out = append(out, keywordRecognizer{re: re, resolve: offsetDays(kw.Days)})
		case RuleNextWeekday:
			off, ok := weekdayOffsets[strings.ToLower(kw.Weekday)]
			if !ok {
				return nil, fmt.Errorf("%s keyword %q: unknown weekday %q", s.Locale, kw.Pattern, kw.Weekday)
			}
			out = append(out, keywordRecognizer{re: re, resolve: nextWeekWeekday(off)})
		default:
			return nil, fmt.Errorf("%s keyword %q: unknown rule %q", s.Locale, kw.Pattern, kw.Rule)
		}
	}
	return out, nil
}
