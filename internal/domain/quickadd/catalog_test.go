package quickadd

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestEmbeddedKeywordSets(t *testing.T) {
	t.Parallel()

	sets, err := EmbeddedKeywordSets()
	if err != nil {
		t.Fatalf("EmbeddedKeywordSets() error = %v", err)
	}

	locales := make([]string, 0, len(sets))
	for _, s := range sets {
		locales = append(locales, s.Locale)
		if len(s.Keywords) == 0 {
			t.Errorf("keyword set %s is empty", s.Locale)
		}
		if _, err := NewParser(s); err != nil {
			t.Errorf("NewParser(%s) error = %v", s.Locale, err)
		}
	}
	if got := strings.Join(locales, ","); got != "en,ja" {
		t.Errorf("locales = %s, want en,ja", got)
	}
}

func TestDecodeKeywordSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid",
			data: `locale = "de"
[[keyword]]
pattern = "heute"
rule = "offset"
days = 0`,
		},
		{
			name:    "missing locale",
			data:    `[[keyword]]` + "\n" + `pattern = "x"`,
			wantErr: true,
		},
		{
			name:    "not toml",
			data:    `locale = `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeKeywordSet([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeKeywordSet() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewParser_RejectsBadKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kw   Keyword
	}{
		{name: "bad pattern", kw: Keyword{Pattern: "(", Rule: RuleOffset}},
		{name: "unknown rule", kw: Keyword{Pattern: "x", Rule: "fortnight"}},
		{name: "unknown weekday", kw: Keyword{Pattern: "x", Rule: RuleNextWeekday, Weekday: "caturday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewParser(KeywordSet{Locale: "xx", Keywords: []Keyword{tt.kw}})
			if err == nil {
				t.Error("NewParser() error = nil, want error")
			}
		})
	}
}

func TestCatalog_ForAcceptLanguage(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog("en", nil)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: "en"},
		{header: "ja-JP,ja;q=0.9,en;q=0.8", want: "ja"},
		{header: "ja", want: "ja"},
		{header: "en-US", want: "en"},
		{header: "fr-FR", want: "en"},
		{header: "fr;q=0.9,ja;q=0.5", want: "ja"},
		{header: ";;;garbage", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()
			if got := c.ForAcceptLanguage(tt.header).Locale(); got != tt.want {
				t.Errorf("ForAcceptLanguage(%q) = %s, want %s", tt.header, got, tt.want)
			}
		})
	}

	if got := c.ForTags(language.Japanese).Locale(); got != "ja" {
		t.Errorf("ForTags(ja) = %s, want ja", got)
	}
	if got := c.Locale("ja").Locale(); got != "ja" {
		t.Errorf("Locale(ja) = %s, want ja", got)
	}
	if got := c.Locale("xx").Locale(); got != "en" {
		t.Errorf("Locale(xx) = %s, want default en", got)
	}
}

func TestCatalog_DefaultAndEnabled(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog("ja", nil)
	if err != nil {
		t.Fatalf("LoadCatalog(ja) error = %v", err)
	}
	if got := strings.Join(c.Locales(), ","); got != "ja,en" {
		t.Errorf("Locales() = %s, want ja,en", got)
	}

	c, err = LoadCatalog("ja", []string{"ja"})
	if err != nil {
		t.Fatalf("LoadCatalog(ja only) error = %v", err)
	}
	if got := c.ForAcceptLanguage("en").Locale(); got != "ja" {
		t.Errorf("ForAcceptLanguage(en) with only ja = %s, want ja", got)
	}

	if _, err := LoadCatalog("de", nil); err == nil {
		t.Error("LoadCatalog(de) error = nil, want missing default error")
	}
	if _, err := LoadCatalog("en", []string{"xx"}); err == nil {
		t.Error("LoadCatalog with nothing enabled error = nil, want error")
	}
}
