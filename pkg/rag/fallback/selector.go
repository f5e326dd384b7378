package fallback

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"strings"

	"mind-nest-be/pkg/rag/language"

	"gopkg.in/yaml.v3"
)

//go:embed responses.yaml
var embeddedResponses []byte

// MinPoolSize is the smallest pool a category or default list may hold.
const MinPoolSize = 10

type document struct {
	Languages []languageTable `yaml:"languages"`
}

type languageTable struct {
	Language   language.Code `yaml:"language"`
	Categories []category    `yaml:"categories"`
	Defaults   []string      `yaml:"defaults"`
}

type category struct {
	Name      string   `yaml:"name"`
	Keywords  []string `yaml:"keywords"`
	Responses []string `yaml:"responses"`
}

// Match names the table and category a message hit.
type Match struct {
	Language language.Code
	Category string
}

// Selector picks a canned supportive reply by keyword. Matching is first-match
// in table order, not best-match.
type Selector struct {
	tables map[language.Code]*languageTable
	intN   func(n int) int
}

type Option func(*Selector)

// WithRand makes selection reproducible. A *rand.Rand is not safe for concurrent
// use, so a seeded Selector must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(s *Selector) {
		s.intN = r.IntN
	}
}

// New builds a Selector from the embedded response tables.
func New(opts ...Option) (*Selector, error) {
	return Load(embeddedResponses, opts...)
}

// MustNew panics if the embedded tables are invalid.
func MustNew(opts ...Option) *Selector {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func Load(data []byte, opts ...Option) (*Selector, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse fallback responses: %w", err)
	}

	s := &Selector{
		tables: make(map[language.Code]*languageTable, len(doc.Languages)),
		intN:   rand.IntN,
	}
	for i := range doc.Languages {
		table := &doc.Languages[i]
		if err := validate(table); err != nil {
			return nil, err
		}
		for j := range table.Categories {
			for k, kw := range table.Categories[j].Keywords {
				table.Categories[j].Keywords[k] = strings.ToLower(kw)
			}
		}
		s.tables[table.Language] = table
	}
	for _, required := range []language.Code{language.English, language.Thai} {
		if _, ok := s.tables[required]; !ok {
			return nil, fmt.Errorf("fallback responses: missing %q table", required)
		}
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func validate(table *languageTable) error {
	if _, err := language.Parse(string(table.Language)); err != nil {
		return fmt.Errorf("fallback responses: %w", err)
	}
	if len(table.Defaults) < MinPoolSize {
		return fmt.Errorf("fallback responses: %s defaults hold %d entries, need %d", table.Language, len(table.Defaults), MinPoolSize)
	}
	for _, c := range table.Categories {
		if len(c.Keywords) == 0 {
			return fmt.Errorf("fallback responses: %s/%s has no keywords", table.Language, c.Name)
		}
		if len(c.Responses) < MinPoolSize {
			return fmt.Errorf("fallback responses: %s/%s holds %d responses, need %d", table.Language, c.Name, len(c.Responses), MinPoolSize)
		}
		for _, r := range c.Responses {
			if strings.TrimSpace(r) == "" {
				return fmt.Errorf("fallback responses: %s/%s has an empty response", table.Language, c.Name)
			}
		}
	}
	for _, r := range table.Defaults {
		if strings.TrimSpace(r) == "" {
			return fmt.Errorf("fallback responses: %s defaults contain an empty response", table.Language)
		}
	}
	return nil
}

// searchOrder lists the tables consulted for a reply language. English
// keywords are always checked, so a Thai message can hit an English category.
func searchOrder(lang language.Code) []language.Code {
	if lang == language.Thai {
		return []language.Code{language.Thai, language.English}
	}
	return []language.Code{language.English}
}

func replyLanguage(lang language.Code) language.Code {
	if lang == language.Thai {
		return language.Thai
	}
	return language.English
}

// Category reports the first category whose keyword is a substring of the lowercased message.
func (s *Selector) Category(message string, lang language.Code) (Match, bool) {
	lowered := strings.ToLower(message)
	for _, code := range searchOrder(lang) {
		for _, c := range s.tables[code].Categories {
			for _, kw := range c.Keywords {
				if strings.Contains(lowered, kw) {
					return Match{Language: code, Category: c.Name}, true
				}
			}
		}
	}
	return Match{}, false
}

// Pool returns the candidates of a category, or the default pool when category is empty.
// The returned slice must not be modified.
func (s *Selector) Pool(lang language.Code, categoryName string) []string {
	table, ok := s.tables[replyLanguage(lang)]
	if !ok {
		return nil
	}
	if categoryName == "" {
		return table.Defaults
	}
	for _, c := range table.Categories {
		if c.Name == categoryName {
			return c.Responses
		}
	}
	return nil
}

// Select always returns a non-empty reply.
func (s *Selector) Select(message string, lang language.Code) string {
	pool := s.Pool(lang, "")
	if match, ok := s.Category(message, lang); ok {
		pool = s.Pool(match.Language, match.Category)
	}
	return pool[s.intN(len(pool))]
}
