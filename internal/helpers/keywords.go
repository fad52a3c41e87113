package helpers

import (
	"regexp"
	"strings"
)

// KeywordMatcher matches any of a set of keywords on word boundaries,
// case-insensitively.
type KeywordMatcher struct {
	re *regexp.Regexp
}

// NewKeywordMatcher builds a matcher that also accepts a plural "s".
func NewKeywordMatcher(keywords ...string) KeywordMatcher {
	return KeywordMatcher{re: regexp.MustCompile(`(?i)\b(?:` + alternation(keywords) + `)s?\b`)}
}

// NewExactMatcher builds a matcher without plural tolerance, for proper names.
func NewExactMatcher(keywords ...string) KeywordMatcher {
	return KeywordMatcher{re: regexp.MustCompile(`(?i)\b(?:` + alternation(keywords) + `)\b`)}
}

func alternation(keywords []string) string {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return strings.Join(quoted, "|")
}

// MatchString reports whether any keyword occurs in s.
func (m KeywordMatcher) MatchString(s string) bool {
	return m.re != nil && m.re.MatchString(s)
}

// FindAll returns every matched keyword, lowercased, in text order.
func (m KeywordMatcher) FindAll(s string) []string {
	if m.re == nil {
		return nil
	}
	found := m.re.FindAllString(s, -1)
	for i := range found {
		found[i] = strings.ToLower(found[i])
	}
	return found
}
