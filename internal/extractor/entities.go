package extractor

import (
	"regexp"
	"strings"
)

var (
	componentPattern = regexp.MustCompile(`(?i)\b([a-z][a-z0-9-]*)[ \t]+(` + strings.Join(componentKinds, "|") + `)s?\b`)
	pagePattern      = regexp.MustCompile(`(?i)\b([a-z][a-z0-9-]*)[ \t]+(?:page|screen|view)s?\b`)
	integrateWith    = regexp.MustCompile(`(?i)\bintegrat(?:e|es|ed|ion|ing)\s+(?:with|into)\s+(?:the\s+|an?\s+)?([a-z][a-z0-9.-]*)`)
	namedAPIPattern  = regexp.MustCompile(`(?i)\b([a-z][a-z0-9.-]*)[ \t]+(?:api|sdk|integration)s?\b`)
	asARolePattern   = regexp.MustCompile(`(?i)\bas an?\s+([a-z][a-z-]*)`)
)

// stringSet collects lowercase values in first-seen order up to a cap.
type stringSet struct {
	items []string
	seen  map[string]bool
	max   int
}

func newStringSet(max int) *stringSet {
	return &stringSet{seen: map[string]bool{}, max: max}
}

func (s *stringSet) add(v string) {
	v = collapseSpace(strings.ToLower(v))
	if v == "" || s.seen[v] || len(s.items) >= s.max {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}

func (s *stringSet) values() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}

// extractComponents finds "<word> component|service|..." phrases and known UI nouns.
func extractComponents(text string, max int) []string {
	set := newStringSet(max)
	for _, m := range componentPattern.FindAllStringSubmatch(text, -1) {
		word, kind := strings.ToLower(m[1]), strings.ToLower(m[2])
		if stopwords[word] || isComponentKind(word) {
			set.add(kind)
			continue
		}
		set.add(word + " " + kind)
	}
	for _, noun := range uiNouns.FindAll(text) {
		set.add(strings.TrimSuffix(noun, "s"))
	}
	return set.values()
}

func isComponentKind(word string) bool {
	for _, k := range componentKinds {
		if word == k || word == k+"s" {
			return true
		}
	}
	return false
}

// extractPages finds "<word> page|screen|view" phrases.
func extractPages(text string, max int) []string {
	set := newStringSet(max)
	for _, m := range pagePattern.FindAllStringSubmatch(text, -1) {
		word := strings.ToLower(m[1])
		if stopwords[word] || word == "page" || word == "screen" {
			continue
		}
		set.add(word)
	}
	return set.values()
}

// extractIntegrations finds named external systems.
func extractIntegrations(text string, max int) []string {
	set := newStringSet(max)
	for _, name := range knownIntegrations.FindAll(text) {
		set.add(name)
	}
	for _, re := range []*regexp.Regexp{integrateWith, namedAPIPattern} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			name := strings.Trim(strings.ToLower(m[1]), ".-")
			if genericIntegrationWords[name] || stopwords[name] || len(name) < 2 {
				continue
			}
			set.add(name)
		}
	}
	return set.values()
}

// extractRoles finds catalogued role nouns and "as a <role>" phrases.
func extractRoles(text string, max int) []string {
	set := newStringSet(max)
	for _, m := range asARolePattern.FindAllStringSubmatch(text, -1) {
		role := strings.ToLower(m[1])
		if stopwords[role] || !knownRoles.MatchString(role) && !strings.HasSuffix(role, "er") && !strings.HasSuffix(role, "or") {
			continue
		}
		set.add(canonicalRole(role))
	}
	for _, role := range knownRoles.FindAll(text) {
		set.add(canonicalRole(role))
	}
	return set.values()
}

func canonicalRole(role string) string {
	if alias, ok := roleAliases[role]; ok {
		return alias
	}
	return strings.TrimSuffix(role, "s")
}
