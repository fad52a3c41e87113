package extractor

import (
	"regexp"
	"strings"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

var (
	modalPattern    = regexp.MustCompile(`(?i)\b(?:must|should|shall|will)\b`)
	gherkinPattern  = regexp.MustCompile(`(?i)^(?:given|when|then)\b`)
	limitingPattern = regexp.MustCompile(`(?i)\b(?:must not|cannot|can't|limited to|restricted to|no more than|at most|maximum|within budget|budget|deadline|by (?:q[1-4]|end of|january|february|march|april|may|june|july|august|september|october|november|december)|only|comply with|compliant|required to|constraint)\b`)
)

var constraintTypes = []struct {
	kind    string
	matcher helpers.KeywordMatcher
}{
	{"regulatory", helpers.NewKeywordMatcher("gdpr", "hipaa", "pci", "soc2", "soc 2", "compliance", "compliant", "regulation", "regulatory", "legal", "privacy", "accessibility", "wcag", "ada")},
	{"budget", helpers.NewKeywordMatcher("budget", "cost", "costs", "price", "funding", "dollar", "usd", "eur", "license fee")},
	{"timeline", helpers.NewKeywordMatcher("deadline", "timeline", "launch", "week", "month", "quarter", "q1", "q2", "q3", "q4", "by end of", "release date", "schedule")},
	{"resource", helpers.NewKeywordMatcher("team", "developer", "engineer", "headcount", "staff", "resource", "contractor", "designer")},
	{"technical", helpers.NewKeywordMatcher("browser", "platform", "legacy", "compatible", "compatibility", "support", "framework", "language", "database", "cloud", "on-premise", "api", "version", "offline")},
}

// extractCriteria lifts modal and given/when/then sentences, plus every
// item of an acceptance section.
func extractCriteria(doc document, text string, structured bool, max int) []models.AcceptanceCriterion {
	var out []models.AcceptanceCriterion
	seen := map[string]bool{}

	add := func(s string) {
		s = strings.TrimSpace(strings.TrimRight(cleanInline(s), "."))
		key := strings.ToLower(s)
		if s == "" || seen[key] || len(out) >= max {
			return
		}
		seen[key] = true
		out = append(out, models.AcceptanceCriterion{
			Description: s,
			Testable:    testabilityVerbs.MatchString(s),
		})
	}

	if structured {
		section := doc.body(SectionAcceptanceCriteria)
		items := bullets(section)
		if len(items) == 0 {
			items = sentences(section)
		}
		for _, item := range items {
			add(item)
		}
	}

	for _, s := range sentences(text) {
		if modalPattern.MatchString(s) || gherkinPattern.MatchString(s) {
			add(s)
		}
	}

	if out == nil {
		return []models.AcceptanceCriterion{}
	}
	return out
}

// extractConstraints reads the constraint, timeline and resource sections of
// a structured document, then limiting sentences anywhere in the text.
func extractConstraints(doc document, text string, structured bool, max int) []models.Constraint {
	var out []models.Constraint
	seen := map[string]bool{}

	add := func(s, kind string) {
		s = strings.TrimSpace(strings.TrimRight(cleanInline(s), "."))
		key := strings.ToLower(s)
		if s == "" || seen[key] || len(out) >= max {
			return
		}
		seen[key] = true
		if kind == "" {
			kind = constraintType(s)
		}
		out = append(out, models.Constraint{Description: s, Type: kind})
	}

	if structured {
		for _, item := range bullets(doc.body(SectionConstraints)) {
			add(item, "")
		}
		for _, item := range bullets(doc.body(SectionTimeline)) {
			add(item, "timeline")
		}
		for _, item := range bullets(doc.body(SectionResources)) {
			add(item, "resource")
		}
	}

	for _, s := range sentences(text) {
		if limitingPattern.MatchString(s) && !gherkinPattern.MatchString(s) {
			add(s, "")
		}
	}

	if out == nil {
		return []models.Constraint{}
	}
	return out
}

func constraintType(s string) string {
	for _, t := range constraintTypes {
		if t.matcher.MatchString(s) {
			return t.kind
		}
	}
	return "general"
}
