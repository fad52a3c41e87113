package extractor

import (
	"regexp"
	"strings"
)

// SectionKind names a recognised part of a structured document.
type SectionKind string

const (
	SectionOverview              SectionKind = "overview"
	SectionFeatures              SectionKind = "features"
	SectionUserStories           SectionKind = "user_stories"
	SectionAcceptanceCriteria    SectionKind = "acceptance_criteria"
	SectionTechnicalRequirements SectionKind = "technical_requirements"
	SectionConstraints           SectionKind = "constraints"
	SectionTimeline              SectionKind = "timeline"
	SectionResources             SectionKind = "resources"
	SectionOther                 SectionKind = "other"
)

// headingMatchers is evaluated in order; the first matcher with a hit wins,
// so the more specific names come before the generic ones.
var headingMatchers = []struct {
	kind     SectionKind
	keywords []string
}{
	{SectionAcceptanceCriteria, []string{"acceptance", "definition of done", "success criteria"}},
	{SectionUserStories, []string{"user stor", "use case", "stories"}},
	{SectionTechnicalRequirements, []string{"technical", "non-functional", "nonfunctional", "architecture", "performance", "security"}},
	{SectionFeatures, []string{"feature", "functional", "capabilit", "scope", "requirement"}},
	{SectionConstraints, []string{"constraint", "limitation", "assumption"}},
	{SectionTimeline, []string{"timeline", "schedule", "milestone", "roadmap", "deadline"}},
	{SectionResources, []string{"resource", "team", "budget", "staffing"}},
	{SectionOverview, []string{"overview", "summary", "introduction", "background", "purpose", "description", "goal"}},
}

// ClassifyHeading maps a heading's text onto a section kind.
func ClassifyHeading(heading string) SectionKind {
	h := strings.ToLower(heading)
	for _, m := range headingMatchers {
		for _, kw := range m.keywords {
			if strings.Contains(h, kw) {
				return m.kind
			}
		}
	}
	return SectionOther
}

var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*\s*$`)

// Section is one heading plus the body text up to the next heading.
type Section struct {
	Kind    SectionKind
	Heading string
	Level   int
	Body    string
}

// document is a segmented structured input.
type document struct {
	title    string
	sections []Section
}

// body concatenates the bodies of every section of the given kinds.
func (d document) body(kinds ...SectionKind) string {
	var parts []string
	for _, s := range d.sections {
		for _, k := range kinds {
			if s.Kind == k && strings.TrimSpace(s.Body) != "" {
				parts = append(parts, s.Body)
				break
			}
		}
	}
	return strings.Join(parts, "\n")
}

// has reports whether any section of the kind carries content.
func (d document) has(kind SectionKind) bool {
	return strings.TrimSpace(d.body(kind)) != ""
}

// segment splits markdown text by heading. Text before the first heading,
// and the body of the leading H1 title, count as overview.
func segment(text string) document {
	var doc document
	current := Section{Kind: SectionOverview}
	var body []string

	flush := func() {
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Body != "" || current.Heading != "" {
			doc.sections = append(doc.sections, current)
		}
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		m := headingPattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			body = append(body, line)
			continue
		}
		flush()
		level := len(m[1])
		heading := cleanInline(m[2])
		kind := ClassifyHeading(heading)
		if level == 1 && doc.title == "" {
			doc.title = heading
			if kind == SectionOther {
				kind = SectionOverview
			}
		}
		current = Section{Kind: kind, Heading: heading, Level: level}
	}
	flush()

	if doc.title == "" {
		doc.title = firstLine(text)
	}
	return doc
}

var (
	bulletPattern   = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+(?:\[[ xX]\]\s+)?(.+)$`)
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	emphasisPattern = regexp.MustCompile("[*_`]{1,3}")
)

// bullets returns the list items of a block of markdown.
func bullets(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			if item := cleanInline(m[1]); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// cleanInline strips links and emphasis markers from a line.
func cleanInline(s string) string {
	s = linkPattern.ReplaceAllString(s, "$1")
	s = emphasisPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// firstLine returns the first non-empty line without heading markers.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line != "" {
			return cleanInline(line)
		}
	}
	return ""
}

var (
	sentenceSplit  = regexp.MustCompile(`[.!?]+(?:\s+|$)|\n+`)
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
)

// sentences splits text into trimmed sentences with list markers removed.
func sentences(text string) []string {
	var out []string
	for _, raw := range sentenceSplit.Split(text, -1) {
		s := raw
		if m := bulletPattern.FindStringSubmatch(s); m != nil {
			s = m[1]
		}
		s = cleanInline(s)
		if s == "" || headingPattern.MatchString(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// firstParagraph returns the first block of text separated by a blank line.
func firstParagraph(text string) string {
	for _, para := range paragraphSplit.Split(strings.TrimSpace(text), -1) {
		para = strings.TrimSpace(para)
		if para != "" && !headingPattern.MatchString(para) {
			return collapseSpace(para)
		}
	}
	return ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
