package extractor

import (
	"regexp"
	"strings"

	"workflow-planner/internal/models"
)

var (
	userStoryPattern  = regexp.MustCompile(`(?i)\bas an? ([a-z][a-z -]*?),?\s+i (?:want|need|would like) (?:to )?(.+?)(?:,?\s+so that\b.*)?$`)
	verbObjectPattern = regexp.MustCompile(`(?i)\b(?:implement|create|build|develop|add|design|integrate|support|enable|provide)s?\s+(.+?)(?:\s+(?:with|for|to|that|which|using|so|and then|in|on|from|under|within|across|by|via|where|when)\b|[.,;:!?()\n]|$)`)
	leadingFiller     = regexp.MustCompile(`(?i)^(?:(?:a|an|the|new|our|their|your|some|basic|simple|robust|full|fully|complete|proper)\s+)+`)
	priorityMarker    = regexp.MustCompile(`(?i)\s*[\[(](?:p[0-3]|high|medium|low|must|must have|should|could|optional|nice to have)[\])]\s*`)
	labelPrefix       = regexp.MustCompile(`^([^:]{2,60}):\s+\S`)
	startsWithLetter  = regexp.MustCompile(`^[a-z]`)
)

// featureSet collects features in first-seen order, deduplicated by name.
type featureSet struct {
	items []models.Feature
	seen  map[string]bool
	max   int
}

func newFeatureSet(max int) *featureSet {
	return &featureSet{seen: map[string]bool{}, max: max}
}

func (s *featureSet) full() bool {
	return len(s.items) >= s.max
}

func (s *featureSet) add(name, context string) {
	name = normalizeName(name)
	if name == "" || s.full() || s.seen[name] || len(strings.Fields(name)) > 8 {
		return
	}
	s.seen[name] = true
	s.items = append(s.items, models.Feature{
		Name:       name,
		Priority:   classifyPriority(context),
		Complexity: classifyComplexity(context),
	})
}

// extractFeatures reads list items of the feature sections first, then
// falls back to verb-object phrases over the whole text.
func extractFeatures(doc document, text string, structured bool, max int) []models.Feature {
	set := newFeatureSet(max)

	if structured {
		for _, item := range bullets(doc.body(SectionFeatures, SectionUserStories)) {
			set.add(featureName(item), item)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if set.full() {
			break
		}
		for _, m := range verbObjectPattern.FindAllStringSubmatch(cleanInline(line), -1) {
			set.add(m[1], line)
		}
	}

	return set.items
}

// featureName reduces a list item to a short feature name: the goal of a
// user story, the label before a colon, or the item itself.
func featureName(item string) string {
	item = priorityMarker.ReplaceAllString(item, " ")
	if m := userStoryPattern.FindStringSubmatch(item); m != nil {
		return m[2]
	}
	if m := labelPrefix.FindStringSubmatch(item); m != nil {
		return m[1]
	}
	if m := verbObjectPattern.FindStringSubmatch(item); m != nil && verbObjectPattern.FindStringIndex(item)[0] == 0 {
		return m[1]
	}
	if i := strings.IndexAny(item, ".;"); i > 0 {
		item = item[:i]
	}
	return item
}

// normalizeName lowercases a phrase and strips fillers and punctuation.
func normalizeName(name string) string {
	name = strings.ToLower(cleanInline(name))
	name = strings.Trim(name, " \t-–:;,.!?\"'")
	name = leadingFiller.ReplaceAllString(name, "")
	if !startsWithLetter.MatchString(name) {
		return ""
	}
	return collapseSpace(name)
}
