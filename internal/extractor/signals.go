package extractor

// detectTags returns the tags whose keyword set occurs in text, in catalog order.
func detectTags(text string, matchers []tagMatcher) []string {
	tags := []string{}
	for _, m := range matchers {
		if m.matcher.MatchString(text) {
			tags = append(tags, m.tag)
		}
	}
	return tags
}
