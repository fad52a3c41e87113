// Package extractor turns raw requirement text into a normalized
// models.Requirements record using keyword and pattern matching only.
package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
	"workflow-planner/internal/scoring"
)

// structuredExtensions are the file types a structured document may have.
var structuredExtensions = []string{".md", ".markdown", ".txt", ".prd"}

const (
	maxTitleLength    = 80
	maxOverviewLength = 500
)

// Limits caps how many items each sub-extractor returns.
type Limits struct {
	Features     int
	Components   int
	Pages        int
	Integrations int
	Roles        int
	Criteria     int
	Constraints  int
}

// DefaultLimits returns the stock caps.
func DefaultLimits() Limits {
	return Limits{
		Features:     10,
		Components:   15,
		Pages:        12,
		Integrations: 10,
		Roles:        8,
		Criteria:     20,
		Constraints:  10,
	}
}

// withDefaults replaces non-positive caps by the stock ones.
func (l Limits) withDefaults() Limits {
	def := DefaultLimits()
	fill := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}
	fill(&l.Features, def.Features)
	fill(&l.Components, def.Components)
	fill(&l.Pages, def.Pages)
	fill(&l.Integrations, def.Integrations)
	fill(&l.Roles, def.Roles)
	fill(&l.Criteria, def.Criteria)
	fill(&l.Constraints, def.Constraints)
	return l
}

// Extract builds the Requirements record for a document. Empty or
// signal-free input yields empty collections; the only error is
// models.ErrUnsupportedFormat for a structured document of an unknown type.
func Extract(doc models.Document, limits Limits) (*models.Requirements, error) {
	structured := doc.SourceKind == models.SourceStructured
	if structured {
		if err := checkFormat(doc.Name); err != nil {
			return nil, err
		}
	}
	limits = limits.withDefaults()

	text := strings.ReplaceAll(doc.Text, "\r\n", "\n")

	var segmented document
	if structured {
		segmented = segment(text)
	}

	req := &models.Requirements{
		Title:                 extractTitle(segmented, text, structured),
		Overview:              extractOverview(segmented, text, structured),
		Features:              extractFeatures(segmented, text, structured, limits.Features),
		Components:            extractComponents(text, limits.Components),
		Integrations:          extractIntegrations(text, limits.Integrations),
		UserRoles:             extractRoles(text, limits.Roles),
		Pages:                 extractPages(text, limits.Pages),
		Domains:               detectTags(text, domainMatchers),
		Patterns:              detectTags(text, patternMatchers),
		AcceptanceCriteria:    extractCriteria(segmented, text, structured, limits.Criteria),
		TechnicalRequirements: extractTechnical(text),
		Constraints:           extractConstraints(segmented, text, structured, limits.Constraints),
	}
	if req.Features == nil {
		req.Features = []models.Feature{}
	}

	req.Complexity = scoring.Complexity(req)
	return req, nil
}

func checkFormat(name string) error {
	if name == "" {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range structuredExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("cannot read %s as a structured document: %w", filepath.Base(name), models.ErrUnsupportedFormat)
}

func extractTitle(doc document, text string, structured bool) string {
	title := firstLine(text)
	if structured && doc.title != "" {
		title = doc.title
	}
	return helpers.Truncate(title, maxTitleLength)
}

func extractOverview(doc document, text string, structured bool) string {
	overview := ""
	if structured {
		overview = firstParagraph(doc.body(SectionOverview))
	}
	if overview == "" {
		overview = firstParagraph(text)
	}
	return helpers.Truncate(overview, maxOverviewLength)
}
