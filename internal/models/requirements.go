package models

import "strings"

// SourceKind tells the extractor whether the input is a section-headed
// document or unstructured prose.
type SourceKind string

const (
	SourceStructured SourceKind = "structured"
	SourceFreeform   SourceKind = "freeform"
)

// Priority ranks features and tasks.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsHigh reports whether p is high or critical.
func (p Priority) IsHigh() bool {
	return p == PriorityHigh || p == PriorityCritical
}

// Level is a three-step ordinal used for complexity, risk, probability and impact.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Weight maps a level onto 1..3 for impact x probability scoring.
func (l Level) Weight() int {
	switch l {
	case LevelHigh:
		return 3
	case LevelMedium:
		return 2
	case LevelLow:
		return 1
	default:
		return 0
	}
}

// Document is the loader's hand-off to the pipeline.
type Document struct {
	Name       string     `json:"name,omitempty"`
	Text       string     `json:"-"`
	SourceKind SourceKind `json:"source_kind"`
}

// Feature is a unit of functionality named in the input.
type Feature struct {
	Name       string   `json:"name"`
	Priority   Priority `json:"priority"`
	Complexity Level    `json:"complexity"`
}

// AcceptanceCriterion is a modal-verb sentence lifted from the input.
type AcceptanceCriterion struct {
	Description string `json:"description"`
	Testable    bool   `json:"testable"`
}

// Constraint is a limiting statement (budget, deadline, platform...).
type Constraint struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// TechnicalRequirements holds open key/value maps of extracted constraints.
type TechnicalRequirements struct {
	Performance map[string]string `json:"performance,omitempty" yaml:"performance,omitempty"`
	Security    map[string]string `json:"security,omitempty" yaml:"security,omitempty"`
	Scalability map[string]string `json:"scalability,omitempty" yaml:"scalability,omitempty"`
}

// Requirements is the normalized extraction result. It is built once per
// run and treated as read-only afterwards.
type Requirements struct {
	Title                 string                `json:"title"`
	Overview              string                `json:"overview,omitempty"`
	Features              []Feature             `json:"features"`
	Components            []string              `json:"components"`
	Integrations          []string              `json:"integrations"`
	UserRoles             []string              `json:"user_roles"`
	Pages                 []string              `json:"pages"`
	Domains               []string              `json:"domains"`
	Patterns              []string              `json:"patterns"`
	AcceptanceCriteria    []AcceptanceCriterion `json:"acceptance_criteria"`
	TechnicalRequirements TechnicalRequirements `json:"technical_requirements"`
	Constraints           []Constraint          `json:"constraints"`
	Complexity            float64               `json:"complexity"`
}

// HasPattern reports whether the pattern tag was detected.
func (r *Requirements) HasPattern(pattern string) bool {
	return contains(r.Patterns, pattern)
}

// HasDomain reports whether the domain tag was detected.
func (r *Requirements) HasDomain(domain string) bool {
	return contains(r.Domains, domain)
}

// HasRealtime reports a realtime requirement.
func (r *Requirements) HasRealtime() bool {
	return r.HasPattern(PatternRealtime)
}

// HighSecurity reports a high-security requirement: the extractor marks
// the security map with level=high when compliance regimes or several
// mechanisms are named.
func (r *Requirements) HighSecurity() bool {
	return r.TechnicalRequirements.Security[KeySecurityLevel] == string(LevelHigh)
}

// CriticalPerformance reports a sub-second threshold or explicit
// performance-critical wording.
func (r *Requirements) CriticalPerformance() bool {
	return r.TechnicalRequirements.Performance[KeyPerformanceTier] == TierCritical
}

// EnterpriseScale reports enterprise-level capacity figures or wording.
func (r *Requirements) EnterpriseScale() bool {
	return r.TechnicalRequirements.Scalability[KeyScalabilityTier] == TierEnterprise
}

// HighPriorityFeatures returns the features ranked high or critical, in
// declaration order.
func (r *Requirements) HighPriorityFeatures() []Feature {
	var out []Feature
	for _, f := range r.Features {
		if f.Priority.IsHigh() {
			out = append(out, f)
		}
	}
	return out
}

// Domain tags.
const (
	DomainFrontend       = "frontend"
	DomainBackend        = "backend"
	DomainSecurity       = "security"
	DomainInfrastructure = "infrastructure"
	DomainMobile         = "mobile"
)

// Pattern tags.
const (
	PatternUIComponent    = "ui-component"
	PatternAPI            = "api"
	PatternDatabase       = "database"
	PatternAuthentication = "authentication"
	PatternRealtime       = "realtime"
	PatternResponsive     = "responsive"
	PatternTesting        = "testing"
	PatternDeployment     = "deployment"
	PatternPerformance    = "performance"
	PatternSecurity       = "security"
)

// Well-known keys inside TechnicalRequirements maps.
const (
	KeySecurityLevel     = "level"
	KeyCompliance        = "compliance"
	KeyPerformanceTier   = "tier"
	KeyScalabilityTier   = "tier"
	KeyLoadTime          = "load_time"
	KeyResponseTime      = "response_time"
	KeyConcurrentUsers   = "concurrent_users"
	KeyRequestsPerSecond = "requests_per_second"

	TierCritical   = "critical"
	TierEnterprise = "enterprise"
)

func contains(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
