package enrichment

import (
	"math"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

// riskFacts are the workflow properties the risk rules look at.
type riskFacts struct {
	w              *models.Workflow
	view           *TextView
	tasks          int
	hours          float64
	withCriteria   int
	unestimated    int
	securityTested bool
}

type riskRule struct {
	category    string
	name        string
	probability models.Level
	impact      models.Level
	mitigation  string
	applies     func(f riskFacts) bool
}

var (
	integrationWords = helpers.NewKeywordMatcher("integrate", "integration", "third-party", "external system", "webhook")
	realtimeWords    = helpers.NewKeywordMatcher("realtime", "real-time", "websocket", "live update", "push notification")
	dataWords        = helpers.NewKeywordMatcher("migration", "schema", "database")
	authWords        = helpers.NewKeywordMatcher("authentication", "login", "oauth", "jwt", "sso", "password", "session")
	sensitiveWords   = helpers.NewKeywordMatcher("gdpr", "hipaa", "pci", "compliance", "payment", "encrypt", "personal data", "audit")
	securityTestWord = helpers.NewKeywordMatcher("security test", "penetration", "sast", "vulnerability", "vulnerabilities", "owasp")
	vendorWords      = helpers.NewExactMatcher("stripe", "paypal", "twilio", "sendgrid", "auth0", "okta", "salesforce", "openai", "shopify")
	specialistWords  = helpers.NewKeywordMatcher("kubernetes", "terraform", "machine learning", "websocket", "threat", "penetration", "encryption")
)

var riskCatalog = []riskRule{
	{
		category: models.RiskTechnical, name: "High technical complexity",
		probability: models.LevelHigh, impact: models.LevelHigh,
		mitigation: "Prototype the riskiest components first and split work into spikes",
		applies:    func(f riskFacts) bool { return f.w.Metadata.Complexity > 0.7 },
	},
	{
		category: models.RiskTechnical, name: "Integration failures with external systems",
		probability: models.LevelMedium, impact: models.LevelHigh,
		mitigation: "Add contract tests and sandbox environments for every integration",
		applies:    func(f riskFacts) bool { return f.view.Mentions(integrationWords) },
	},
	{
		category: models.RiskTechnical, name: "Realtime synchronization issues",
		probability: models.LevelMedium, impact: models.LevelHigh,
		mitigation: "Load test the realtime channel and design for reconnection",
		applies:    func(f riskFacts) bool { return f.view.Mentions(realtimeWords) },
	},
	{
		category: models.RiskTechnical, name: "Data model changes late in delivery",
		probability: models.LevelMedium, impact: models.LevelMedium,
		mitigation: "Version the schema and keep migrations reversible",
		applies:    func(f riskFacts) bool { return f.view.Mentions(dataWords) },
	},
	{
		category: models.RiskTimeline, name: "Schedule overrun",
		probability: models.LevelHigh, impact: models.LevelHigh,
		mitigation: "Cut scope to a first release and re-plan after it ships",
		applies:    func(f riskFacts) bool { return f.w.Metadata.DurationWeeks > 12 },
	},
	{
		category: models.RiskTimeline, name: "Optimistic estimates",
		probability: models.LevelMedium, impact: models.LevelMedium,
		mitigation: "Add buffer and re-estimate after the first phase",
		applies: func(f riskFacts) bool {
			return (f.w.Metadata.DurationWeeks > 6 && f.w.Metadata.DurationWeeks <= 12) || f.unestimated > 0
		},
	},
	{
		category: models.RiskSecurity, name: "Authentication vulnerabilities",
		probability: models.LevelMedium, impact: models.LevelHigh,
		mitigation: "Use a vetted identity library and review auth flows",
		applies:    func(f riskFacts) bool { return f.view.Mentions(authWords) },
	},
	{
		category: models.RiskSecurity, name: "Sensitive data exposure",
		probability: models.LevelMedium, impact: models.LevelHigh,
		mitigation: "Encrypt sensitive data and map compliance controls early",
		applies:    func(f riskFacts) bool { return f.view.Mentions(sensitiveWords) },
	},
	{
		category: models.RiskSecurity, name: "Security testing not planned",
		probability: models.LevelHigh, impact: models.LevelHigh,
		mitigation: "Add static analysis, dependency scanning and a penetration test",
		applies: func(f riskFacts) bool {
			return (f.view.Mentions(authWords) || f.view.Mentions(sensitiveWords)) && !f.securityTested
		},
	},
	{
		category: models.RiskBusiness, name: "Unclear acceptance criteria",
		probability: models.LevelHigh, impact: models.LevelMedium,
		mitigation: "Write acceptance criteria with stakeholders before building",
		applies:    func(f riskFacts) bool { return f.withCriteria == 0 },
	},
	{
		category: models.RiskBusiness, name: "Scope creep",
		probability: models.LevelMedium, impact: models.LevelMedium,
		mitigation: "Freeze scope per phase and route new requests through the backlog",
		applies:    func(f riskFacts) bool { return f.tasks > 30 || len(f.w.Phases) > 8 },
	},
	{
		category: models.RiskBusiness, name: "Vendor lock-in",
		probability: models.LevelLow, impact: models.LevelMedium,
		mitigation: "Wrap vendors behind adapters and keep an exit plan",
		applies:    func(f riskFacts) bool { return f.view.Mentions(vendorWords) },
	},
	{
		category: models.RiskResource, name: "Specialist skills required",
		probability: models.LevelMedium, impact: models.LevelMedium,
		mitigation: "Identify specialists early or budget for training",
		applies:    func(f riskFacts) bool { return f.view.TasksMatching(specialistWords) >= 3 },
	},
	{
		category: models.RiskResource, name: "Team capacity",
		probability: models.LevelMedium, impact: models.LevelHigh,
		mitigation: "Staff the critical path first and stagger parallel streams",
		applies:    func(f riskFacts) bool { return f.hours > 480 },
	},
}

// riskCategories fixes the reporting order of categories.
var riskCategories = []string{models.RiskTechnical, models.RiskTimeline, models.RiskSecurity, models.RiskBusiness, models.RiskResource}

const (
	immediateScore = 9
	shortTermScore = 6
	highRiskScore  = 6
	mediumScore    = 3
)

// AssessRisks evaluates the risk catalog. The score is the mean of
// impact x probability over triggered risks.
func AssessRisks(w *models.Workflow, view *TextView) *models.RiskAssessment {
	assessment := &models.RiskAssessment{
		Risks:      []models.Risk{},
		Level:      models.LevelLow,
		ByCategory: map[string]int{},
		Mitigation: models.MitigationPlan{Immediate: []string{}, ShortTerm: []string{}, LongTerm: []string{}},
	}
	for _, c := range riskCategories {
		assessment.ByCategory[c] = 0
	}
	if w == nil || len(w.Phases) == 0 {
		return assessment
	}
	if view == nil {
		view = NewTextView(w)
	}

	facts := riskFacts{w: w, view: view, securityTested: view.TasksMatching(securityTestWord) > 0}
	for _, p := range w.Phases {
		for _, t := range p.Tasks {
			facts.tasks++
			facts.hours += t.EstimatedHours
			if len(t.AcceptanceCriteria) > 0 {
				facts.withCriteria++
			}
			if t.EstimatedHours <= 0 {
				facts.unestimated++
			}
		}
	}

	total := 0
	for _, rule := range riskCatalog {
		if !rule.applies(facts) {
			continue
		}
		score := rule.probability.Weight() * rule.impact.Weight()
		total += score
		assessment.Risks = append(assessment.Risks, models.Risk{
			Category:    rule.category,
			Name:        rule.name,
			Probability: rule.probability,
			Impact:      rule.impact,
			Score:       score,
			Mitigation:  rule.mitigation,
		})
		assessment.ByCategory[rule.category]++

		action := rule.name + ": " + rule.mitigation
		switch {
		case score >= immediateScore:
			assessment.Mitigation.Immediate = append(assessment.Mitigation.Immediate, action)
		case score >= shortTermScore:
			assessment.Mitigation.ShortTerm = append(assessment.Mitigation.ShortTerm, action)
		default:
			assessment.Mitigation.LongTerm = append(assessment.Mitigation.LongTerm, action)
		}
	}

	if n := len(assessment.Risks); n > 0 {
		assessment.Score = math.Round(float64(total)/float64(n)*100) / 100
	}
	switch {
	case assessment.Score >= highRiskScore:
		assessment.Level = models.LevelHigh
	case assessment.Score >= mediumScore:
		assessment.Level = models.LevelMedium
	}

	return assessment
}
