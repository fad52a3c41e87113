package enrichment

import (
	"fmt"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

const (
	bottleneckTaskCount      = 5
	bottleneckDependentTasks = 3
)

var externalCatalog = []labeled{
	{"Stripe", helpers.NewExactMatcher("stripe")},
	{"PayPal", helpers.NewExactMatcher("paypal", "braintree")},
	{"Twilio", helpers.NewExactMatcher("twilio")},
	{"SendGrid", helpers.NewExactMatcher("sendgrid", "mailgun", "mailchimp")},
	{"AWS", helpers.NewExactMatcher("aws", "s3")},
	{"Azure", helpers.NewExactMatcher("azure")},
	{"Google Cloud", helpers.NewExactMatcher("gcp", "firebase", "google cloud")},
	{"Auth0 / Okta", helpers.NewExactMatcher("auth0", "okta")},
	{"GitHub", helpers.NewExactMatcher("github", "github actions")},
	{"Slack", helpers.NewExactMatcher("slack")},
	{"Salesforce", helpers.NewExactMatcher("salesforce", "hubspot")},
	{"OpenAI", helpers.NewExactMatcher("openai")},
	{"Shopify", helpers.NewExactMatcher("shopify")},
	{"Analytics", helpers.NewExactMatcher("google analytics", "segment", "mixpanel")},
	{"Maps", helpers.NewExactMatcher("google maps", "mapbox")},
}

var technicalCatalog = []labeled{
	{"Database", helpers.NewKeywordMatcher("database", "schema", "migration", "postgresql", "mysql", "mongodb", "sql")},
	{"Cache", helpers.NewKeywordMatcher("cache", "caching", "redis")},
	{"Message broker", helpers.NewKeywordMatcher("message broker", "queue", "kafka", "rabbitmq")},
	{"Realtime transport", helpers.NewKeywordMatcher("websocket", "realtime", "real-time")},
	{"API specification", helpers.NewKeywordMatcher("openapi", "api specification", "api contract")},
	{"Authentication provider", helpers.NewKeywordMatcher("jwt", "oauth", "sso", "saml", "authentication")},
	{"Container runtime", helpers.NewKeywordMatcher("docker", "container", "dockerfile")},
	{"Component library", helpers.NewKeywordMatcher("component library", "storybook", "design tokens")},
}

var skillCatalog = []labeled{
	{"Frontend development", helpers.NewKeywordMatcher("component", "page", "ui", "css", "layout", "responsive", "storybook")},
	{"UX design", helpers.NewKeywordMatcher("figma", "wireframe", "user flow", "design tokens")},
	{"Backend development", helpers.NewKeywordMatcher("api", "service", "endpoint", "business logic")},
	{"Data engineering", helpers.NewKeywordMatcher("database", "schema", "migration", "query", "data model")},
	{"DevOps", helpers.NewKeywordMatcher("docker", "kubernetes", "terraform", "ci/cd", "pipeline", "helm")},
	{"Security engineering", helpers.NewKeywordMatcher("threat", "penetration", "encryption", "encrypt", "stride", "sast", "vulnerability", "vulnerabilities")},
	{"Test automation", helpers.NewKeywordMatcher("test automation", "automate", "playwright", "jest", "regression", "k6", "load test")},
	{"Realtime systems", helpers.NewKeywordMatcher("websocket", "realtime", "real-time", "messaging")},
}

var infrastructureCatalog = []labeled{
	{"Cloud hosting", helpers.NewKeywordMatcher("aws", "azure", "gcp", "cloud", "hosting")},
	{"Container orchestration", helpers.NewKeywordMatcher("kubernetes", "helm", "orchestration")},
	{"CDN", helpers.NewKeywordMatcher("cdn")},
	{"CI/CD runners", helpers.NewKeywordMatcher("ci/cd", "ci pipeline", "cd pipeline", "github actions", "build pipeline")},
	{"Monitoring stack", helpers.NewKeywordMatcher("prometheus", "grafana", "loki", "siem", "dashboards", "alert")},
	{"Secrets store", helpers.NewKeywordMatcher("vault", "kms", "secrets")},
	{"Load balancer", helpers.NewKeywordMatcher("load balancer", "load balancing")},
	{"Managed database", helpers.NewKeywordMatcher("database", "postgresql", "mysql", "mongodb", "redis")},
}

// AnalyzeDependencies derives phase, task and resource dependencies, the
// critical path, bottlenecks and parallel opportunities.
func AnalyzeDependencies(w *models.Workflow, view *TextView) *models.DependencyAnalysis {
	analysis := &models.DependencyAnalysis{
		PhaseDependencies: []models.PhaseDependency{},
		TaskDependencies:  []models.TaskDependency{},
		External:          []string{},
		Technical:         []string{},
		TeamSkills:        []string{},
		Infrastructure:    []string{},
		CriticalPath:      []string{},
		Bottlenecks:       []models.Bottleneck{},
	}
	if w == nil || len(w.Phases) == 0 {
		return analysis
	}
	if view == nil {
		view = NewTextView(w)
	}

	titles := map[string]bool{}
	for _, p := range w.Phases {
		for _, t := range p.Tasks {
			titles[t.Title] = true
		}
	}

	unresolved := map[string]bool{}
	for i, p := range w.Phases {
		if i > 0 {
			analysis.PhaseDependencies = append(analysis.PhaseDependencies, models.PhaseDependency{
				Phase:     p.Name,
				DependsOn: w.Phases[i-1].Name,
			})
		}

		dependent := 0
		highPriority := false
		for _, t := range p.Tasks {
			if t.Priority.IsHigh() {
				highPriority = true
			}
			if len(t.Dependencies) == 0 {
				continue
			}
			dependent++
			analysis.TaskDependencies = append(analysis.TaskDependencies, models.TaskDependency{
				Phase:     p.Name,
				Task:      t.Title,
				DependsOn: append([]string(nil), t.Dependencies...),
			})
			for _, dep := range t.Dependencies {
				if !titles[dep] && !unresolved[dep] {
					unresolved[dep] = true
					analysis.UnresolvedReferences = append(analysis.UnresolvedReferences, dep)
				}
			}
		}

		if highPriority {
			analysis.CriticalPath = append(analysis.CriticalPath, p.Name)
		}
		if len(p.Tasks) > bottleneckTaskCount {
			analysis.Bottlenecks = append(analysis.Bottlenecks, models.Bottleneck{
				Phase:  p.Name,
				Reason: fmt.Sprintf("%d tasks in one phase", len(p.Tasks)),
			})
		} else if dependent > bottleneckDependentTasks {
			analysis.Bottlenecks = append(analysis.Bottlenecks, models.Bottleneck{
				Phase:  p.Name,
				Reason: fmt.Sprintf("%d tasks waiting on other work", dependent),
			})
		}
		if i > 0 && dependent == 0 {
			analysis.ParallelOpportunities = append(analysis.ParallelOpportunities, p.Name)
		}
	}

	analysis.External = scanCatalog(view.All, externalCatalog)
	analysis.Technical = scanCatalog(view.All, technicalCatalog)
	analysis.TeamSkills = scanCatalog(view.All, skillCatalog)
	analysis.Infrastructure = scanCatalog(view.All, infrastructureCatalog)

	return analysis
}
