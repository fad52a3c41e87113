package viewpoints

import (
	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

// QA plans test strategy, automation and release validation.
type QA struct {
	profile
}

// NewQA returns the quality-engineering viewpoint.
func NewQA() *QA {
	return &QA{profile{
		name:        "qa",
		description: "Test strategy, test design, automation and release validation",
		builders: []PhaseBuilder{
			qaStrategy,
			qaCaseDesign,
			qaAutomation,
			qaPerformance,
			qaSecurity,
			qaRelease,
		},
		practices: []string{
			"Derive test cases from acceptance criteria",
			"Automate the regression suite before it grows",
			"Keep tests independent and deterministic",
			"Track defects by root cause, not only by count",
			"Test in an environment that mirrors production",
		},
		gates: []string{
			"Every acceptance criterion has a test",
			"Regression suite green on the release candidate",
			"No open critical defects",
			"Stakeholder sign-off recorded",
		},
	}}
}

func qaStrategy(req *models.Requirements) *models.Phase {
	return newPhase("Test Strategy", "planning", "Decide what to test and how",
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Define Test Strategy",
			Description:    "Scope, levels, environments and exit criteria",
			Deliverables:   []string{"Test strategy"},
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
		},
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Set Up Test Environments",
			Description:    "Seeded data and isolated environments",
			EstimatedHours: 6,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Define Test Strategy"},
		},
	)
}

// qaCaseDesign emits one task per acceptance criterion, falling back to one
// per feature.
func qaCaseDesign(req *models.Requirements) *models.Phase {
	var tasks []models.Task
	for _, c := range req.AcceptanceCriteria {
		priority := models.PriorityMedium
		if c.Testable {
			priority = models.PriorityHigh
		}
		tasks = append(tasks, models.Task{
			Type:               models.TaskTesting,
			Title:              "Verify: " + helpers.Truncate(c.Description, 60),
			Description:        c.Description,
			EstimatedHours:     2,
			Priority:           priority,
			Dependencies:       []string{"Define Test Strategy"},
			AcceptanceCriteria: []string{c.Description},
		})
	}
	if len(tasks) == 0 {
		for _, f := range req.Features {
			tasks = append(tasks, models.Task{
				Type:           models.TaskTesting,
				Title:          titled("Design Test Cases for %s", f.Name),
				Description:    "Positive, negative and boundary cases",
				EstimatedHours: 4,
				Priority:       featurePriority(f),
				Dependencies:   []string{"Define Test Strategy"},
			})
		}
	}
	return newPhase("Test Case Design", "testing", "Turn criteria into test cases", tasks...)
}

func qaAutomation(req *models.Requirements) *models.Phase {
	return newPhase("Test Automation", "testing", "Automate the suite",
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Set Up Test Automation Framework",
			Description:    "Runner, fixtures and reporting",
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Define Test Strategy"},
			Tools:          []string{"Playwright"},
		},
		models.Task{
			Type:           models.TaskTesting,
			Title:          "Automate Regression Suite",
			Description:    "Automate the highest-value cases first",
			Deliverables:   []string{"Regression suite"},
			EstimatedHours: 16,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Set Up Test Automation Framework"},
		},
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Run Tests in CI",
			Description:    "Gate merges on the automated suite",
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Automate Regression Suite"},
			Tools:          []string{"CI/CD"},
		},
	)
}

func qaPerformance(req *models.Requirements) *models.Phase {
	if !needsPerformanceWork(req) {
		return nil
	}
	var ac []string
	for _, key := range []string{models.KeyLoadTime, models.KeyResponseTime} {
		if v := req.TechnicalRequirements.Performance[key]; v != "" {
			ac = append(ac, key+" within "+v)
		}
	}
	return newPhase("Performance Testing", "testing", "Measure behaviour under load",
		models.Task{
			Type:               models.TaskTesting,
			Title:              "Run Load Tests",
			Description:        "Ramp to expected peak and hold",
			Deliverables:       []string{"Load test report"},
			EstimatedHours:     8,
			Priority:           models.PriorityHigh,
			Tools:              []string{"k6"},
			AcceptanceCriteria: ac,
		},
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Profile Performance Bottlenecks",
			Description:    "Locate the slowest paths found under load",
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Run Load Tests"},
		},
	)
}

func qaSecurity(req *models.Requirements) *models.Phase {
	if !needsSecurityWork(req) {
		return nil
	}
	tasks := []models.Task{{
		Type:           models.TaskTesting,
		Title:          "Run Security Test Suite",
		Description:    "OWASP Top 10 checks against the running system",
		EstimatedHours: 8,
		Priority:       models.PriorityHigh,
		Tools:          []string{"OWASP ZAP"},
	}}
	if req.HasPattern(models.PatternAuthentication) || len(req.UserRoles) > 1 {
		tasks = append(tasks, models.Task{
			Type:           models.TaskTesting,
			Title:          "Verify Access Controls",
			Description:    "Check every role against every protected action",
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
		})
	}
	return newPhase("Security Testing", "testing", "Probe for weaknesses", tasks...)
}

func qaRelease(req *models.Requirements) *models.Phase {
	return newPhase("Release Validation", "review", "Decide whether to ship",
		models.Task{
			Type:               models.TaskTesting,
			Title:              "Run User Acceptance Testing",
			Description:        "Stakeholders validate the release candidate",
			EstimatedHours:     8,
			Priority:           models.PriorityHigh,
			Dependencies:       []string{"Automate Regression Suite"},
			AcceptanceCriteria: criteria(req, 5),
		},
		models.Task{
			Type:           models.TaskReview,
			Title:          "Release Sign-off",
			Description:    "Review test results and open defects",
			Deliverables:   []string{"Release report"},
			EstimatedHours: 2,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Run User Acceptance Testing"},
		},
	)
}
