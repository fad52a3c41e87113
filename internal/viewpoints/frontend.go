package viewpoints

import (
	"workflow-planner/internal/models"
)

// Frontend plans user-interface work.
type Frontend struct {
	profile
}

// NewFrontend returns the frontend viewpoint.
func NewFrontend() *Frontend {
	return &Frontend{profile{
		name:        "frontend",
		description: "User interface, components, accessibility and client performance",
		builders: []PhaseBuilder{
			frontendUIAnalysis,
			frontendDesignSystem,
			frontendComponents,
			frontendResponsive,
			frontendStateAndData,
			frontendAccessibility,
			frontendPerformance,
			frontendTesting,
			frontendDeployment,
		},
		practices: []string{
			"Build from a shared design system instead of one-off styles",
			"Keep components small, typed and presentational where possible",
			"Meet WCAG 2.1 AA from the first component",
			"Set and enforce a performance budget",
			"Test behaviour the user sees, not implementation details",
		},
		gates: []string{
			"Components documented in the component library",
			"Accessibility audit passes with no critical findings",
			"Lighthouse performance score meets the budget",
			"End-to-end tests cover the primary user flows",
		},
	}}
}

func frontendUIAnalysis(req *models.Requirements) *models.Phase {
	return newPhase("UI Analysis", "analysis", "Understand screens, flows and users",
		models.Task{
			Type:               models.TaskAnalysis,
			Title:              "Analyze UI Requirements",
			Description:        "Pages: " + listOrNone(req.Pages),
			Deliverables:       []string{"Screen inventory"},
			EstimatedHours:     6,
			Priority:           models.PriorityHigh,
			AcceptanceCriteria: criteria(req, 3),
		},
		models.Task{
			Type:           models.TaskDesign,
			Title:          "Map User Flows",
			Description:    "User roles: " + listOrNone(req.UserRoles),
			Deliverables:   []string{"User flow diagrams", "Wireframes"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Analyze UI Requirements"},
			Tools:          []string{"Figma"},
		},
	)
}

func frontendDesignSystem(req *models.Requirements) *models.Phase {
	return newPhase("Design System", "design", "Establish tokens and base components",
		models.Task{
			Type:           models.TaskDesign,
			Title:          "Define Design Tokens",
			Description:    "Colors, typography, spacing and breakpoints",
			Deliverables:   []string{"Design tokens"},
			EstimatedHours: 6,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Map User Flows"},
			Tools:          []string{"Figma"},
		},
		models.Task{
			Type:           models.TaskImplementation,
			Title:          "Build Base Component Library",
			Description:    "Buttons, inputs, layout primitives and typography",
			Deliverables:   []string{"Component library"},
			EstimatedHours: 12,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Define Design Tokens"},
			Tools:          []string{"Storybook"},
		},
	)
}

// frontendComponents emits one task per component and page, falling back
// to one task per feature when neither was detected.
func frontendComponents(req *models.Requirements) *models.Phase {
	var tasks []models.Task
	for _, c := range req.Components {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          titled("Implement %s", c),
			Description:    "Build, style and document the " + c,
			Deliverables:   []string{"Component", "Storybook story", "Unit tests"},
			EstimatedHours: 8,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Build Base Component Library"},
		})
	}
	for _, p := range req.Pages {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          titled("Build %s Page", p),
			Description:    "Compose the " + p + " page from library components",
			Deliverables:   []string{"Page", "Route"},
			EstimatedHours: 8,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Build Base Component Library"},
		})
	}
	if len(tasks) == 0 {
		for _, f := range req.Features {
			tasks = append(tasks, models.Task{
				Type:           models.TaskImplementation,
				Title:          titled("Implement %s UI", f.Name),
				Description:    "User interface for " + f.Name,
				EstimatedHours: FeatureHours(f.Complexity),
				Priority:       featurePriority(f),
				Dependencies:   []string{"Build Base Component Library"},
			})
		}
	}
	return newPhase("Component Development", "implementation", "Build the components and pages", tasks...)
}

func frontendResponsive(req *models.Requirements) *models.Phase {
	if !req.HasPattern(models.PatternResponsive) && !req.HasDomain(models.DomainMobile) {
		return nil
	}
	return newPhase("Responsive Implementation", "implementation", "Adapt layouts to every device class",
		models.Task{
			Type:           models.TaskImplementation,
			Title:          "Implement Responsive Layouts",
			Description:    "Mobile-first layouts across the defined breakpoints",
			Deliverables:   []string{"Responsive layouts"},
			EstimatedHours: 10,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Define Design Tokens"},
			Tools:          []string{"CSS Grid", "Flexbox"},
		},
		models.Task{
			Type:           models.TaskTesting,
			Title:          "Test Across Devices and Breakpoints",
			Description:    "Verify layouts on phone, tablet and desktop",
			Deliverables:   []string{"Device test report"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Implement Responsive Layouts"},
			Tools:          []string{"BrowserStack"},
		},
	)
}

func frontendStateAndData(req *models.Requirements) *models.Phase {
	api := req.HasPattern(models.PatternAPI)
	if !api && !req.HasRealtime() {
		return nil
	}
	tasks := []models.Task{{
		Type:           models.TaskImplementation,
		Title:          "Set Up State Management",
		Description:    "Choose and wire the client state store",
		Deliverables:   []string{"State store"},
		EstimatedHours: 6,
		Priority:       models.PriorityMedium,
	}}
	if api {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          "Integrate API Client",
			Description:    "Typed API client with loading and error states",
			Deliverables:   []string{"API client"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Set Up State Management"},
		})
	}
	if req.HasRealtime() {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          "Implement Realtime Updates",
			Description:    "Subscribe to server pushes and reconcile client state",
			Deliverables:   []string{"Realtime subscription layer"},
			EstimatedHours: 10,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Set Up State Management"},
			Tools:          []string{"websocket"},
		})
	}
	return newPhase("State and Data", "implementation", "Connect the UI to data sources", tasks...)
}

func frontendAccessibility(req *models.Requirements) *models.Phase {
	return newPhase("Accessibility", "review", "Make the interface usable by everyone",
		models.Task{
			Type:           models.TaskImplementation,
			Title:          "Implement Keyboard Navigation and ARIA",
			Description:    "Focus order, landmarks and labels for interactive elements",
			EstimatedHours: 6,
			Priority:       models.PriorityMedium,
		},
		models.Task{
			Type:           models.TaskReview,
			Title:          "Run Accessibility Audit",
			Description:    "Audit against WCAG 2.1 AA",
			Deliverables:   []string{"Accessibility report"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Implement Keyboard Navigation and ARIA"},
			Tools:          []string{"axe", "Lighthouse"},
		},
	)
}

func frontendPerformance(req *models.Requirements) *models.Phase {
	tasks := []models.Task{
		{
			Type:           models.TaskImplementation,
			Title:          "Optimize Bundle Size",
			Description:    "Code splitting, tree shaking and asset compression",
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Tools:          []string{"bundle analyzer"},
		},
		{
			Type:           models.TaskImplementation,
			Title:          "Implement Lazy Loading",
			Description:    "Defer offscreen images and non-critical routes",
			EstimatedHours: 4,
			Priority:       models.PriorityLow,
		},
	}
	if target := req.TechnicalRequirements.Performance[models.KeyLoadTime]; target != "" {
		tasks = append(tasks, models.Task{
			Type:               models.TaskTesting,
			Title:              "Verify Load Time Budget",
			Description:        "Measure page load against the " + target + " target",
			EstimatedHours:     4,
			Priority:           models.PriorityHigh,
			Dependencies:       []string{"Optimize Bundle Size"},
			Tools:              []string{"Lighthouse"},
			AcceptanceCriteria: []string{"Pages load within " + target},
		})
	}
	return newPhase("Performance Optimization", "optimization", "Keep the client fast", tasks...)
}

func frontendTesting(req *models.Requirements) *models.Phase {
	return newPhase("Frontend Testing", "testing", "Verify components and flows",
		models.Task{
			Type:           models.TaskTesting,
			Title:          "Write Component Unit Tests",
			Description:    "Cover rendering and interaction of every component",
			Deliverables:   []string{"Unit test suite"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Tools:          []string{"Jest", "Testing Library"},
		},
		models.Task{
			Type:               models.TaskTesting,
			Title:              "Write End-to-End Tests",
			Description:        "Automate the primary user flows",
			Deliverables:       []string{"E2E test suite"},
			EstimatedHours:     8,
			Priority:           models.PriorityHigh,
			Dependencies:       []string{"Map User Flows"},
			Tools:              []string{"Playwright"},
			AcceptanceCriteria: criteria(req, 5),
		},
	)
}

func frontendDeployment(req *models.Requirements) *models.Phase {
	return newPhase("Deployment", "deployment", "Ship the client",
		models.Task{
			Type:           models.TaskDeployment,
			Title:          "Configure Frontend Build Pipeline",
			Description:    "Lint, test and build on every push",
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Tools:          []string{"CI/CD"},
		},
		models.Task{
			Type:           models.TaskDeployment,
			Title:          "Deploy to CDN Hosting",
			Description:    "Publish static assets with cache headers",
			Deliverables:   []string{"Production deployment"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Configure Frontend Build Pipeline"},
			Tools:          []string{"CDN"},
		},
	)
}
