package viewpoints

import (
	"workflow-planner/internal/models"
)

// Backend plans services, data and APIs.
type Backend struct {
	profile
}

// NewBackend returns the backend viewpoint.
func NewBackend() *Backend {
	return &Backend{profile{
		name:        "backend",
		description: "APIs, data modeling, services and integrations",
		builders: []PhaseBuilder{
			backendAPIDesign,
			backendDataModeling,
			backendServices,
			backendAuthentication,
			backendIntegrations,
			backendPerformance,
			backendTesting,
			backendDeployment,
		},
		practices: []string{
			"Design the API contract before the implementation",
			"Keep handlers thin and business logic in services",
			"Version the API and the database schema",
			"Return structured errors with stable codes",
			"Make every external call time out and retry with backoff",
		},
		gates: []string{
			"API specification reviewed",
			"Database migrations reversible",
			"Integration tests pass against real dependencies",
			"p95 latency within target under expected load",
		},
	}}
}

func backendAPIDesign(req *models.Requirements) *models.Phase {
	return newPhase("API Design", "design", "Define the service contract",
		models.Task{
			Type:               models.TaskDesign,
			Title:              "Design API Endpoints",
			Description:        "Resources, operations, status codes and pagination",
			Deliverables:       []string{"Endpoint catalog"},
			EstimatedHours:     8,
			Priority:           models.PriorityHigh,
			AcceptanceCriteria: criteria(req, 3),
		},
		models.Task{
			Type:           models.TaskDocumentation,
			Title:          "Write API Specification",
			Description:    "Machine-readable contract for clients",
			Deliverables:   []string{"OpenAPI document"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Design API Endpoints"},
			Tools:          []string{"OpenAPI"},
		},
	)
}

func backendDataModeling(req *models.Requirements) *models.Phase {
	if !req.HasPattern(models.PatternDatabase) {
		return nil
	}
	return newPhase("Data Modeling", "design", "Design persistent storage",
		models.Task{
			Type:           models.TaskDesign,
			Title:          "Design Database Schema",
			Description:    "Entities, relations, indexes and constraints",
			Deliverables:   []string{"Entity relationship diagram"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Design API Endpoints"},
			Tools:          []string{"database"},
		},
		models.Task{
			Type:           models.TaskImplementation,
			Title:          "Create Database Migrations",
			Description:    "Versioned, reversible schema migrations",
			Deliverables:   []string{"Migration scripts"},
			EstimatedHours: 4,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Design Database Schema"},
		},
	)
}

// backendServices emits one task per feature.
func backendServices(req *models.Requirements) *models.Phase {
	var tasks []models.Task
	for _, f := range req.Features {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          titled("Implement %s", f.Name),
			Description:    "Service logic and endpoints for " + f.Name,
			Deliverables:   []string{"Service code", "Unit tests"},
			EstimatedHours: FeatureHours(f.Complexity),
			Priority:       featurePriority(f),
			Dependencies:   []string{"Design API Endpoints"},
		})
	}
	if len(tasks) == 0 {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          "Implement Core Business Logic",
			Description:    "Service layer for the primary use case",
			Deliverables:   []string{"Service code", "Unit tests"},
			EstimatedHours: 16,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Design API Endpoints"},
		})
	}
	return newPhase("Service Implementation", "implementation", "Build the business logic", tasks...)
}

func backendAuthentication(req *models.Requirements) *models.Phase {
	if !req.HasPattern(models.PatternAuthentication) {
		return nil
	}
	tools := securityMechanisms(req)
	if len(tools) == 0 {
		tools = []string{"JWT"}
	}
	tasks := []models.Task{{
		Type:           models.TaskImplementation,
		Title:          "Implement Authentication",
		Description:    "Sign-in, token issuance and session handling",
		Deliverables:   []string{"Auth middleware"},
		EstimatedHours: 12,
		Priority:       models.PriorityHigh,
		Dependencies:   []string{"Design API Endpoints"},
		Tools:          tools,
	}}
	if len(req.UserRoles) > 0 {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          "Implement Role-Based Authorization",
			Description:    "Permissions for: " + listOrNone(req.UserRoles),
			Deliverables:   []string{"Authorization policy"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Implement Authentication"},
		})
	}
	return newPhase("Authentication", "security", "Protect the API", tasks...)
}

// backendIntegrations emits one task per external system.
func backendIntegrations(req *models.Requirements) *models.Phase {
	var tasks []models.Task
	for _, name := range req.Integrations {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          titled("Integrate %s", name),
			Description:    "Client, retries and error mapping for " + name,
			Deliverables:   []string{"Integration adapter", "Contract tests"},
			EstimatedHours: 8,
			Priority:       models.PriorityMedium,
			Tools:          []string{name},
		})
	}
	return newPhase("Integrations", "integration", "Connect external systems", tasks...)
}

func backendPerformance(req *models.Requirements) *models.Phase {
	tasks := []models.Task{{
		Type:           models.TaskImplementation,
		Title:          "Add Caching Layer",
		Description:    "Cache hot reads with explicit invalidation",
		EstimatedHours: 6,
		Priority:       models.PriorityMedium,
		Tools:          []string{"Redis"},
	}}
	if req.HasPattern(models.PatternDatabase) {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          "Optimize Database Queries",
			Description:    "Index and profile the slowest queries",
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Create Database Migrations"},
		})
	}
	if hasScaleRequirements(req) {
		target := req.TechnicalRequirements.Performance[models.KeyResponseTime]
		var ac []string
		if target != "" {
			ac = []string{"p95 response time under " + target}
		}
		tasks = append(tasks, models.Task{
			Type:               models.TaskTesting,
			Title:              "Load Test API",
			Description:        "Exercise the API at expected peak load",
			Deliverables:       []string{"Load test report"},
			EstimatedHours:     6,
			Priority:           models.PriorityHigh,
			Tools:              []string{"k6"},
			AcceptanceCriteria: ac,
		})
	}
	return newPhase("Performance", "optimization", "Meet latency and throughput targets", tasks...)
}

func backendTesting(req *models.Requirements) *models.Phase {
	tasks := []models.Task{
		{
			Type:           models.TaskTesting,
			Title:          "Write Unit Tests",
			Description:    "Cover service logic and edge cases",
			Deliverables:   []string{"Unit test suite"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
		},
		{
			Type:               models.TaskTesting,
			Title:              "Write Integration Tests",
			Description:        "Exercise endpoints against real dependencies",
			Deliverables:       []string{"Integration test suite"},
			EstimatedHours:     8,
			Priority:           models.PriorityHigh,
			Dependencies:       []string{"Write Unit Tests"},
			AcceptanceCriteria: criteria(req, 5),
		},
	}
	if req.HasPattern(models.PatternAPI) {
		tasks = append(tasks, models.Task{
			Type:           models.TaskTesting,
			Title:          "Write API Contract Tests",
			Description:    "Verify responses against the specification",
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Write API Specification"},
		})
	}
	return newPhase("Backend Testing", "testing", "Verify the service", tasks...)
}

func backendDeployment(req *models.Requirements) *models.Phase {
	return newPhase("Deployment", "deployment", "Run the service in production",
		models.Task{
			Type:           models.TaskDeployment,
			Title:          "Containerize Service",
			Description:    "Minimal image with health checks",
			Deliverables:   []string{"Dockerfile"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Tools:          []string{"Docker"},
		},
		models.Task{
			Type:           models.TaskDeployment,
			Title:          "Configure CI/CD Pipeline",
			Description:    "Build, test, migrate and deploy on merge",
			Deliverables:   []string{"Pipeline definition"},
			EstimatedHours: 6,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Containerize Service"},
			Tools:          []string{"CI/CD"},
		},
		models.Task{
			Type:           models.TaskMonitoring,
			Title:          "Set Up Logging and Metrics",
			Description:    "Structured logs, request metrics and alerts",
			Deliverables:   []string{"Dashboards", "Alert rules"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Tools:          []string{"Prometheus", "Grafana"},
		},
	)
}
