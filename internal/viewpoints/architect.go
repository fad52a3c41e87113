package viewpoints

import (
	"fmt"

	"workflow-planner/internal/models"
)

// Architect plans system-level structure. It is the catch-all viewpoint.
type Architect struct {
	profile
}

// NewArchitect returns the architect viewpoint.
func NewArchitect() *Architect {
	return &Architect{profile{
		name:        "architect",
		description: "System architecture, technology selection and long-term evolution",
		builders: []PhaseBuilder{
			architectAnalysis,
			architectDesign,
			architectTechnologySelection,
			architectScalabilityPlanning,
			architectRoadmap,
			architectQualityAssurance,
			architectEvolution,
		},
		practices: []string{
			"Record significant decisions as architecture decision records",
			"Prefer loosely coupled components with explicit contracts",
			"Design for observability from the first release",
			"Validate risky technology choices with a proof of concept",
			"Revisit the architecture at every major milestone",
		},
		gates: []string{
			"Architecture review approved by stakeholders",
			"Non-functional requirements mapped to design decisions",
			"Integration contracts documented",
			"Technology choices justified and recorded",
		},
	}}
}

// scaleIndicators counts the signals that warrant a scalability phase.
func scaleIndicators(req *models.Requirements) int {
	n := 0
	for _, hit := range []bool{
		len(req.Integrations) >= 3,
		len(req.UserRoles) >= 3,
		len(req.TechnicalRequirements.Scalability) > 0,
		req.HasRealtime(),
		req.Complexity > 0.6,
	} {
		if hit {
			n++
		}
	}
	return n
}

func architectAnalysis(req *models.Requirements) *models.Phase {
	return newPhase("Requirements Analysis", "analysis",
		"Understand scope, stakeholders and quality attributes",
		models.Task{
			Type:               models.TaskAnalysis,
			Title:              "Analyze Functional Requirements",
			Description:        fmt.Sprintf("Review %d features and their acceptance criteria", len(req.Features)),
			Deliverables:       []string{"Requirements traceability matrix"},
			EstimatedHours:     8,
			Priority:           models.PriorityHigh,
			AcceptanceCriteria: criteria(req, 3),
		},
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Identify Stakeholders and User Roles",
			Description:    "User roles: " + listOrNone(req.UserRoles),
			Deliverables:   []string{"Stakeholder map", "Role and permission matrix"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
		},
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Assess Non-Functional Requirements",
			Description:    "Capture performance, security and scalability targets",
			Deliverables:   []string{"Quality attribute scenarios"},
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
		},
	)
}

func architectDesign(req *models.Requirements) *models.Phase {
	tasks := []models.Task{{
		Type:           models.TaskDesign,
		Title:          "Define System Architecture",
		Description:    "Decompose the system into components and define their responsibilities",
		Deliverables:   []string{"Architecture diagram", "Component responsibilities"},
		EstimatedHours: 16,
		Priority:       models.PriorityHigh,
		Dependencies:   []string{"Analyze Functional Requirements"},
		Tools:          []string{"C4 model", "diagrams.net"},
	}}
	if req.HasPattern(models.PatternDatabase) || req.HasDomain(models.DomainBackend) {
		tasks = append(tasks, models.Task{
			Type:           models.TaskDesign,
			Title:          "Design Data Architecture",
			Description:    "Define data ownership, storage technology and schema boundaries",
			Deliverables:   []string{"Logical data model"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Define System Architecture"},
		})
	}
	if req.HasPattern(models.PatternAPI) {
		tasks = append(tasks, models.Task{
			Type:           models.TaskDesign,
			Title:          "Design API Contracts",
			Description:    "Specify interfaces between clients and services",
			Deliverables:   []string{"API specification"},
			EstimatedHours: 8,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Define System Architecture"},
			Tools:          []string{"OpenAPI"},
		})
	}
	if len(req.Integrations) > 0 {
		tasks = append(tasks, models.Task{
			Type:           models.TaskDesign,
			Title:          "Define Integration Architecture",
			Description:    "External systems: " + listOrNone(req.Integrations),
			Deliverables:   []string{"Integration map", "Failure handling strategy"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Define System Architecture"},
			Tools:          append([]string(nil), req.Integrations...),
		})
	}
	return newPhase("System Design", "design", "Shape the structure the implementation will follow", tasks...)
}

func architectTechnologySelection(req *models.Requirements) *models.Phase {
	tasks := []models.Task{{
		Type:           models.TaskResearch,
		Title:          "Evaluate Technology Stack",
		Description:    "Compare candidate frameworks, runtimes and data stores against the quality attributes",
		Deliverables:   []string{"Technology evaluation matrix"},
		EstimatedHours: 8,
		Priority:       models.PriorityHigh,
		Dependencies:   []string{"Assess Non-Functional Requirements"},
	}}
	if req.Complexity > 0.5 {
		tasks = append(tasks, models.Task{
			Type:           models.TaskResearch,
			Title:          "Build Proof of Concept",
			Description:    "Validate the riskiest technology choice end to end",
			Deliverables:   []string{"Working prototype", "Findings report"},
			EstimatedHours: 16,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Evaluate Technology Stack"},
		})
	}
	tasks = append(tasks, models.Task{
		Type:           models.TaskDocumentation,
		Title:          "Document Technology Decisions",
		Description:    "Capture the chosen stack and the alternatives considered",
		Deliverables:   []string{"Architecture decision records"},
		EstimatedHours: 4,
		Priority:       models.PriorityMedium,
		Dependencies:   []string{"Evaluate Technology Stack"},
	})
	return newPhase("Technology Selection", "research", "Choose and validate the technology stack", tasks...)
}

func architectScalabilityPlanning(req *models.Requirements) *models.Phase {
	if scaleIndicators(req) < 2 {
		return nil
	}
	tasks := []models.Task{
		{
			Type:           models.TaskDesign,
			Title:          "Plan Capacity",
			Description:    "Size compute, storage and network for expected load",
			Deliverables:   []string{"Capacity model"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Define System Architecture"},
		},
		{
			Type:           models.TaskDesign,
			Title:          "Design Scaling Strategy",
			Description:    "Define horizontal scaling, partitioning and caching",
			Deliverables:   []string{"Scaling strategy"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Plan Capacity"},
			Tools:          []string{"load balancer", "cache"},
		},
	}
	if req.HasRealtime() {
		tasks = append(tasks, models.Task{
			Type:           models.TaskDesign,
			Title:          "Design Realtime Messaging",
			Description:    "Choose the push transport and fan-out model",
			Deliverables:   []string{"Messaging design"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Tools:          []string{"websocket", "message broker"},
		})
	}
	return newPhase("Scalability Planning", "design", "Prepare the system for growth", tasks...)
}

func architectRoadmap(req *models.Requirements) *models.Phase {
	var names []string
	for _, f := range req.Features {
		names = append(names, f.Name)
	}
	return newPhase("Implementation Roadmap", "planning", "Sequence delivery into milestones",
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Prioritize Features",
			Description:    "Features: " + listOrNone(names),
			Deliverables:   []string{"Prioritized backlog"},
			EstimatedHours: 4,
			Priority:       models.PriorityHigh,
		},
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Define Implementation Milestones",
			Description:    "Group features into releasable increments",
			Deliverables:   []string{"Milestone plan"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Prioritize Features"},
		},
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Identify Technical Risks",
			Description:    "List architectural risks and owners",
			Deliverables:   []string{"Risk register"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
		},
	)
}

func architectQualityAssurance(req *models.Requirements) *models.Phase {
	return newPhase("Quality Assurance", "testing", "Define how architectural quality is verified",
		models.Task{
			Type:           models.TaskTesting,
			Title:          "Define Testing Strategy",
			Description:    "Set the test pyramid and coverage targets",
			Deliverables:   []string{"Test strategy"},
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
			Tools:          []string{"unit test framework", "CI"},
		},
		models.Task{
			Type:           models.TaskReview,
			Title:          "Plan Architecture Reviews",
			Description:    "Schedule design reviews at each milestone",
			Deliverables:   []string{"Review checklist"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Define Implementation Milestones"},
		},
	)
}

func architectEvolution(req *models.Requirements) *models.Phase {
	return newPhase("Evolution Strategy", "documentation", "Keep the architecture healthy after launch",
		models.Task{
			Type:           models.TaskDocumentation,
			Title:          "Define Architecture Evolution Guidelines",
			Description:    "Describe how components may be added, split or retired",
			Deliverables:   []string{"Evolution guidelines"},
			EstimatedHours: 4,
			Priority:       models.PriorityLow,
		},
		models.Task{
			Type:           models.TaskDocumentation,
			Title:          "Plan Technical Debt Management",
			Description:    "Agree on how debt is tracked and paid down",
			Deliverables:   []string{"Debt register"},
			EstimatedHours: 2,
			Priority:       models.PriorityLow,
		},
		models.Task{
			Type:           models.TaskMonitoring,
			Title:          "Set Up Architecture Fitness Checks",
			Description:    "Automate checks on dependency rules and performance budgets",
			Deliverables:   []string{"Fitness functions in CI"},
			EstimatedHours: 4,
			Priority:       models.PriorityLow,
		},
	)
}
