package synthesis

import (
	"strings"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
	"workflow-planner/internal/viewpoints"
)

// MaxScopedFeatures caps the features a minimum-scope plan builds.
const MaxScopedFeatures = 5

func minimumScope(req *models.Requirements) *Plan {
	scoped := req.HighPriorityFeatures()
	if len(scoped) > MaxScopedFeatures {
		scoped = scoped[:MaxScopedFeatures]
	}

	var names []string
	for _, f := range scoped {
		names = append(names, f.Name)
	}

	var criteria []string
	for _, c := range req.AcceptanceCriteria {
		if len(criteria) == 5 {
			break
		}
		criteria = append(criteria, c.Description)
	}

	phases := []models.Phase{{
		Name:        "Definition",
		Type:        "analysis",
		Description: "Agree on the smallest scope worth shipping",
		Tasks: []models.Task{
			{
				Type:           models.TaskAnalysis,
				Title:          "Define Minimum Scope",
				Description:    "In scope: " + joinOrNone(names),
				Deliverables:   []string{"Scope statement", "Out-of-scope list"},
				EstimatedHours: 4,
				Priority:       models.PriorityHigh,
			},
			{
				Type:               models.TaskAnalysis,
				Title:              "Write Acceptance Criteria",
				Description:        "Observable success criteria for each scoped feature",
				EstimatedHours:     4,
				Priority:           models.PriorityHigh,
				Dependencies:       []string{"Define Minimum Scope"},
				AcceptanceCriteria: criteria,
			},
		},
	}}

	if len(scoped) > 0 {
		build := models.Phase{
			Name:        "Build",
			Type:        "implementation",
			Description: "Implement only the scoped features",
		}
		for _, f := range scoped {
			build.Tasks = append(build.Tasks, models.Task{
				Type:           models.TaskImplementation,
				Title:          "Build " + helpers.TitleCase(f.Name),
				Description:    "Simplest implementation of " + f.Name + " that meets its criteria",
				EstimatedHours: viewpoints.FeatureHours(f.Complexity),
				Priority:       f.Priority,
				Dependencies:   []string{"Write Acceptance Criteria"},
			})
		}
		phases = append(phases, build)
	}

	phases = append(phases, models.Phase{
		Name:        "Validation",
		Type:        "testing",
		Description: "Check the increment with real users",
		Tasks: []models.Task{
			{
				Type:               models.TaskTesting,
				Title:              "Validate with Users",
				Description:        "Run the acceptance criteria with representative users",
				Deliverables:       []string{"Validation notes"},
				EstimatedHours:     6,
				Priority:           models.PriorityHigh,
				Dependencies:       []string{"Write Acceptance Criteria"},
				AcceptanceCriteria: criteria,
			},
			{
				Type:           models.TaskReview,
				Title:          "Decide Next Increment",
				Description:    "Ship, iterate or stop based on the findings",
				EstimatedHours: 2,
				Priority:       models.PriorityMedium,
				Dependencies:   []string{"Validate with Users"},
			},
		},
	})

	return &Plan{Phases: phases}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none identified"
	}
	return strings.Join(items, ", ")
}
