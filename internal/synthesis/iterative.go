package synthesis

import (
	"fmt"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

const (
	// SprintCapacity is the story-point budget of one sprint.
	SprintCapacity = 20
	sprintDuration = "2 weeks"
	hoursPerPoint  = 4

	spikePoints = 3
	testPoints  = 2
)

// fallbackFeature stands in when no features were extracted.
var fallbackFeature = models.Feature{Name: "core functionality", Priority: models.PriorityHigh, Complexity: models.LevelMedium}

func corePoints(level models.Level) int {
	switch level {
	case models.LevelHigh:
		return 8
	case models.LevelLow:
		return 3
	default:
		return 5
	}
}

func iterative(req *models.Requirements) *Plan {
	features := req.Features
	if len(features) == 0 {
		features = []models.Feature{fallbackFeature}
	}

	role := "user"
	if len(req.UserRoles) > 0 {
		role = req.UserRoles[0]
	}

	epics := make([]models.Epic, 0, len(features))
	for _, f := range features {
		epics = append(epics, buildEpic(f, role))
	}

	var stories []models.Story
	for _, e := range epics {
		stories = append(stories, e.Stories...)
	}

	sprints := packSprints(stories, SprintCapacity)
	phases := make([]models.Phase, 0, len(sprints))
	for i, sprint := range sprints {
		points := 0
		tasks := make([]models.Task, 0, len(sprint))
		for _, s := range sprint {
			points += s.StoryPoints
			tasks = append(tasks, storyTask(s))
		}
		phases = append(phases, models.Phase{
			Name:        fmt.Sprintf("Sprint %d", i+1),
			Type:        "sprint",
			Duration:    sprintDuration,
			Description: fmt.Sprintf("%d of %d story points", points, SprintCapacity),
			Tasks:       tasks,
		})
	}

	return &Plan{Phases: phases, Epics: epics}
}

// buildEpic breaks a feature into an optional spike, the core story and its
// acceptance tests.
func buildEpic(f models.Feature, role string) models.Epic {
	name := helpers.TitleCase(f.Name)
	priority := f.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	var stories []models.Story
	var coreDeps []string
	if f.Complexity == models.LevelHigh {
		spike := models.Story{
			Title:       "Spike: " + name,
			Description: "Investigate the unknowns of " + f.Name + " and propose an approach",
			StoryPoints: spikePoints,
			Priority:    priority,
			Epic:        name,
		}
		stories = append(stories, spike)
		coreDeps = []string{spike.Title}
	}

	core := models.Story{
		Title:              name,
		Description:        fmt.Sprintf("As a %s, I want %s so that I can get my work done", role, f.Name),
		StoryPoints:        corePoints(f.Complexity),
		Priority:           priority,
		AcceptanceCriteria: []string{name + " works end to end for a " + role},
		Dependencies:       coreDeps,
		Epic:               name,
	}
	stories = append(stories, core, models.Story{
		Title:        "Acceptance Tests: " + name,
		Description:  "Automate the acceptance criteria of " + f.Name,
		StoryPoints:  testPoints,
		Priority:     priority,
		Dependencies: []string{core.Title},
		Epic:         name,
	})

	return models.Epic{
		Title:       name,
		Description: "Deliver " + f.Name,
		Priority:    priority,
		Stories:     stories,
	}
}

// packSprints places each story, in order, into the first sprint with room
// for it, opening a new sprint when none has. A story larger than the
// capacity gets a sprint of its own.
func packSprints(stories []models.Story, capacity int) [][]models.Story {
	var sprints [][]models.Story
	var used []int
	for _, s := range stories {
		placed := false
		for i := range sprints {
			if used[i]+s.StoryPoints <= capacity {
				sprints[i] = append(sprints[i], s)
				used[i] += s.StoryPoints
				placed = true
				break
			}
		}
		if !placed {
			sprints = append(sprints, []models.Story{s})
			used = append(used, s.StoryPoints)
		}
	}
	return sprints
}

func storyTask(s models.Story) models.Task {
	return models.Task{
		Type:               models.TaskUserStory,
		Title:              s.Title,
		Description:        s.Description,
		EstimatedHours:     float64(s.StoryPoints * hoursPerPoint),
		Priority:           s.Priority,
		Dependencies:       s.Dependencies,
		AcceptanceCriteria: s.AcceptanceCriteria,
	}
}
