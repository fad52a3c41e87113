package synthesis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-planner/internal/models"
	"workflow-planner/internal/viewpoints"
)

func feature(name string, priority models.Priority, complexity models.Level) models.Feature {
	return models.Feature{Name: name, Priority: priority, Complexity: complexity}
}

func taskTitles(p models.Phase) []string {
	var titles []string
	for _, t := range p.Tasks {
		titles = append(titles, t.Title)
	}
	return titles
}

func TestSynthesize_UnknownStrategy(t *testing.T) {
	_, err := Synthesize(&models.Requirements{}, viewpoints.NewArchitect(), "waterfall")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownStrategy)
}

func TestSynthesize_SystematicUsesViewpointPhases(t *testing.T) {
	req := &models.Requirements{Features: []models.Feature{feature("search", models.PriorityHigh, models.LevelMedium)}}
	vp := viewpoints.NewBackend()

	plan, err := Synthesize(req, vp, "")
	require.NoError(t, err)
	require.Len(t, plan.Phases, len(vp.BuildPhases(req)))
	assert.Empty(t, plan.Epics)

	for _, p := range plan.Phases {
		assert.NotEmpty(t, p.Tasks, p.Name)
		assert.NotEmpty(t, p.Duration, p.Name)
	}
}

func TestSynthesize_NoEmptyPhasesForAnyCombination(t *testing.T) {
	inputs := []*models.Requirements{
		{},
		{Features: []models.Feature{feature("a", models.PriorityLow, models.LevelLow)}},
		{Features: []models.Feature{feature("b", models.PriorityHigh, models.LevelHigh)}, Patterns: []string{models.PatternAPI}},
	}
	for _, vp := range viewpoints.All() {
		for _, s := range models.Strategies() {
			for i, req := range inputs {
				t.Run(fmt.Sprintf("%s/%s/%d", vp.Name(), s, i), func(t *testing.T) {
					plan, err := Synthesize(req, vp, s)
					require.NoError(t, err)
					require.NotEmpty(t, plan.Phases)
					for _, p := range plan.Phases {
						assert.NotEmpty(t, p.Tasks, p.Name)
					}
				})
			}
		}
	}
}

func TestPhaseDuration(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "1 day"},
		{8, "1 day"},
		{12, "2 days"},
		{32, "4 days"},
		{40, "1 week"},
		{41, "2 weeks"},
		{120, "3 weeks"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, phaseDuration(tt.hours), "%v hours", tt.hours)
	}
}

func TestPackSprints_FirstFitInDeclarationOrder(t *testing.T) {
	var stories []models.Story
	for i, points := range []int{8, 8, 8, 4, 2} {
		stories = append(stories, models.Story{Title: fmt.Sprintf("s%d", i), StoryPoints: points})
	}

	sprints := packSprints(stories, 20)
	require.Len(t, sprints, 2)

	var first, second []string
	for _, s := range sprints[0] {
		first = append(first, s.Title)
	}
	for _, s := range sprints[1] {
		second = append(second, s.Title)
	}
	assert.Equal(t, []string{"s0", "s1", "s3"}, first)
	assert.Equal(t, []string{"s2", "s4"}, second)
}

func TestPackSprints_OversizedStoryGetsOwnSprint(t *testing.T) {
	sprints := packSprints([]models.Story{{Title: "big", StoryPoints: 30}, {Title: "small", StoryPoints: 5}}, 20)
	require.Len(t, sprints, 2)
	assert.Equal(t, "big", sprints[0][0].Title)
	assert.Equal(t, "small", sprints[1][0].Title)
}

func TestIterative_EpicsAndSprints(t *testing.T) {
	req := &models.Requirements{
		Features: []models.Feature{
			feature("payments", models.PriorityHigh, models.LevelHigh),
			feature("reports", models.PriorityMedium, models.LevelHigh),
		},
		UserRoles: []string{"customer"},
	}

	plan, err := Synthesize(req, viewpoints.NewArchitect(), models.StrategyIterative)
	require.NoError(t, err)

	require.Len(t, plan.Epics, 2)
	payments := plan.Epics[0]
	assert.Equal(t, "Payments", payments.Title)
	assert.Equal(t, 13, payments.StoryPoints())
	require.Len(t, payments.Stories, 3)
	assert.Equal(t, "Spike: Payments", payments.Stories[0].Title)
	assert.Equal(t, []string{"Spike: Payments"}, payments.Stories[1].Dependencies)
	assert.Contains(t, payments.Stories[1].Description, "As a customer")

	require.Len(t, plan.Phases, 2)
	assert.Equal(t, "Sprint 1", plan.Phases[0].Name)
	assert.Equal(t, "sprint", plan.Phases[0].Type)
	assert.Equal(t, "2 weeks", plan.Phases[0].Duration)
	assert.Equal(t, []string{
		"Spike: Payments", "Payments", "Acceptance Tests: Payments", "Spike: Reports", "Acceptance Tests: Reports",
	}, taskTitles(plan.Phases[0]))
	assert.Equal(t, []string{"Reports"}, taskTitles(plan.Phases[1]))
	assert.Equal(t, "18 of 20 story points", plan.Phases[0].Description)
	assert.Equal(t, models.TaskUserStory, plan.Phases[1].Tasks[0].Type)
	assert.Equal(t, 32.0, plan.Phases[1].Tasks[0].EstimatedHours)
}

func TestIterative_FallbackFeature(t *testing.T) {
	plan, err := Synthesize(&models.Requirements{}, nil, models.StrategyIterative)
	require.NoError(t, err)

	require.Len(t, plan.Epics, 1)
	assert.Equal(t, "Core Functionality", plan.Epics[0].Title)
	require.Len(t, plan.Phases, 1)
	assert.Equal(t, []string{"Core Functionality", "Acceptance Tests: Core Functionality"}, taskTitles(plan.Phases[0]))
}

func TestMinimumScope_KeepsFiveHighPriorityFeatures(t *testing.T) {
	req := &models.Requirements{}
	for i := 0; i < 7; i++ {
		req.Features = append(req.Features, feature(fmt.Sprintf("must %d", i), models.PriorityHigh, models.LevelMedium))
	}
	req.Features = append(req.Features, feature("optional", models.PriorityLow, models.LevelLow))

	plan, err := Synthesize(req, nil, models.StrategyMinimumScope)
	require.NoError(t, err)

	require.Len(t, plan.Phases, 3)
	assert.Equal(t, "Definition", plan.Phases[0].Name)
	assert.Equal(t, "Build", plan.Phases[1].Name)
	assert.Equal(t, "Validation", plan.Phases[2].Name)
	require.Len(t, plan.Phases[1].Tasks, MaxScopedFeatures)
	assert.Equal(t, "Build Must 0", plan.Phases[1].Tasks[0].Title)
	assert.Equal(t, "Build Must 4", plan.Phases[1].Tasks[4].Title)
}

func TestMinimumScope_NoHighPriorityFeatures(t *testing.T) {
	req := &models.Requirements{Features: []models.Feature{feature("extra", models.PriorityMedium, models.LevelLow)}}

	plan, err := Synthesize(req, nil, models.StrategyMinimumScope)
	require.NoError(t, err)

	assert.Equal(t, []string{"Definition", "Validation"}, []string{plan.Phases[0].Name, plan.Phases[1].Name})
	assert.Len(t, plan.Phases, 2)
}

func TestDescribe(t *testing.T) {
	for _, s := range models.Strategies() {
		assert.NotEmpty(t, Describe(s), s)
	}
}
