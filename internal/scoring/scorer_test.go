package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"workflow-planner/internal/models"
)

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%d", i)
	}
	return out
}

func features(n int) []models.Feature {
	out := make([]models.Feature, n)
	for i := range out {
		out[i] = models.Feature{Name: fmt.Sprintf("feature-%d", i), Priority: models.PriorityMedium, Complexity: models.LevelMedium}
	}
	return out
}

func TestScore_EmptyRequirements(t *testing.T) {
	req := &models.Requirements{}
	req.Complexity = Complexity(req)

	s := Score(req)
	assert.Zero(t, s.Complexity)
	assert.Equal(t, models.LevelLow, s.RiskLevel)
	assert.Equal(t, 2, s.DurationWeeks)
	assert.Equal(t, "2 weeks", FormatWeeks(s.DurationWeeks))
}

func TestComplexity_Weights(t *testing.T) {
	tests := []struct {
		name string
		req  models.Requirements
		want float64
	}{
		{"components", models.Requirements{Components: names(4)}, 0.20},
		{"components capped", models.Requirements{Components: names(30)}, 0.50},
		{"integrations", models.Requirements{Integrations: names(2)}, 0.20},
		{"integrations capped", models.Requirements{Integrations: names(9)}, 0.50},
		{"roles", models.Requirements{UserRoles: names(3)}, 0.15},
		{"features", models.Requirements{Features: features(10)}, 0.30},
		{"pages", models.Requirements{Pages: names(5)}, 0.10},
		{"realtime", models.Requirements{Patterns: []string{models.PatternRealtime}}, 0.20},
		{"high security", models.Requirements{TechnicalRequirements: models.TechnicalRequirements{
			Security: map[string]string{models.KeySecurityLevel: "high"},
		}}, 0.15},
		{"critical performance", models.Requirements{TechnicalRequirements: models.TechnicalRequirements{
			Performance: map[string]string{models.KeyPerformanceTier: models.TierCritical},
		}}, 0.10},
		{"enterprise scale", models.Requirements{TechnicalRequirements: models.TechnicalRequirements{
			Scalability: map[string]string{models.KeyScalabilityTier: models.TierEnterprise},
		}}, 0.15},
		{"clamped", models.Requirements{Components: names(10), Integrations: names(5), Features: features(20)}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Complexity(&tt.req), 1e-9)
		})
	}
}

func TestComplexity_BoundedAndMonotone(t *testing.T) {
	req := &models.Requirements{}
	prev := Complexity(req)
	for i := 0; i < 40; i++ {
		switch i % 5 {
		case 0:
			req.Components = append(req.Components, fmt.Sprintf("c%d", i))
		case 1:
			req.Integrations = append(req.Integrations, fmt.Sprintf("i%d", i))
		case 2:
			req.UserRoles = append(req.UserRoles, fmt.Sprintf("r%d", i))
		case 3:
			req.Features = append(req.Features, models.Feature{Name: fmt.Sprintf("f%d", i)})
		case 4:
			req.Pages = append(req.Pages, fmt.Sprintf("p%d", i))
		}
		got := Complexity(req)
		assert.GreaterOrEqual(t, got, prev, "step %d", i)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
		prev = got
	}
	assert.Equal(t, 1.0, prev)
}

func TestRiskLevel(t *testing.T) {
	highSecurity := models.TechnicalRequirements{Security: map[string]string{models.KeySecurityLevel: "high"}}

	tests := []struct {
		name string
		req  models.Requirements
		want models.Level
	}{
		{"nothing", models.Requirements{}, models.LevelLow},
		{"high security only", models.Requirements{TechnicalRequirements: highSecurity}, models.LevelLow},
		{"many integrations", models.Requirements{Integrations: names(4)}, models.LevelMedium},
		{"security and features", models.Requirements{TechnicalRequirements: highSecurity, Features: features(11)}, models.LevelMedium},
		{"complex with integrations", models.Requirements{Complexity: 0.75, Integrations: names(4)}, models.LevelHigh},
		{"complexity at threshold", models.Requirements{Complexity: 0.7}, models.LevelLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RiskLevel(&tt.req))
		})
	}
}

func TestDurationWeeks(t *testing.T) {
	tests := []struct {
		name string
		req  models.Requirements
		want int
	}{
		{"baseline", models.Requirements{}, 2},
		{"features", models.Requirements{Features: features(4)}, 4},
		{"odd features round up", models.Requirements{Features: features(3)}, 4},
		{"integrations", models.Requirements{Integrations: names(2)}, 4},
		{"complexity multiplier", models.Requirements{Features: features(4), Complexity: 0.5}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationWeeks(&tt.req))
		})
	}
}

func TestDurationWeeks_Monotone(t *testing.T) {
	req := &models.Requirements{}
	prev := DurationWeeks(req)
	for i := 0; i < 12; i++ {
		req.Features = append(req.Features, models.Feature{Name: fmt.Sprintf("f%d", i)})
		req.Integrations = append(req.Integrations, fmt.Sprintf("i%d", i))
		req.Complexity = Complexity(req)
		got := DurationWeeks(req)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestFormatWeeks(t *testing.T) {
	assert.Equal(t, "1 week", FormatWeeks(1))
	assert.Equal(t, "7 weeks", FormatWeeks(7))
}
