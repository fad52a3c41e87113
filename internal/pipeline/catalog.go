package pipeline

import (
	"workflow-planner/internal/models"
	"workflow-planner/internal/synthesis"
	"workflow-planner/internal/viewpoints"
)

// ViewpointInfo describes one entry of the viewpoint catalog.
type ViewpointInfo struct {
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	BestPractices []string `json:"best_practices" yaml:"best_practices"`
	QualityGates  []string `json:"quality_gates" yaml:"quality_gates"`
}

// StrategyInfo describes one entry of the strategy catalog.
type StrategyInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ListViewpoints returns the viewpoint catalog in display order.
func ListViewpoints() []ViewpointInfo {
	all := viewpoints.All()
	out := make([]ViewpointInfo, 0, len(all))
	for _, vp := range all {
		out = append(out, ViewpointInfo{
			Name:          vp.Name(),
			Description:   vp.Description(),
			BestPractices: vp.BestPractices(),
			QualityGates:  vp.QualityGates(),
		})
	}
	return out
}

// ListStrategies returns the strategy catalog in display order.
func ListStrategies() []StrategyInfo {
	all := models.Strategies()
	out := make([]StrategyInfo, 0, len(all))
	for _, s := range all {
		out = append(out, StrategyInfo{Name: string(s), Description: synthesis.Describe(s)})
	}
	return out
}
