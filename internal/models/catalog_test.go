package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogsReturnCopies(t *testing.T) {
	s := Strategies()
	s[0] = "waterfall"
	assert.Equal(t, StrategySystematic, Strategies()[0])

	v := ViewpointNames()
	v[0] = "marketing"
	assert.Equal(t, "architect", ViewpointNames()[0])

	f := OutputFormats()
	f[0] = "pdf"
	assert.Equal(t, []string{"roadmap", "tasks", "detailed", "json", "yaml"}, OutputFormats())

	_, ok := ParseStrategy("waterfall")
	assert.False(t, ok)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name string
		want Strategy
		ok   bool
	}{
		{"", StrategySystematic, true},
		{"iterative", StrategyIterative, true},
		{"minimum-scope", StrategyMinimumScope, true},
		{"Iterative", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStrategy(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, []string{"systematic", "iterative", "minimum-scope"}, StrategyNames())
}
