package viewpoints

import (
	"fmt"
	"strings"

	"workflow-planner/internal/models"
)

// catalog is the fixed viewpoint table, in models.ViewpointNames() order.
var catalog = []Viewpoint{
	NewArchitect(),
	NewFrontend(),
	NewBackend(),
	NewSecurity(),
	NewDevOps(),
	NewQA(),
}

// All returns every viewpoint in display order.
func All() []Viewpoint {
	return append([]Viewpoint(nil), catalog...)
}

// Names returns the viewpoint names in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, vp := range catalog {
		names[i] = vp.Name()
	}
	return names
}

// Lookup returns the viewpoint with the given name.
func Lookup(name string) (Viewpoint, error) {
	for _, vp := range catalog {
		if vp.Name() == name {
			return vp, nil
		}
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", models.ErrUnknownViewpoint, name, strings.Join(Names(), ", "))
}
