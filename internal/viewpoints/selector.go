package viewpoints

import (
	"workflow-planner/internal/models"
)

// Select returns the override when one is given, otherwise the first
// viewpoint whose indicators match, in the order frontend, backend,
// security, devops, falling back to architect.
func Select(req *models.Requirements, override string) (Viewpoint, error) {
	if override != "" {
		return Lookup(override)
	}
	return Lookup(Infer(req))
}

// Infer picks a viewpoint name from domain and pattern signals alone.
func Infer(req *models.Requirements) string {
	if req == nil {
		return "architect"
	}
	switch {
	case req.HasDomain(models.DomainFrontend) || req.HasDomain(models.DomainMobile) ||
		req.HasPattern(models.PatternUIComponent) || req.HasPattern(models.PatternResponsive):
		return "frontend"
	case req.HasDomain(models.DomainBackend) ||
		req.HasPattern(models.PatternAPI) || req.HasPattern(models.PatternDatabase):
		return "backend"
	case req.HasDomain(models.DomainSecurity) ||
		req.HasPattern(models.PatternAuthentication) || req.HasPattern(models.PatternSecurity):
		return "security"
	case req.HasDomain(models.DomainInfrastructure) || req.HasPattern(models.PatternDeployment):
		return "devops"
	default:
		// Broad (more than two domains) or very complex projects land
		// here too.
		return "architect"
	}
}
