package viewpoints

import (
	"strings"

	"workflow-planner/internal/models"
)

// Security plans threat modeling, hardening and verification.
type Security struct {
	profile
}

// NewSecurity returns the security viewpoint.
func NewSecurity() *Security {
	return &Security{profile{
		name:        "security",
		description: "Threat modeling, secure implementation, compliance and incident response",
		builders: []PhaseBuilder{
			securityThreatModeling,
			securityRequirements,
			securityAuthHardening,
			securitySecureImplementation,
			securityDataProtection,
			securityTesting,
			securityMonitoring,
		},
		practices: []string{
			"Apply least privilege to every identity and service",
			"Validate input at every trust boundary",
			"Keep secrets out of source control",
			"Patch dependencies on a fixed cadence",
			"Log security events in a tamper-evident store",
		},
		gates: []string{
			"Threat model reviewed",
			"No high or critical findings from static analysis",
			"Dependency scan clean",
			"Penetration test findings remediated",
		},
	}}
}

func securityThreatModeling(req *models.Requirements) *models.Phase {
	return newPhase("Threat Modeling", "analysis", "Identify what can go wrong",
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Identify Assets and Trust Boundaries",
			Description:    "Data flows, entry points and privileged roles: " + listOrNone(req.UserRoles),
			Deliverables:   []string{"Data flow diagram"},
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
		},
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Perform STRIDE Threat Analysis",
			Description:    "Enumerate threats per component and rank them",
			Deliverables:   []string{"Threat model"},
			EstimatedHours: 8,
			Priority:       models.PriorityCritical,
			Dependencies:   []string{"Identify Assets and Trust Boundaries"},
			Tools:          []string{"OWASP Threat Dragon"},
		},
	)
}

func securityRequirements(req *models.Requirements) *models.Phase {
	tasks := []models.Task{{
		Type:           models.TaskAnalysis,
		Title:          "Define Security Requirements",
		Description:    "Mechanisms: " + listOrNone(securityMechanisms(req)),
		Deliverables:   []string{"Security requirements"},
		EstimatedHours: 6,
		Priority:       models.PriorityHigh,
		Dependencies:   []string{"Perform STRIDE Threat Analysis"},
	}}
	if regimes := compliance(req); len(regimes) > 0 {
		tasks = append(tasks, models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Map Compliance Obligations",
			Description:    "Controls required by " + strings.ToUpper(strings.Join(regimes, ", ")),
			Deliverables:   []string{"Compliance control matrix"},
			EstimatedHours: 8,
			Priority:       models.PriorityCritical,
		})
	}
	return newPhase("Security Requirements", "analysis", "Turn threats into requirements", tasks...)
}

func securityAuthHardening(req *models.Requirements) *models.Phase {
	if !req.HasPattern(models.PatternAuthentication) {
		return nil
	}
	tasks := []models.Task{{
		Type:           models.TaskImplementation,
		Title:          "Harden Authentication Flows",
		Description:    "Rate limiting, lockout, secure password storage and token rotation",
		Deliverables:   []string{"Hardened auth flows"},
		EstimatedHours: 8,
		Priority:       models.PriorityCritical,
		Dependencies:   []string{"Define Security Requirements"},
		Tools:          []string{"bcrypt"},
	}}
	_, mfa := req.TechnicalRequirements.Security["mfa"]
	_, twoFactor := req.TechnicalRequirements.Security["2fa"]
	if mfa || twoFactor || req.HighSecurity() {
		tasks = append(tasks, models.Task{
			Type:           models.TaskImplementation,
			Title:          "Implement Multi-Factor Authentication",
			Description:    "TOTP or WebAuthn second factor",
			EstimatedHours: 10,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Harden Authentication Flows"},
		})
	}
	return newPhase("Authentication Hardening", "security", "Make identity hard to abuse", tasks...)
}

func securitySecureImplementation(req *models.Requirements) *models.Phase {
	return newPhase("Secure Implementation", "implementation", "Build with security controls in place",
		models.Task{
			Type:           models.TaskImplementation,
			Title:          "Implement Input Validation",
			Description:    "Validate and encode all untrusted input",
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Define Security Requirements"},
		},
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Set Up Secrets Management",
			Description:    "Central secret store with rotation",
			EstimatedHours: 4,
			Priority:       models.PriorityHigh,
			Tools:          []string{"Vault"},
		},
		models.Task{
			Type:           models.TaskReview,
			Title:          "Review Code Against Secure Coding Standards",
			Description:    "Checklist-driven review of security-sensitive code",
			Deliverables:   []string{"Review log"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Implement Input Validation"},
		},
	)
}

func securityDataProtection(req *models.Requirements) *models.Phase {
	if len(compliance(req)) == 0 && !req.HighSecurity() && !req.HasPattern(models.PatternDatabase) {
		return nil
	}
	return newPhase("Data Protection", "security", "Protect sensitive data through its lifecycle",
		models.Task{
			Type:           models.TaskImplementation,
			Title:          "Encrypt Data at Rest and in Transit",
			Description:    "TLS everywhere and encrypted storage for sensitive fields",
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Tools:          []string{"TLS", "KMS"},
		},
		models.Task{
			Type:           models.TaskImplementation,
			Title:          "Implement Audit Logging",
			Description:    "Record who accessed or changed sensitive data",
			Deliverables:   []string{"Audit log"},
			EstimatedHours: 6,
			Priority:       models.PriorityMedium,
		},
		models.Task{
			Type:           models.TaskDocumentation,
			Title:          "Define Data Retention Policy",
			Description:    "Retention periods and deletion procedures",
			Deliverables:   []string{"Retention policy"},
			EstimatedHours: 2,
			Priority:       models.PriorityMedium,
		},
	)
}

func securityTesting(req *models.Requirements) *models.Phase {
	return newPhase("Security Testing", "testing", "Verify the controls",
		models.Task{
			Type:           models.TaskTesting,
			Title:          "Run Static Application Security Testing",
			Description:    "SAST on every build",
			EstimatedHours: 4,
			Priority:       models.PriorityHigh,
			Tools:          []string{"Semgrep"},
		},
		models.Task{
			Type:           models.TaskTesting,
			Title:          "Scan Dependencies for Vulnerabilities",
			Description:    "Fail the build on known critical vulnerabilities",
			EstimatedHours: 2,
			Priority:       models.PriorityHigh,
			Tools:          []string{"Dependabot"},
		},
		models.Task{
			Type:           models.TaskTesting,
			Title:          "Conduct Penetration Test",
			Description:    "External test of the deployed system",
			Deliverables:   []string{"Penetration test report"},
			EstimatedHours: 16,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Implement Input Validation"},
			Tools:          []string{"OWASP ZAP"},
		},
	)
}

func securityMonitoring(req *models.Requirements) *models.Phase {
	return newPhase("Monitoring and Response", "monitoring", "Detect and respond to incidents",
		models.Task{
			Type:           models.TaskMonitoring,
			Title:          "Set Up Security Monitoring",
			Description:    "Alert on suspicious authentication and access patterns",
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
			Tools:          []string{"SIEM"},
		},
		models.Task{
			Type:           models.TaskDocumentation,
			Title:          "Write Incident Response Plan",
			Description:    "Roles, severity levels and communication steps",
			Deliverables:   []string{"Incident response runbook"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
		},
	)
}
