package viewpoints

import (
	"workflow-planner/internal/models"
)

// DevOps plans infrastructure, delivery and operations.
type DevOps struct {
	profile
}

// NewDevOps returns the devops viewpoint.
func NewDevOps() *DevOps {
	return &DevOps{profile{
		name:        "devops",
		description: "Infrastructure as code, delivery pipelines, observability and resilience",
		builders: []PhaseBuilder{
			devopsAssessment,
			devopsInfrastructureAsCode,
			devopsPipelines,
			devopsContainerization,
			devopsMonitoring,
			devopsScaling,
			devopsDisasterRecovery,
		},
		practices: []string{
			"Describe every environment as code",
			"Keep environments identical except for configuration",
			"Deploy small changes often behind health checks",
			"Alert on symptoms users feel, not on every cause",
			"Rehearse recovery before you need it",
		},
		gates: []string{
			"Infrastructure changes reviewed and applied from code",
			"Pipeline deploys to staging automatically",
			"Dashboards and alerts cover the golden signals",
			"Backup restore tested",
		},
	}}
}

// cloudTools picks the cloud providers named among the integrations.
func cloudTools(req *models.Requirements) []string {
	var out []string
	for _, i := range req.Integrations {
		switch i {
		case "aws", "azure", "gcp", "s3", "firebase":
			out = append(out, i)
		}
	}
	return out
}

func devopsAssessment(req *models.Requirements) *models.Phase {
	return newPhase("Infrastructure Assessment", "analysis", "Decide where and how the system runs",
		models.Task{
			Type:           models.TaskAnalysis,
			Title:          "Assess Infrastructure Requirements",
			Description:    "Availability, capacity and data residency needs",
			Deliverables:   []string{"Infrastructure requirements"},
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
		},
		models.Task{
			Type:           models.TaskResearch,
			Title:          "Select Cloud Services",
			Description:    "Cloud platforms named: " + listOrNone(cloudTools(req)),
			Deliverables:   []string{"Service selection"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Assess Infrastructure Requirements"},
			Tools:          cloudTools(req),
		},
	)
}

func devopsInfrastructureAsCode(req *models.Requirements) *models.Phase {
	return newPhase("Infrastructure as Code", "configuration", "Codify the environments",
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Write Infrastructure Modules",
			Description:    "Network, compute, storage and IAM as reusable modules",
			Deliverables:   []string{"Infrastructure modules"},
			EstimatedHours: 12,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Select Cloud Services"},
			Tools:          []string{"Terraform"},
		},
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Provision Environments",
			Description:    "Development, staging and production",
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Write Infrastructure Modules"},
			Tools:          []string{"Terraform"},
		},
	)
}

func devopsPipelines(req *models.Requirements) *models.Phase {
	return newPhase("CI/CD", "deployment", "Automate build, test and release",
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Build CI Pipeline",
			Description:    "Lint, test, scan and build artifacts on every change",
			Deliverables:   []string{"CI pipeline"},
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
			Tools:          []string{"GitHub Actions"},
		},
		models.Task{
			Type:           models.TaskDeployment,
			Title:          "Build CD Pipeline",
			Description:    "Promote artifacts through environments with approvals",
			Deliverables:   []string{"CD pipeline"},
			EstimatedHours: 8,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Build CI Pipeline", "Provision Environments"},
			Tools:          []string{"GitHub Actions"},
		},
	)
}

func devopsContainerization(req *models.Requirements) *models.Phase {
	return newPhase("Containerization", "deployment", "Package and orchestrate workloads",
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Containerize Services",
			Description:    "Minimal, non-root images with health checks",
			Deliverables:   []string{"Dockerfiles"},
			EstimatedHours: 6,
			Priority:       models.PriorityMedium,
			Tools:          []string{"Docker"},
		},
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Configure Orchestration",
			Description:    "Deployments, services and resource limits",
			Deliverables:   []string{"Kubernetes manifests"},
			EstimatedHours: 8,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Containerize Services"},
			Tools:          []string{"Kubernetes", "Helm"},
		},
	)
}

func devopsMonitoring(req *models.Requirements) *models.Phase {
	return newPhase("Monitoring", "monitoring", "See what production is doing",
		models.Task{
			Type:           models.TaskMonitoring,
			Title:          "Set Up Metrics and Dashboards",
			Description:    "Latency, traffic, errors and saturation",
			Deliverables:   []string{"Dashboards"},
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
			Tools:          []string{"Prometheus", "Grafana"},
		},
		models.Task{
			Type:           models.TaskMonitoring,
			Title:          "Configure Alerting",
			Description:    "Page on user-facing symptoms",
			Deliverables:   []string{"Alert rules", "On-call rotation"},
			EstimatedHours: 4,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Set Up Metrics and Dashboards"},
		},
		models.Task{
			Type:           models.TaskMonitoring,
			Title:          "Centralize Logging",
			Description:    "Structured logs shipped to one searchable store",
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Tools:          []string{"Loki"},
		},
	)
}

func devopsScaling(req *models.Requirements) *models.Phase {
	if !hasScaleRequirements(req) && !req.HasRealtime() {
		return nil
	}
	return newPhase("Scaling", "optimization", "Absorb load without manual work",
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Configure Autoscaling",
			Description:    "Scale on CPU, memory and queue depth",
			EstimatedHours: 6,
			Priority:       models.PriorityHigh,
			Dependencies:   []string{"Configure Orchestration"},
		},
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Set Up Load Balancing",
			Description:    "Health-checked load balancing with connection draining",
			EstimatedHours: 4,
			Priority:       models.PriorityHigh,
			Tools:          []string{"load balancer"},
		},
	)
}

func devopsDisasterRecovery(req *models.Requirements) *models.Phase {
	return newPhase("Disaster Recovery", "operations", "Recover from the worst day",
		models.Task{
			Type:           models.TaskConfiguration,
			Title:          "Define Backup Strategy",
			Description:    "Automated backups with retention and encryption",
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
		},
		models.Task{
			Type:           models.TaskDocumentation,
			Title:          "Write Disaster Recovery Runbook",
			Description:    "Recovery objectives and restore steps",
			Deliverables:   []string{"DR runbook"},
			EstimatedHours: 4,
			Priority:       models.PriorityMedium,
			Dependencies:   []string{"Define Backup Strategy"},
		},
	)
}
