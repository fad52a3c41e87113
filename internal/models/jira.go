package models

// JIRA issue types used by the exporter.
const (
	JiraIssueTypeEpic = "Epic"
	JiraIssueTypeTask = "Task"
)

// JiraIssue represents a JIRA issue
type JiraIssue struct {
	Fields JiraFields `json:"fields"`
}

// JiraFields represents JIRA issue fields
type JiraFields struct {
	Project     JiraProject   `json:"project"`
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	IssueType   JiraIssueType `json:"issuetype"`
	Parent      *JiraParent   `json:"parent,omitempty"`
	Labels      []string      `json:"labels,omitempty"`
}

// JiraProject represents a JIRA project
type JiraProject struct {
	Key string `json:"key"`
}

// JiraIssueType represents a JIRA issue type
type JiraIssueType struct {
	Name string `json:"name"`
}

// JiraParent links a task to its epic.
type JiraParent struct {
	Key string `json:"key"`
}

// JiraResponse represents a JIRA API response
type JiraResponse struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// JiraProjectInfo represents JIRA project information
type JiraProjectInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// JiraExportSummary counts what an export created.
type JiraExportSummary struct {
	Epics   []string `json:"epics"`
	Tasks   []string `json:"tasks"`
	Skipped int      `json:"skipped"`
}
