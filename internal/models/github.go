package models

// GitHubExportSummary counts what a GitHub export created.
type GitHubExportSummary struct {
	Milestones []int    `json:"milestones"`
	Issues     []string `json:"issues"`
	Skipped    int      `json:"skipped"`
}
