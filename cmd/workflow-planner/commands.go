package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"workflow-planner/internal/config"
	"workflow-planner/internal/helpers"
	"workflow-planner/internal/pipeline"
	mcpserver "workflow-planner/internal/server"
	"workflow-planner/internal/services"
)

func (app *cli) newAnalyzeCmd() *cobra.Command {
	var asText, asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <file|text>",
		Short: "Show what the extractor finds in a document, with scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			svc := services.NewWorkflowService(cfg)

			doc, err := svc.LoadDocument(args[0], asText)
			if err != nil {
				return err
			}
			analysis, err := svc.Analyze(doc)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}
			svc.DisplayAnalysis(analysis)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asText, "text", false, "Treat the argument as requirements text even if a file exists")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the analysis as JSON")
	return cmd
}

func newViewpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "viewpoints",
		Short: "List the planning viewpoints",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, vp := range pipeline.ListViewpoints() {
				fmt.Fprintf(out, "%-10s %s\n", vp.Name, vp.Description)
			}
		},
	}
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the synthesis strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, s := range pipeline.ListStrategies() {
				fmt.Fprintf(out, "%-14s %s\n", s.Name, s.Description)
			}
		},
	}
}

func (app *cli) newExportJiraCmd() *cobra.Command {
	var dryRun, yes bool

	cmd := &cobra.Command{
		Use:   "export-jira <result.json>",
		Short: "Create JIRA epics and tasks from a saved workflow",
		Long:  "Load a saved workflow result and create one epic per phase and one task per phase task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			helpers.PrintTitle("Creating JIRA Tickets from Workflow")
			workflowService := services.NewWorkflowService(cfg)
			result, err := workflowService.LoadWorkflowResult(args[0])
			if err != nil {
				return err
			}
			workflowService.DisplayWorkflow(&result.Workflow)

			if !dryRun {
				if err := cfg.Jira.Validate(); err != nil {
					return fmt.Errorf("invalid JIRA configuration: %w", err)
				}
				if !yes && !confirm("Do you want to create these tickets in JIRA? (y/N): ") {
					helpers.PrintInfo("Operation cancelled by user")
					return nil
				}
			}

			ctx := cmd.Context()
			jiraService := services.NewJiraService(&cfg.Jira)
			if !dryRun {
				if err := jiraService.TestConnection(ctx); err != nil {
					return fmt.Errorf("failed to create JIRA tickets: %w", err)
				}
			}

			if _, err := jiraService.ExportWorkflow(ctx, &result.Workflow, dryRun); err != nil {
				return fmt.Errorf("failed to create JIRA tickets: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show what would be created without creating JIRA tickets")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (app *cli) newExportGitHubCmd() *cobra.Command {
	var dryRun, yes bool

	cmd := &cobra.Command{
		Use:   "export-github <result.json>",
		Short: "Create GitHub milestones and issues from a saved workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			helpers.PrintTitle("Creating GitHub Issues from Workflow")
			result, err := services.NewWorkflowService(cfg).LoadWorkflowResult(args[0])
			if err != nil {
				return err
			}

			if !dryRun {
				if err := cfg.GitHub.Validate(); err != nil {
					return fmt.Errorf("invalid GitHub configuration: %w", err)
				}
				if !yes && !confirm(fmt.Sprintf("Create %d issues in %s/%s? (y/N): ", result.Workflow.TaskCount(), cfg.GitHub.Owner, cfg.GitHub.Repo)) {
					helpers.PrintInfo("Operation cancelled by user")
					return nil
				}
			}

			ctx := cmd.Context()
			if _, err := services.NewGitHubService(ctx, &cfg.GitHub).ExportWorkflow(ctx, &result.Workflow, dryRun); err != nil {
				return fmt.Errorf("failed to create GitHub issues: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show what would be created without calling GitHub")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (app *cli) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpers.FileExists(app.configFile) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", app.configFile)
			}
			if err := config.WriteSample(app.configFile); err != nil {
				return err
			}
			helpers.PrintSuccess("Wrote %s", app.configFile)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func (app *cli) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			return server.ServeStdio(mcpserver.New(cfg))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "workflow-planner %s\n", mcpserver.Version)
		},
	}
}

func confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(prompt)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
