package main

import (
	"os"

	"github.com/spf13/cobra"

	"workflow-planner/internal/config"
	"workflow-planner/internal/helpers"
)

// cli holds the persistent flags shared by every command.
type cli struct {
	configFile string
	verbose    bool
	noColor    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		helpers.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	app := &cli{}

	var rootCmd = &cobra.Command{
		Use:   "workflow-planner",
		Short: "Workflow Planner - turn requirements into phased delivery plans",
		Long: `Workflow Planner reads a requirements document or a short description,
extracts features and constraints, and synthesizes a phased workflow from a
chosen viewpoint. Plans can be exported to JIRA or GitHub.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			helpers.SetVerbose(app.verbose)
			helpers.ConfigureColor(app.noColor)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&app.configFile, "config", "c", config.DefaultPath, "Configuration file path (YAML or TOML)")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Print pipeline tracing to stderr")
	rootCmd.PersistentFlags().BoolVar(&app.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		app.newGenerateCmd(),
		app.newAnalyzeCmd(),
		newViewpointsCmd(),
		newStrategiesCmd(),
		app.newExportJiraCmd(),
		app.newExportGitHubCmd(),
		app.newInitCmd(),
		app.newServeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func (app *cli) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(app.configFile)
	if err != nil {
		return nil, err
	}
	helpers.PrintDebug("config: %s (strategy=%s format=%s)", app.configFile, cfg.Pipeline.Strategy, cfg.Output.Format)
	return cfg, nil
}
