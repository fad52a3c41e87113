package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"workflow-planner/internal/config"
	"workflow-planner/internal/formatter"
	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
	"workflow-planner/internal/pipeline"
	"workflow-planner/internal/services"
)

type generateFlags struct {
	asText       bool
	viewpoint    string
	strategy     string
	format       string
	outputDir    string
	all          bool
	dependencies bool
	risks        bool
	estimates    bool
	parallel     bool
	milestones   bool
	qualityGates bool
	watch        bool
	save         bool
}

func (app *cli) newGenerateCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate <file|text>",
		Short: "Generate a workflow from a requirements document",
		Long: `Generate a phased workflow. The argument is read as a file when one exists
at that path (a structured document); otherwise it is treated as free-form text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runGenerate(cmd, f, args[0])
		},
	}

	cmd.Flags().BoolVar(&f.asText, "text", false, "Treat the argument as requirements text even if a file exists")
	cmd.Flags().StringVarP(&f.viewpoint, "viewpoint", "p", "", "Viewpoint (architect, frontend, backend, security, devops, qa)")
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "Strategy (systematic, iterative, minimum-scope)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format (roadmap, tasks, detailed, json, yaml)")
	cmd.Flags().StringVarP(&f.outputDir, "output", "o", "", "Output directory for --save")
	cmd.Flags().BoolVar(&f.all, "all", false, "Run every analysis pass")
	cmd.Flags().BoolVar(&f.dependencies, "dependencies", false, "Attach dependency analysis")
	cmd.Flags().BoolVar(&f.risks, "risks", false, "Attach risk assessment")
	cmd.Flags().BoolVar(&f.estimates, "estimates", false, "Attach effort estimates")
	cmd.Flags().BoolVar(&f.parallel, "parallel", false, "Attach parallel work streams")
	cmd.Flags().BoolVar(&f.milestones, "milestones", false, "Attach milestones")
	cmd.Flags().BoolVar(&f.qualityGates, "quality-gates", false, "Score the plan against quality gates")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "Regenerate whenever the input file changes")
	cmd.Flags().BoolVar(&f.save, "save", false, "Save the rendered plan (and result JSON) to the output directory")

	return cmd
}

// applyFlags overrides the configured options with the flags that were set.
func applyFlags(cmd *cobra.Command, f *generateFlags, opts pipeline.Options) pipeline.Options {
	flags := cmd.Flags()
	if flags.Changed("viewpoint") {
		opts.Viewpoint = f.viewpoint
	}
	if flags.Changed("strategy") {
		opts.Strategy = f.strategy
	}
	if f.all {
		return opts.WithAllPasses()
	}
	if flags.Changed("dependencies") {
		opts.IncludeDependencies = f.dependencies
	}
	if flags.Changed("risks") {
		opts.IncludeRisks = f.risks
	}
	if flags.Changed("estimates") {
		opts.IncludeEstimates = f.estimates
	}
	if flags.Changed("parallel") {
		opts.IncludeParallelStreams = f.parallel
	}
	if flags.Changed("milestones") {
		opts.IncludeMilestones = f.milestones
	}
	if flags.Changed("quality-gates") {
		opts.RunQualityGates = f.qualityGates
	}
	return opts
}

func (app *cli) runGenerate(cmd *cobra.Command, f *generateFlags, input string) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	svc := services.NewWorkflowService(cfg)
	opts := applyFlags(cmd, f, svc.Options())
	if err := opts.Validate(); err != nil {
		return err
	}

	format := cfg.Output.Format
	if f.format != "" {
		format = f.format
	}
	if _, err := formatter.String(&models.Workflow{}, format); err != nil {
		return err
	}

	outputDir := cfg.Output.Dir
	if f.outputDir != "" {
		outputDir = f.outputDir
	}

	once := func() error {
		return generateOnce(cmd, svc, cfg, input, f, opts, format, outputDir)
	}

	if err := once(); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}

	if f.asText || !helpers.FileExists(input) {
		return fmt.Errorf("--watch needs a file path")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return services.NewWatcher(input, services.DefaultDebounce).Run(ctx, once)
}

func generateOnce(cmd *cobra.Command, svc *services.WorkflowService, cfg *config.Config, input string, f *generateFlags,
	opts pipeline.Options, format, outputDir string) error {
	doc, err := svc.LoadDocument(input, f.asText)
	if err != nil {
		return err
	}

	result, err := svc.Generate(doc, opts)
	if err != nil {
		return err
	}

	if !f.save {
		return formatter.Render(cmd.OutOrStdout(), &result.Workflow, format)
	}

	svc.DisplayWorkflow(&result.Workflow)
	paths, err := svc.SaveWorkflowResult(result, format, outputDir)
	if err != nil {
		return fmt.Errorf("failed to save workflow: %w", err)
	}
	for _, p := range paths {
		helpers.PrintSuccess("Saved %s", p)
	}
	if !cfg.Output.SaveJSON && format != "json" {
		helpers.PrintInfo("Set output.save_json in the config to keep a result file for export-jira/export-github")
	}
	return nil
}
