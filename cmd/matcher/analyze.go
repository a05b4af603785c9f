package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/presenter"
	"alfredoptarigan/resume-matcher/internal/services"
)

var (
	resumePath string
	jobPath    string
	engine     string
	timeout    time.Duration
	asJSON     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  "Reads a resume and a job description (PDF, DOCX or plain text), runs one analysis and prints the report.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "path to the resume (.pdf, .docx, .txt, .md)")
	analyzeCmd.Flags().StringVarP(&jobPath, "job", "j", "", "path to the job description (.pdf, .docx, .txt, .md)")
	analyzeCmd.Flags().StringVarP(&engine, "engine", "e", "", "analyzer engine: keyword or gemini (default: ANALYZER_ENGINE)")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 0, "analysis timeout (default: ANALYSIS_TIMEOUT)")
	analyzeCmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if engine != "" {
		cfg.Analyzer.Engine = strings.ToLower(engine)
	}
	if timeout > 0 {
		cfg.Analyzer.Timeout = timeout
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	extractor := services.NewTextExtractor()
	resume, err := extractor.ExtractFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	job, err := extractor.ExtractFile(jobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	analyzer, err := services.NewAnalyzerFromConfig(ctx, cfg)
	if err != nil {
		return err
	}

	controller := services.NewAnalysisController(
		uuid.New(),
		analyzer,
		terminalNotifier{w: cmd.ErrOrStderr()},
		cfg.Analyzer.Timeout,
	)
	controller.SetResumeText(resume.Text)
	controller.SetJobDescriptionText(job.Text)

	fmt.Fprintln(cmd.ErrOrStderr(), "Analyzing with AI...")
	if err := controller.SubmitAnalysis(ctx); err != nil {
		return err
	}

	result := controller.State().Result
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return presenter.RenderText(cmd.OutOrStdout(), presenter.Present(result))
}
