package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailoring/internal/config"
	"github.com/jonathan/resume-tailoring/internal/gapanalysis"
	"github.com/jonathan/resume-tailoring/internal/llm"
	"github.com/jonathan/resume-tailoring/internal/observability"
	"github.com/jonathan/resume-tailoring/internal/schemas"
	"github.com/jonathan/resume-tailoring/internal/types"
)

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeOutPath    string
	analyzeConfigPath string
	analyzeTimeout    int
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a gap analysis against a job description",
	Long:  `Diff a resume JSON file against a job description text file and print the prioritized gap list.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to resume JSON file")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeOutPath, "out", "", "Write the full analysis JSON to this file")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().IntVar(&analyzeTimeout, "timeout", 0, "Analysis timeout in seconds (0 uses the default)")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print the full gap list")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:           analyzeResumePath,
		Job:              analyzeJobPath,
		APIKey:           os.Getenv("GEMINI_API_KEY"),
		AnalysisTimeoutS: analyzeTimeout,
		Verbose:          analyzeVerbose,
	}
	if analyzeConfigPath != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" || cfg.Job == "" {
		return fmt.Errorf("both --resume and --job are required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	jobBytes, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	llmConfig := llm.DefaultConfig()
	if cfg.LiteModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierLite, cfg.LiteModel)
	}
	if cfg.AdvancedModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierAdvanced, cfg.AdvancedModel)
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	engine := gapanalysis.NewEngine(client).
		WithTimeout(time.Duration(cfg.AnalysisTimeoutS) * time.Second)

	result, err := engine.Analyze(ctx, resume, string(jobBytes))
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintGapAnalysis(result)
	if cfg.Verbose {
		for i, gap := range result.Gaps {
			printer.PrintGap(i, len(result.Gaps), gap)
		}
	}

	if analyzeOutPath != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		if err := os.WriteFile(analyzeOutPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write analysis: %w", err)
		}
		fmt.Printf("Analysis written to %s\n", analyzeOutPath)
	}

	return nil
}

// loadResume reads, schema-checks, and decodes a resume JSON file.
func loadResume(path string) (*types.ResumeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	if err := schemas.ValidateResumeJSON(data); err != nil {
		return nil, err
	}
	var resume types.ResumeData
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}
