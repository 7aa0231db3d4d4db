package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-insight/internal/services"
)

var (
	analyzeInput  string
	analyzePrompt string
	analyzePreset string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file.pdf]",
	Short: "Analyze a PDF resume with Gemini",
	Long: `Extracts the resume text and sends it to Gemini together with the
instruction (usually a job description) and a prompt. Use --preset to pick a
built-in prompt instead of writing one.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "instruction or job description")
	analyzeCmd.Flags().StringVarP(&analyzePrompt, "prompt", "p", "", "prompt text (overrides --preset)")
	analyzeCmd.Flags().StringVar(&analyzePreset, "preset", services.DefaultPreset, "built-in prompt: review or match")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if pdfParser == nil || newAnalyzer == nil {
		return errors.New("analyzer not configured")
	}

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	content, err := pdfParser.ExtractFile(args[0])
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	req, err := services.NewPromptBuilder().BuildAnalysisRequest(analyzeInput, content.Text, analyzePrompt, analyzePreset)
	if err != nil {
		return err
	}

	analysis, err := analyzer.Analyze(context.Background(), req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), analysis)
	return nil
}
