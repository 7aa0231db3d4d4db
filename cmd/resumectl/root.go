package main

import (
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-insight/internal/services"
)

// Set by main; tests replace them with fakes.
var (
	pdfParser   services.PDFParserService
	newAnalyzer func() (services.ResumeAnalyzer, error)
	newAdvisor  func() (services.CareerAdvisor, error)
)

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Analyze resumes and suggest careers from the command line",
	Long: `resumectl runs the same flows as the Resume Insight API against local files:
extract text from a PDF resume, analyze it with Gemini, or ask for career suggestions.`,
	SilenceUsage: true,
}
