package main

import (
	"log"
	"os"

	"alfredoptarigan/resume-insight/internal/config"
	"alfredoptarigan/resume-insight/internal/logging"
	"alfredoptarigan/resume-insight/internal/services"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New("resumectl", cfg.Server.Env)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	pdfParser = services.NewPDFParserService(logger)
	newAnalyzer = func() (services.ResumeAnalyzer, error) {
		return services.NewGeminiService(cfg.Gemini, logger)
	}
	newAdvisor = func() (services.CareerAdvisor, error) {
		return services.NewCareerService(cfg.Groq, logger)
	}

	if err := rootCmd.Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
