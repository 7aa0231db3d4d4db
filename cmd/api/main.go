package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"alfredoptarigan/resume-insight/internal/config"
	"alfredoptarigan/resume-insight/internal/handlers"
	"alfredoptarigan/resume-insight/internal/logging"
	"alfredoptarigan/resume-insight/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New("resume-insight-api", cfg.Server.Env)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	logger.Info("✅ Config loaded successfully")

	// Initialize services
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	pdfParser := services.NewPDFParserService(logger)

	geminiService, err := services.NewGeminiService(cfg.Gemini, logger)
	if err != nil {
		logger.Fatal("❌ Failed to initialize Gemini AI", zap.Error(err))
	}
	logger.Info("✅ Gemini AI initialized successfully", zap.String("model", cfg.Gemini.Model))

	careerService, err := services.NewCareerService(cfg.Groq, logger)
	if err != nil {
		logger.Fatal("❌ Failed to initialize career suggestions", zap.Error(err))
	}
	logger.Info("✅ Career suggestions initialized successfully", zap.String("model", cfg.Groq.Model))

	// Initialize Handlers
	resumeHandler := handlers.NewResumeHandler(uploadService, pdfParser, geminiService, logger)
	careerHandler := handlers.NewCareerHandler(careerService)

	app := handlers.NewRouter(handlers.RouterConfig{
		AppName:     "Resume Insight API",
		MaxBodySize: cfg.Storage.MaxFileSize,
	}, resumeHandler, careerHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		logger.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
