package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouterConfig struct {
	AppName     string
	MaxBodySize int64
}

// NewRouter wires middleware and routes onto a new fiber app.
func NewRouter(cfg RouterConfig, resumeHandler *ResumeHandler, careerHandler *CareerHandler) *fiber.App {
	// Leave headroom for multipart framing around the file itself.
	bodyLimit := int(cfg.MaxBodySize) + 1<<20

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/resume/extract", resumeHandler.HandleExtract)
	api.Post("/resume/analyze", resumeHandler.HandleAnalyze)
	api.Post("/career/suggestions", careerHandler.HandleSuggest)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": cfg.AppName,
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/health",
				"POST /api/v1/resume/extract",
				"POST /api/v1/resume/analyze",
				"POST /api/v1/career/suggestions",
			},
		})
	})

	return app
}
