package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-insight/internal/models"
	"alfredoptarigan/resume-insight/internal/services"
)

type CareerHandler struct {
	advisor services.CareerAdvisor
}

func NewCareerHandler(advisor services.CareerAdvisor) *CareerHandler {
	return &CareerHandler{
		advisor: advisor,
	}
}

// HandleSuggest handles POST /career/suggestions
func (h *CareerHandler) HandleSuggest(c *fiber.Ctx) error {
	var req models.CareerRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	req.Skills = strings.TrimSpace(req.Skills)
	req.Interests = strings.TrimSpace(req.Interests)

	if req.Skills == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "skills is required",
		})
	}

	if req.Interests == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interests is required",
		})
	}

	resp, err := h.advisor.Suggest(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
