package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-insight/internal/apperrors"
	"alfredoptarigan/resume-insight/internal/services"
)

func statusForError(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, apperrors.ErrMissingInput),
		errors.Is(err, apperrors.ErrDocumentFormat),
		errors.Is(err, apperrors.ErrFileTooLarge),
		errors.Is(err, services.ErrUnknownPreset):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrUpstreamService):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders every error returned by a handler as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := statusForError(err)

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
