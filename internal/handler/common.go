package handler

import (
	"errors"

	"go-warehouse-inventory/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper to fetch user info from JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondError maps service error kinds to HTTP statuses: validation
// kinds to 400, lookups to 404, anything else to 500.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		status := fiber.StatusBadRequest
		if appErr.Kind == apperror.KindNotFound {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error": appErr.Message,
			"kind":  appErr.Kind,
			"field": appErr.Field,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
