package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/apperrors"
	applog "stockroom/internal/log"
)

// Envelope convention: { success, data, error? }. Extra fields (count,
// summary, period) ride alongside data on list/report responses.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func created(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

// fail maps an AppError to its status. Storage failures are logged and
// replaced with a generic message so internals never leak.
func fail(c *fiber.Ctx, action string, err error) error {
	var ae *apperrors.AppError
	if errors.As(err, &ae) {
		if ae.HTTPStatus >= fiber.StatusInternalServerError {
			applog.Error(c, action, err, nil)
			return c.Status(ae.HTTPStatus).JSON(fiber.Map{"success": false, "error": "internal server error"})
		}
		return c.Status(ae.HTTPStatus).JSON(fiber.Map{"success": false, "error": ae.Message})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "internal server error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": msg})
}
