package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"heartcheck/internal/middleware"
	"heartcheck/internal/models"
)

// jsonError returns an {"error": message} body with the given status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: message})
}

// requestLogger returns the request-scoped logger or the default one.
func requestLogger(c fiber.Ctx) *slog.Logger {
	return middleware.Logger(c, slog.Default())
}
