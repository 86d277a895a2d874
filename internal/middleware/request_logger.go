package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"heartcheck/internal/logging"
)

// RequestLogger attaches a logger tagged with the request ID to the
// request context. Must run after the requestid middleware.
func RequestLogger(base *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		l := base.With(
			"request_id", requestid.FromContext(c),
			"method", c.Method(),
			"path", c.Path(),
		)
		c.SetContext(logging.WithLogger(c.Context(), l))
		return c.Next()
	}
}

// Logger returns the request-scoped logger, or fallback outside a request.
func Logger(c fiber.Ctx, fallback *slog.Logger) *slog.Logger {
	return logging.FromContext(c.Context(), fallback)
}
