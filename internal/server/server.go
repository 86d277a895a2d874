package server

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v3"
	"github.com/google/uuid"

	"heartcheck/internal/config"
	"heartcheck/internal/middleware"
	"heartcheck/internal/models"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App    *fiber.App
	Cfg    *config.Config
	Logger *slog.Logger
}

// New creates a new server with middleware configured.
func New(cfg *config.Config, log *slog.Logger) *Server {
	// Setup template engine
	engine := html.New(cfg.ViewsDir, ".html")
	engine.Reload(cfg.IsDev())

	// Initialize Fiber
	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler(cfg, log),
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger(log))
	app.Use(logger.New())

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))

	// Cookie encryption middleware
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: deriveEncryptionKey(cfg.SessionSecret),
	}))

	// Static files
	app.Get("/static/*", static.New(cfg.StaticDir))

	return &Server{
		App:    app,
		Cfg:    cfg,
		Logger: log,
	}
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	s.Logger.Info("starting server", "addr", s.Cfg.ServerAddr())
	return s.App.Listen(s.Cfg.ServerAddr(), fiber.ListenConfig{
		DisableStartupMessage: !s.Cfg.IsDev(),
	})
}

// Run starts the server and blocks until ctx is done or the listener fails.
// A listener failure, such as the port being taken, is returned as is.
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Start()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down server")
	return s.Shutdown()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

// errorHandler answers JSON routes with an {"error": ...} body and renders
// the error page for everything else.
func errorHandler(cfg *config.Config, log *slog.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		if code >= fiber.StatusInternalServerError {
			middleware.Logger(c, log).Error("unhandled error", "error", err)
		}

		if wantsJSON(c) {
			if code == fiber.StatusInternalServerError {
				message = err.Error()
			}
			return c.Status(code).JSON(models.ErrorResponse{Error: message})
		}

		return c.Status(code).Render("error", fiber.Map{
			"Title":       "Error",
			"Active":      "",
			"Message":     message,
			"SiteTitle":   cfg.SiteTitle,
			"SiteTagline": cfg.SiteTagline,
		})
	}
}

func wantsJSON(c fiber.Ctx) bool {
	path := c.Path()
	return strings.HasPrefix(path, "/predict") ||
		path == "/healthz" || path == "/readyz"
}

// deriveEncryptionKey derives a 32-byte encryption key from the session secret.
func deriveEncryptionKey(secret string) string {
	hash := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(hash[:])
}
