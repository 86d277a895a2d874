package handlers

import (
	"github.com/gofiber/fiber/v3"

	"heartcheck/internal/config"
)

// PageHandler renders the calculator pages.
type PageHandler struct {
	cfg *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// Index renders the heart disease risk form.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title":  "Heart Disease Risk",
		"Active": "heart",
	}, h.cfg))
}

// BMI renders the BMI calculator.
func (h *PageHandler) BMI(c fiber.Ctx) error {
	return c.Render("bmi", MergeBranding(fiber.Map{
		"Title":  "BMI Calculator",
		"Active": "bmi",
	}, h.cfg))
}

// Cholesterol renders the cholesterol predictor form.
func (h *PageHandler) Cholesterol(c fiber.Ctx) error {
	return c.Render("cholesterol", MergeBranding(fiber.Map{
		"Title":  "Cholesterol Predictor",
		"Active": "cholesterol",
	}, h.cfg))
}
