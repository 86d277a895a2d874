package handlers

import (
	"github.com/gofiber/fiber/v3"

	"heartcheck/internal/models"
	"heartcheck/internal/prediction"
)

// SourceHeader names the response header reporting which path served a prediction.
const SourceHeader = "X-Prediction-Source"

// PredictionHandler serves the two calculator endpoints.
type PredictionHandler struct {
	svc *prediction.Service
}

// NewPredictionHandler creates a new prediction handler.
func NewPredictionHandler(svc *prediction.Service) *PredictionHandler {
	return &PredictionHandler{svc: svc}
}

// Heart handles POST /predict.
func (h *PredictionHandler) Heart(c fiber.Ctx) error {
	in, err := models.DecodeHeartInput(c.Body())
	if err != nil {
		return h.fail(c, "error in prediction", err)
	}

	record, err := in.Record()
	if err != nil {
		return h.fail(c, "error in prediction", err)
	}

	return respond(c, h.svc.Heart(c.Context(), record))
}

// Cholesterol handles POST /predict_cholesterol.
func (h *PredictionHandler) Cholesterol(c fiber.Ctx) error {
	in, err := models.DecodeCholesterolInput(c.Body())
	if err != nil {
		return h.fail(c, "error in cholesterol prediction", err)
	}

	record, err := in.Record()
	if err != nil {
		return h.fail(c, "error in cholesterol prediction", err)
	}

	return respond(c, h.svc.Cholesterol(c.Context(), record))
}

// fail reports a caller-visible request failure. Model failures never get
// here; they are recovered by the fallback formulas.
func (h *PredictionHandler) fail(c fiber.Ctx, msg string, err error) error {
	requestLogger(c).Error(msg, "error", err)
	return jsonError(c, fiber.StatusInternalServerError, err.Error())
}

func respond(c fiber.Ctx, out prediction.Outcome) error {
	c.Set(SourceHeader, string(out.Source))
	return c.JSON(models.PredictionResponse{Prediction: out.Value})
}
