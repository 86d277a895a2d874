package handlers

import (
	"github.com/gofiber/fiber/v3"

	"heartcheck/internal/models"
	"heartcheck/internal/predictor"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	store *predictor.Store
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(store *predictor.Store) *ProbeHandler {
	return &ProbeHandler{store: store}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Absent models still report ready since the fallback formulas serve every
// request; the status reads "degraded" in that case.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	status := "ok"
	slots := make(map[string]models.ModelStatus, 2)

	for _, slot := range h.store.Slots() {
		ms := models.ModelStatus{
			State: slot.State.String(),
			Name:  slot.Model,
			Path:  slot.Path,
		}
		if slot.Err != nil {
			ms.Error = slot.Err.Error()
		}
		if slot.State != predictor.Loaded {
			status = "degraded"
		}
		slots[slot.Name] = ms
	}

	return c.JSON(fiber.Map{
		"status": status,
		"models": slots,
	})
}
