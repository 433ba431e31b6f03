package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

// ScreenHandler exposes the snapshot and the permission/acquisition operations.
type ScreenHandler struct {
	Service ports.ScreenService
}

// NewScreenHandler creates a new ScreenHandler
func NewScreenHandler(service ports.ScreenService) *ScreenHandler {
	return &ScreenHandler{
		Service: service,
	}
}

// HandleSnapshot returns the current screen state.
func (h *ScreenHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot())
}

// HandleRequestPermission runs the permission prompt.
func (h *ScreenHandler) HandleRequestPermission(w http.ResponseWriter, r *http.Request) {
	state := h.Service.RequestPermission(r.Context())
	writeJSON(w, map[string]interface{}{
		"permission": state,
	})
}

// HandleAcquire triggers a position acquisition.
func (h *ScreenHandler) HandleAcquire(w http.ResponseWriter, r *http.Request) {
	err := h.Service.AcquirePosition(r.Context())
	switch {
	case err == nil:
		writeJSON(w, map[string]string{"status": "acquired"})
	case errors.Is(err, domain.ErrPermissionRequired):
		http.Error(w, "Location permission required", http.StatusPreconditionFailed)
	case errors.Is(err, domain.ErrAcquisitionInFlight):
		http.Error(w, "Acquisition already in flight", http.StatusConflict)
	case errors.Is(err, domain.ErrAcquisitionSuperseded):
		// A reset intervened; the result was discarded without mutating state.
		writeJSON(w, map[string]string{"status": "superseded"})
	default:
		// The failure is already reflected in the screen state; report it
		// without treating it as a server fault.
		slog.Debug("acquisition failed", "error", err)
		writeJSON(w, map[string]interface{}{
			"status":      "failed",
			"acquisition": h.Service.Snapshot().Acquisition,
		})
	}
}

// HandleConsumeOutcome acknowledges a terminal acquisition outcome.
func (h *ScreenHandler) HandleConsumeOutcome(w http.ResponseWriter, r *http.Request) {
	outcome := h.Service.ConsumeOutcome(r.Context())
	writeJSON(w, map[string]interface{}{
		"outcome": outcome,
	})
}

// HandleReset clears the position state and returns to the landmark view.
func (h *ScreenHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.Service.ResetPosition(r.Context())
	writeJSON(w, map[string]string{"status": "reset"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encoding failed", "error", err)
	}
}
