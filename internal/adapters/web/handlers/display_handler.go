package handlers

import (
	"net/http"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

// DisplayHandler exposes the synchronous display-mode toggles.
type DisplayHandler struct {
	Service ports.ScreenService
}

// NewDisplayHandler creates a new DisplayHandler
func NewDisplayHandler(service ports.ScreenService) *DisplayHandler {
	return &DisplayHandler{
		Service: service,
	}
}

// HandleToggleMapType flips standard <-> satellite.
func (h *DisplayHandler) HandleToggleMapType(w http.ResponseWriter, r *http.Request) {
	h.Service.ToggleMapType(r.Context())
	writeJSON(w, map[string]interface{}{
		"display": h.Service.Snapshot().Display,
	})
}

// HandleShowDetails opens the details panel. Without a stored position the
// operation is a no-op and says so.
func (h *DisplayHandler) HandleShowDetails(w http.ResponseWriter, r *http.Request) {
	shown := h.Service.ShowDetails(r.Context())
	writeJSON(w, map[string]interface{}{
		"shown":   shown,
		"display": h.Service.Snapshot().Display,
	})
}

// HandleHideDetails closes the details panel.
func (h *DisplayHandler) HandleHideDetails(w http.ResponseWriter, r *http.Request) {
	h.Service.HideDetails(r.Context())
	writeJSON(w, map[string]interface{}{
		"display": h.Service.Snapshot().Display,
	})
}
