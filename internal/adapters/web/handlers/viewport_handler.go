package handlers

import (
	"net/http"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

// ViewportHandler exposes the zoom/center/reset viewport operations.
type ViewportHandler struct {
	Service ports.ScreenService
}

// NewViewportHandler creates a new ViewportHandler
func NewViewportHandler(service ports.ScreenService) *ViewportHandler {
	return &ViewportHandler{
		Service: service,
	}
}

// HandleZoomIn steps the camera zoom up. A surface that cannot answer the
// camera read makes this a silent no-op, so the response is 200 either way.
func (h *ViewportHandler) HandleZoomIn(w http.ResponseWriter, r *http.Request) {
	h.Service.ZoomIn(r.Context())
	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleZoomOut steps the camera zoom down.
func (h *ViewportHandler) HandleZoomOut(w http.ResponseWriter, r *http.Request) {
	h.Service.ZoomOut(r.Context())
	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleCenter re-frames the last acquired position.
func (h *ViewportHandler) HandleCenter(w http.ResponseWriter, r *http.Request) {
	h.Service.CenterOnLastPosition(r.Context())
	writeJSON(w, map[string]interface{}{
		"status":   "ok",
		"viewport": h.Service.Snapshot().Viewport,
	})
}

// HandleReset animates back to the landmark's default viewport.
func (h *ViewportHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.Service.ResetViewport(r.Context())
	writeJSON(w, map[string]interface{}{
		"status":   "ok",
		"viewport": h.Service.Snapshot().Viewport,
	})
}
