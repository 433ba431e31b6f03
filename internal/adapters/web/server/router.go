package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GeoTuxMan/MyGeoLocation/internal/adapters/web/middleware"
)

// SetupRoutes builds the presentation API.
func SetupRoutes(s *Server) http.Handler {
	r := mux.NewRouter()

	// Repeated acquire taps should not hammer the positioning hardware.
	acquireLimiter := middleware.NewIPLimiter(30, 5)
	limitAcquire := middleware.RateLimitMiddleware(acquireLimiter)

	// Screen state & acquisition
	r.HandleFunc("/api/screen", s.ScreenHandler.HandleSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/api/permission/request", s.ScreenHandler.HandleRequestPermission).Methods(http.MethodPost)
	r.Handle("/api/position/acquire", limitAcquire(http.HandlerFunc(s.ScreenHandler.HandleAcquire))).Methods(http.MethodPost)
	r.HandleFunc("/api/position/consume", s.ScreenHandler.HandleConsumeOutcome).Methods(http.MethodPost)
	r.HandleFunc("/api/position/reset", s.ScreenHandler.HandleReset).Methods(http.MethodPost)

	// Viewport
	r.HandleFunc("/api/viewport/zoom-in", s.ViewportHandler.HandleZoomIn).Methods(http.MethodPost)
	r.HandleFunc("/api/viewport/zoom-out", s.ViewportHandler.HandleZoomOut).Methods(http.MethodPost)
	r.HandleFunc("/api/viewport/center", s.ViewportHandler.HandleCenter).Methods(http.MethodPost)
	r.HandleFunc("/api/viewport/reset", s.ViewportHandler.HandleReset).Methods(http.MethodPost)

	// Display mode
	r.HandleFunc("/api/display/map-type", s.DisplayHandler.HandleToggleMapType).Methods(http.MethodPost)
	r.HandleFunc("/api/display/details/show", s.DisplayHandler.HandleShowDetails).Methods(http.MethodPost)
	r.HandleFunc("/api/display/details/hide", s.DisplayHandler.HandleHideDetails).Methods(http.MethodPost)

	// Presentation stream
	r.HandleFunc("/ws", s.WSManager.HandleWebSocket)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
