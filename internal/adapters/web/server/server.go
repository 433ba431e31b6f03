package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/GeoTuxMan/MyGeoLocation/internal/adapters/web/handlers"
	"github.com/GeoTuxMan/MyGeoLocation/internal/adapters/web/websocket"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

// Server handles HTTP and WebSocket connections for the presentation layer.
type Server struct {
	Addr    string
	Service ports.ScreenService

	WSManager       *websocket.WSManager
	ScreenHandler   *handlers.ScreenHandler
	ViewportHandler *handlers.ViewportHandler
	DisplayHandler  *handlers.DisplayHandler

	srv *http.Server
}

// NewServer creates a new web server around the screen service.
func NewServer(addr string, service ports.ScreenService) *Server {
	return &Server{
		Addr:    addr,
		Service: service,

		WSManager:       websocket.NewWSManager(service),
		ScreenHandler:   handlers.NewScreenHandler(service),
		ViewportHandler: handlers.NewViewportHandler(service),
		DisplayHandler:  handlers.NewDisplayHandler(service),
	}
}

// Run starts the server and the snapshot broadcaster.
func (s *Server) Run(ctx context.Context) error {
	s.WSManager.Start(ctx)

	handler := SetupRoutes(s)

	// Instrument with OpenTelemetry; the handler name becomes the span name.
	instrumentedHandler := otelhttp.NewHandler(handler, "mygeolocation-server")

	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           instrumentedHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		slog.Info("web server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("web server shutdown error", "error", err)
		}
	}()

	slog.Info("web server listening", "addr", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
