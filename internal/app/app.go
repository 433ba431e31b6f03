package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GeoTuxMan/MyGeoLocation/internal/adapters/location"
	"github.com/GeoTuxMan/MyGeoLocation/internal/adapters/surface"
	webserver "github.com/GeoTuxMan/MyGeoLocation/internal/adapters/web/server"
	"github.com/GeoTuxMan/MyGeoLocation/internal/config"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/services/screen"
	"github.com/GeoTuxMan/MyGeoLocation/internal/telemetry"
)

// Application holds the core components of the application.
// It acts as the Facade for the entire system, orchestrating the screen core,
// the simulated device and the presentation server.
type Application struct {
	Config        *config.Config
	ScreenService *screen.Service
	WebServer     *webserver.Server

	device  *location.Simulator
	surface *surface.Headless
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	if err := app.bootstrap(); err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

// bootstrap orchestrates the initialization sequence.
func (app *Application) bootstrap() error {
	// 1. Foundation & Infrastructure
	telemetry.InitMetrics()

	landmark := app.landmark()
	if err := landmark.DefaultRegion.Validate(); err != nil {
		return fmt.Errorf("invalid landmark region: %w", err)
	}

	// 2. Device collaborators
	app.device = location.NewSimulator(location.SimulatorConfig{
		Base:            landmark.Coordinate,
		DenyPermission:  app.Config.DenyPermission,
		PermissionError: app.Config.PermissionError,
		FailRate:        app.Config.FailRate,
		FixLatency:      app.Config.FixLatency,
		FixesPerSec:     app.Config.FixesPerSec,
	})
	app.surface = surface.NewHeadless()

	// 3. Screen core
	app.ScreenService = screen.New(app.device, app.device, app.surface, landmark)

	// 4. Presentation server, subscribed to every committed state change
	app.WebServer = webserver.NewServer(app.Config.Addr, app.ScreenService)
	app.ScreenService.AddObserver(app.WebServer.WSManager)

	return nil
}

func (app *Application) landmark() domain.Landmark {
	center := domain.Coordinate{
		Latitude:  app.Config.LandmarkLat,
		Longitude: app.Config.LandmarkLng,
	}
	return domain.Landmark{
		Name:       app.Config.LandmarkName,
		Coordinate: center,
		DefaultRegion: domain.Region{
			Center:         center,
			LatitudeDelta:  app.Config.LatitudeDelta,
			LongitudeDelta: app.Config.LongitudeDelta,
		},
	}
}

// Run starts the application components and manages their execution lifecycle.
func (app *Application) Run(ctx context.Context) error {
	slog.Info("Starting MyGeoLocation components...")

	// The permission prompt fires once at startup; the result only changes
	// what later acquisitions are allowed to do.
	state := app.ScreenService.RequestPermission(ctx)
	slog.Info("startup permission prompt resolved", "state", state)

	errChan := make(chan error, 1)
	go func() {
		if err := app.WebServer.Run(ctx); err != nil {
			errChan <- fmt.Errorf("web server error: %w", err)
		}
	}()

	slog.Info("MyGeoLocation Ready. Press Ctrl+C to terminate.")

	select {
	case <-ctx.Done():
		slog.Info("Termination signal received")
		return nil
	case err := <-errChan:
		return err
	}
}
