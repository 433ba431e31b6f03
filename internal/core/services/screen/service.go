// Package screen composes the permission gatekeeper, the acquisition and
// viewport controllers and the display state into the single service the
// presentation layer talks to. It acts as the facade for the whole screen
// core and publishes an atomic snapshot to observers after every mutation.
package screen

import (
	"context"
	"log/slog"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/services/acquisition"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/services/display"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/services/permission"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/services/viewport"
)

// Service implements ports.ScreenService.
type Service struct {
	gatekeeper  *permission.Gatekeeper
	acquisition *acquisition.Controller
	viewport    *viewport.Controller
	display     *display.State
	subject     *Subject
	landmark    domain.Landmark
}

// New wires the screen core together around its two collaborators and the
// rendering surface, and performs the initial non-animated render of the
// landmark's default viewport.
func New(
	permissions ports.PermissionService,
	positions ports.PositionService,
	surface ports.RenderingSurface,
	landmark domain.Landmark,
) *Service {
	gatekeeper := permission.NewGatekeeper(permissions)
	acq := acquisition.NewController(gatekeeper, positions)
	vp := viewport.NewController(surface, acq, landmark)
	disp := display.NewState(acq)

	s := &Service{
		gatekeeper:  gatekeeper,
		acquisition: acq,
		viewport:    vp,
		display:     disp,
		subject:     NewSubject(),
		landmark:    landmark,
	}

	acq.SetViewportDirector(vp)
	acq.SetOnChange(s.publish)

	vp.SetViewport(landmark.DefaultRegion)
	return s
}

// AddObserver registers a presentation observer.
func (s *Service) AddObserver(obs ports.ScreenObserver) {
	s.subject.AddObserver(obs)
}

// Snapshot assembles the read-only state exposed to the presentation layer.
func (s *Service) Snapshot() domain.ScreenSnapshot {
	return domain.ScreenSnapshot{
		Permission:  s.gatekeeper.CurrentState(),
		Acquisition: s.acquisition.State(),
		Position:    s.acquisition.Sample(),
		Viewport:    s.viewport.Current(),
		Display:     s.display.Mode(),
		Landmark:    s.landmark,
		Notice:      s.acquisition.Notice(),
	}
}

// RequestPermission runs the gatekeeper prompt.
func (s *Service) RequestPermission(ctx context.Context) domain.PermissionState {
	state := s.gatekeeper.Request(ctx)
	if s.gatekeeper.HadServiceError() {
		// Logged apart from a user denial; externally both read as denied.
		slog.Warn("permission request resolved through a service error")
	}
	s.publish(ctx)
	return state
}

// AcquirePosition runs a position acquisition. The controller publishes its
// own intermediate and terminal states.
func (s *Service) AcquirePosition(ctx context.Context) error {
	return s.acquisition.Acquire(ctx)
}

// ConsumeOutcome acknowledges a terminal acquisition outcome.
func (s *Service) ConsumeOutcome(ctx context.Context) domain.AcquisitionState {
	outcome := s.acquisition.ConsumeOutcome()
	if outcome.Terminal() {
		s.publish(ctx)
	}
	return outcome
}

// ResetPosition clears the sample and acquisition state, hides the details
// panel and animates back to the landmark's default viewport.
func (s *Service) ResetPosition(ctx context.Context) {
	s.acquisition.Reset()
	s.display.HideDetails()
	s.viewport.ResetToDefault()
	s.publish(ctx)
}

// ZoomIn steps the camera zoom up.
func (s *Service) ZoomIn(ctx context.Context) {
	s.viewport.ZoomIn(ctx)
	s.publish(ctx)
}

// ZoomOut steps the camera zoom down.
func (s *Service) ZoomOut(ctx context.Context) {
	s.viewport.ZoomOut(ctx)
	s.publish(ctx)
}

// CenterOnLastPosition re-frames the last acquired position, if any.
func (s *Service) CenterOnLastPosition(ctx context.Context) {
	s.viewport.CenterOnLastPosition()
	s.publish(ctx)
}

// ResetViewport animates back to the landmark's default viewport.
func (s *Service) ResetViewport(ctx context.Context) {
	s.viewport.ResetToDefault()
	s.publish(ctx)
}

// ToggleMapType flips the basemap.
func (s *Service) ToggleMapType(ctx context.Context) {
	s.display.ToggleMapType()
	s.publish(ctx)
}

// ShowDetails opens the details panel when a sample exists.
func (s *Service) ShowDetails(ctx context.Context) bool {
	shown := s.display.ShowDetails()
	if shown {
		s.publish(ctx)
	}
	return shown
}

// HideDetails closes the details panel.
func (s *Service) HideDetails(ctx context.Context) {
	s.display.HideDetails()
	s.publish(ctx)
}

func (s *Service) publish(ctx context.Context) {
	s.subject.Notify(ctx, s.Snapshot())
}
