package ports

import (
	"context"
	"time"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
)

// AccuracyHint tells the positioning service how hard to work for a fix.
type AccuracyHint string

const (
	AccuracyLow      AccuracyHint = "low"
	AccuracyBalanced AccuracyHint = "balanced"
	AccuracyHigh     AccuracyHint = "high"
)

// PermissionService is the platform collaborator that prompts the user for
// foreground location access. Requesting may suspend until the user answers.
type PermissionService interface {
	RequestForegroundPermission(ctx context.Context) (granted bool, err error)
}

// PositionService is the device collaborator that produces location fixes.
// It may fail with permission-denied, location-unavailable, or a timeout;
// this core treats all failures alike.
type PositionService interface {
	CurrentPosition(ctx context.Context, hint AccuracyHint) (domain.PositionSample, error)
}

// RenderingSurface is the map view consumed through a narrow contract:
// set viewport, read current camera, animate to viewport/camera. Animations
// are fire-and-forget and never report completion back into this core.
type RenderingSurface interface {
	// SetRegion assigns the viewport immediately, without animation.
	SetRegion(r domain.Region)
	AnimateToRegion(r domain.Region, duration time.Duration)
	AnimateToCamera(c domain.Camera, duration time.Duration)

	// CurrentCamera reads the camera asynchronously. The read fails with
	// domain.ErrSurfaceNotReady while the surface is unmounted.
	CurrentCamera(ctx context.Context) (domain.Camera, error)
}

// ScreenObserver is notified synchronously after every atomic state
// mutation. Observers must be fast or queue internally.
type ScreenObserver interface {
	OnScreenUpdated(ctx context.Context, snapshot domain.ScreenSnapshot)
}

// ScreenService is the single surface the presentation layer talks to.
type ScreenService interface {
	Snapshot() domain.ScreenSnapshot
	AddObserver(obs ScreenObserver)

	// RequestPermission runs the gatekeeper prompt and returns the resulting
	// externally observable state (a collaborator error reads as denied).
	RequestPermission(ctx context.Context) domain.PermissionState

	// AcquirePosition fetches the current device position. Returns
	// domain.ErrPermissionRequired without touching the collaborator when
	// permission is not granted, and domain.ErrAcquisitionInFlight when an
	// acquisition is already pending.
	AcquirePosition(ctx context.Context) error

	// ConsumeOutcome acknowledges a terminal acquisition outcome, returning
	// it and resetting the acquisition state to idle.
	ConsumeOutcome(ctx context.Context) domain.AcquisitionState

	// ResetPosition clears the stored sample, returns the acquisition state
	// to idle, hides the details panel and animates back to the landmark's
	// default viewport.
	ResetPosition(ctx context.Context)

	ZoomIn(ctx context.Context)
	ZoomOut(ctx context.Context)
	CenterOnLastPosition(ctx context.Context)
	ResetViewport(ctx context.Context)

	ToggleMapType(ctx context.Context)
	// ShowDetails is a no-op (returning false) while no position sample exists.
	ShowDetails(ctx context.Context) bool
	HideDetails(ctx context.Context)
}

// PermissionGate is the synchronous read side of the permission gatekeeper,
// consumed by the acquisition controller.
type PermissionGate interface {
	CurrentState() domain.PermissionState
}

// PositionReader exposes the last stored sample to components that only read
// it (viewport centering, details panel gating). Mutation stays with the
// acquisition controller.
type PositionReader interface {
	Sample() *domain.PositionSample
}
