// Package permission tracks whether location access has been granted and
// gates every position-fetching operation on that state.
package permission

import (
	"context"
	"log/slog"
	"sync"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
	"github.com/GeoTuxMan/MyGeoLocation/internal/telemetry"
)

// Gatekeeper caches the permission state and drives the platform prompt.
// The state starts Unknown, is set by the first Request (invoked once
// automatically at startup) and may be re-queried on demand.
type Gatekeeper struct {
	service ports.PermissionService

	mu         sync.RWMutex
	state      domain.PermissionState
	serviceErr bool
}

// NewGatekeeper creates a gatekeeper around the platform permission service.
func NewGatekeeper(service ports.PermissionService) *Gatekeeper {
	return &Gatekeeper{
		service: service,
		state:   domain.PermissionUnknown,
	}
}

// Request runs the platform permission prompt and caches the result.
// A collaborator failure (as opposed to a user denial) is reported as Denied
// externally; the distinction is only logged and counted. This mirrors the
// observed behavior where both read as a single "denied" state.
func (g *Gatekeeper) Request(ctx context.Context) domain.PermissionState {
	granted, err := g.service.RequestForegroundPermission(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case err != nil:
		g.state = domain.PermissionDenied
		g.serviceErr = true
		slog.Warn("permission service error, treating as denied", "error", err)
		telemetry.PermissionRequests.WithLabelValues("error").Inc()
	case granted:
		g.state = domain.PermissionGranted
		g.serviceErr = false
		telemetry.PermissionRequests.WithLabelValues("granted").Inc()
	default:
		g.state = domain.PermissionDenied
		g.serviceErr = false
		telemetry.PermissionRequests.WithLabelValues("denied").Inc()
	}

	return g.state
}

// CurrentState returns the cached permission state.
func (g *Gatekeeper) CurrentState() domain.PermissionState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// HadServiceError reports whether the last denial came from a collaborator
// failure rather than the user. Internal diagnostic only.
func (g *Gatekeeper) HadServiceError() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.serviceErr
}
