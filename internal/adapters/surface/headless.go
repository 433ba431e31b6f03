// Package surface provides an in-process rendering surface. The real map
// view lives in the presentation client; this adapter stands in for it on
// the core's side of the contract, holding the camera the clients should be
// showing.
package surface

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
)

// Headless holds the current camera and absorbs animation requests by
// adopting the target immediately. The requested duration is recorded so
// presentation clients can interpolate on their side.
type Headless struct {
	mu           sync.RWMutex
	camera       domain.Camera
	mounted      bool
	lastDuration time.Duration
}

// NewHeadless creates an unmounted surface. Camera reads fail until the
// first viewport assignment mounts it.
func NewHeadless() *Headless {
	return &Headless{}
}

// SetRegion assigns the viewport immediately and mounts the surface.
func (h *Headless) SetRegion(r domain.Region) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.camera = r.Camera()
	h.mounted = true
	h.lastDuration = 0
}

// AnimateToRegion adopts the target region. Fire-and-forget: completion is
// never reported back.
func (h *Headless) AnimateToRegion(r domain.Region, duration time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.camera = r.Camera()
	h.mounted = true
	h.lastDuration = duration
}

// AnimateToCamera adopts the target camera.
func (h *Headless) AnimateToCamera(c domain.Camera, duration time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.camera = c
	h.mounted = true
	h.lastDuration = duration

	slog.Debug("camera animation", "zoom", c.Zoom, "duration", duration)
}

// CurrentCamera returns the camera, or domain.ErrSurfaceNotReady while the
// surface is unmounted.
func (h *Headless) CurrentCamera(ctx context.Context) (domain.Camera, error) {
	if err := ctx.Err(); err != nil {
		return domain.Camera{}, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.mounted {
		return domain.Camera{}, domain.ErrSurfaceNotReady
	}
	return h.camera, nil
}

// LastAnimationDuration returns the duration requested by the most recent
// animation, zero after an immediate assignment.
func (h *Headless) LastAnimationDuration() time.Duration {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastDuration
}
