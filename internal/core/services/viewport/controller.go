// Package viewport owns the current map viewport and the zoom, recenter and
// reset operations on it. The rendering surface stays the sole source of
// truth for continuous zoom; zoom operations read the camera back from the
// surface instead of caching a zoom level here, avoiding drift between the
// displayed and the modeled viewport.
package viewport

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
	"github.com/GeoTuxMan/MyGeoLocation/internal/telemetry"
)

const (
	// FocusSpan is the angular span used to frame a position at street level.
	FocusSpan = 0.01

	zoomStep          = 1.0
	zoomAnimation     = 300 * time.Millisecond
	transferAnimation = 1000 * time.Millisecond
)

// Controller owns the viewport. All mutations to it go through here; the
// rendering surface is the sole consumer.
type Controller struct {
	surface   ports.RenderingSurface
	positions ports.PositionReader
	landmark  domain.Landmark

	mu      sync.RWMutex
	current domain.Region
}

// NewController creates a viewport controller anchored on the landmark's
// default region.
func NewController(surface ports.RenderingSurface, positions ports.PositionReader, landmark domain.Landmark) *Controller {
	return &Controller{
		surface:   surface,
		positions: positions,
		landmark:  landmark,
		current:   landmark.DefaultRegion,
	}
}

// SetViewport assigns the viewport immediately, without animation. Used for
// the initial render.
func (c *Controller) SetViewport(r domain.Region) {
	c.mu.Lock()
	c.current = r
	c.mu.Unlock()

	c.surface.SetRegion(r)
}

// AnimateTo requests an animated transition on the rendering surface. The
// call does not block and does not report completion back into this core.
func (c *Controller) AnimateTo(r domain.Region, duration time.Duration) {
	c.mu.Lock()
	c.current = r
	c.mu.Unlock()

	c.surface.AnimateToRegion(r, duration)
}

// ZoomIn steps the camera zoom up by one level.
func (c *Controller) ZoomIn(ctx context.Context) {
	c.zoomBy(ctx, zoomStep)
	telemetry.ViewportOps.WithLabelValues("zoom_in").Inc()
}

// ZoomOut steps the camera zoom down by one level, clamped at the floor.
func (c *Controller) ZoomOut(ctx context.Context) {
	c.zoomBy(ctx, -zoomStep)
	telemetry.ViewportOps.WithLabelValues("zoom_out").Inc()
}

// zoomBy reads the live camera, applies the delta and animates. A failed
// camera read (surface unmounted) is an expected transient condition and is
// absorbed as a silent no-op. The zoom is floored at domain.MinZoom; there
// is intentionally no ceiling (see domain.MinZoom).
func (c *Controller) zoomBy(ctx context.Context, delta float64) {
	cam, err := c.surface.CurrentCamera(ctx)
	if err != nil {
		slog.Debug("camera read failed, skipping zoom", "error", err)
		telemetry.ViewportReadFailures.Inc()
		return
	}

	cam.Zoom = domain.ClampZoom(cam.Zoom + delta)

	c.mu.Lock()
	c.current = cam.Region()
	c.mu.Unlock()

	c.surface.AnimateToCamera(cam, zoomAnimation)
}

// FocusOn animates to a tight, street-level viewport around a coordinate.
// Invoked by the acquisition controller after a successful fix.
func (c *Controller) FocusOn(coord domain.Coordinate) {
	c.AnimateTo(domain.RegionAround(coord, FocusSpan), transferAnimation)
}

// CenterOnLastPosition re-frames the last acquired position. No-op while no
// sample exists.
func (c *Controller) CenterOnLastPosition() {
	sample := c.positions.Sample()
	if sample == nil {
		return
	}
	c.FocusOn(sample.Coordinate)
	telemetry.ViewportOps.WithLabelValues("center").Inc()
}

// ResetToDefault animates back to the landmark's default viewport.
func (c *Controller) ResetToDefault() {
	c.AnimateTo(c.landmark.DefaultRegion, transferAnimation)
	telemetry.ViewportOps.WithLabelValues("reset").Inc()
}

// Current returns the modeled viewport.
func (c *Controller) Current() domain.Region {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}
