package domain

import (
	"fmt"
	"math"
)

// MinZoom is the lowest camera zoom level the viewport will ever hold.
// There is deliberately no maximum: the original screen never clamped the
// upper bound, and that behavior is kept as-is (flagged to stakeholders as a
// likely oversight rather than silently fixed here).
const MinZoom = 1.0

// Coordinate is a WGS84 point on the map.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate evaluates the coordinate against WGS84 bounds.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %f", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %f", c.Longitude)
	}
	return nil
}

// Region is a viewport expressed as a center plus angular spans.
type Region struct {
	Center         Coordinate `json:"center"`
	LatitudeDelta  float64    `json:"latitude_delta"`
	LongitudeDelta float64    `json:"longitude_delta"`
}

// Validate checks that the region has a valid center and positive spans.
func (r Region) Validate() error {
	if err := r.Center.Validate(); err != nil {
		return err
	}
	if r.LatitudeDelta <= 0 || r.LongitudeDelta <= 0 {
		return fmt.Errorf("region spans must be positive: %f x %f", r.LatitudeDelta, r.LongitudeDelta)
	}
	return nil
}

// Camera converts the region to the camera representation. The zoom level is
// derived from the longitudinal span (the horizontal extent is what a tile
// renderer keys zoom off).
func (r Region) Camera() Camera {
	return Camera{
		Center: r.Center,
		Zoom:   ClampZoom(math.Log2(360 / r.LongitudeDelta)),
	}
}

// Camera is a viewport expressed as a center plus zoom level.
type Camera struct {
	Center Coordinate `json:"center"`
	Zoom   float64    `json:"zoom"`
}

// Region converts the camera back to a region. Spans come out square; the
// rendering surface applies its own aspect ratio when framing.
func (c Camera) Region() Region {
	span := 360 / math.Exp2(c.Zoom)
	return Region{
		Center:         c.Center,
		LatitudeDelta:  span,
		LongitudeDelta: span,
	}
}

// ClampZoom floors the zoom level at MinZoom. No upper clamp, see MinZoom.
func ClampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	return zoom
}

// RegionAround builds a region of the given square span centered on a point.
func RegionAround(center Coordinate, span float64) Region {
	return Region{
		Center:         center,
		LatitudeDelta:  span,
		LongitudeDelta: span,
	}
}

// Landmark is the fixed point of interest always shown on the map,
// independent of device state. Injected from configuration at startup.
type Landmark struct {
	Name          string     `json:"name"`
	Coordinate    Coordinate `json:"coordinate"`
	DefaultRegion Region     `json:"default_region"`
}
