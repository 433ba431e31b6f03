package location

import (
	"context"
	"time"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

// Static implements ports.PositionService with a fixed coordinate. Useful
// for demos and deterministic tests.
type Static struct {
	Coordinate domain.Coordinate
	Accuracy   float64
}

// NewStatic creates a provider that always reports the same position.
func NewStatic(lat, lng float64) *Static {
	return &Static{
		Coordinate: domain.Coordinate{Latitude: lat, Longitude: lng},
		Accuracy:   5.0,
	}
}

// CurrentPosition returns the fixed position stamped with the current time.
func (s *Static) CurrentPosition(ctx context.Context, hint ports.AccuracyHint) (domain.PositionSample, error) {
	accuracy := s.Accuracy
	return domain.PositionSample{
		Coordinate:        s.Coordinate,
		AccuracyMeters:    &accuracy,
		CapturedAtEpochMs: time.Now().UnixMilli(),
	}, nil
}
