// Package location provides in-process implementations of the device
// permission and positioning collaborators, used in simulation mode and in
// tests. Real device bridges satisfy the same ports.
package location

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

// SimulatorConfig shapes the simulated device behavior.
type SimulatorConfig struct {
	// Base is the coordinate the simulated device wanders around.
	Base domain.Coordinate

	// DenyPermission makes the permission prompt resolve as a user denial.
	DenyPermission bool

	// PermissionError makes the permission service itself fail, which the
	// gatekeeper must report as denied while logging the difference.
	PermissionError bool

	// FailRate is the probability in [0,1] that a position request fails.
	FailRate float64

	// FixLatency delays every collaborator response, modeling GPS warm-up.
	FixLatency time.Duration

	// FixesPerSec throttles how often the simulated receiver can produce a
	// fix. Zero means 2/s.
	FixesPerSec float64

	// Seed makes the jitter walk reproducible in tests. Zero seeds from the
	// clock.
	Seed int64
}

// Simulator implements ports.PermissionService and ports.PositionService.
type Simulator struct {
	cfg     SimulatorConfig
	limiter *rate.Limiter

	mu   sync.Mutex
	rand *rand.Rand
	last domain.Coordinate
}

// NewSimulator creates a simulated device around the base coordinate.
func NewSimulator(cfg SimulatorConfig) *Simulator {
	perSec := cfg.FixesPerSec
	if perSec <= 0 {
		perSec = 2
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Simulator{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(perSec), 1),
		rand:    rand.New(rand.NewSource(seed)),
		last:    cfg.Base,
	}
}

// RequestForegroundPermission resolves the simulated permission prompt.
func (s *Simulator) RequestForegroundPermission(ctx context.Context) (bool, error) {
	if err := s.sleep(ctx); err != nil {
		return false, err
	}
	if s.cfg.PermissionError {
		return false, fmt.Errorf("permission service unavailable")
	}
	return !s.cfg.DenyPermission, nil
}

// CurrentPosition produces a simulated fix: the device random-walks around
// the base coordinate with accuracy depending on the requested hint.
func (s *Simulator) CurrentPosition(ctx context.Context, hint ports.AccuracyHint) (domain.PositionSample, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.PositionSample{}, err
	}
	if err := s.sleep(ctx); err != nil {
		return domain.PositionSample{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.FailRate > 0 && s.rand.Float64() < s.cfg.FailRate {
		return domain.PositionSample{}, domain.ErrPositionUnavailable
	}

	// Jitter walk around the base, a couple of dozen meters per fix.
	s.last.Latitude += (s.rand.Float64() - 0.5) * 0.0004
	s.last.Longitude += (s.rand.Float64() - 0.5) * 0.0004

	accuracy := 25 - 20*s.rand.Float64()
	if hint == ports.AccuracyHigh {
		accuracy = 3 + 4*s.rand.Float64()
	}
	altitude := 20 + 10*s.rand.Float64()
	speed := 1.5 * s.rand.Float64()
	heading := 360 * s.rand.Float64()

	return domain.PositionSample{
		Coordinate:        s.last,
		AltitudeMeters:    &altitude,
		AccuracyMeters:    &accuracy,
		SpeedMps:          &speed,
		HeadingDegrees:    &heading,
		CapturedAtEpochMs: time.Now().UnixMilli(),
	}, nil
}

func (s *Simulator) sleep(ctx context.Context) error {
	if s.cfg.FixLatency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.cfg.FixLatency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
