package location

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

var constanta = domain.Coordinate{Latitude: 44.1765, Longitude: 28.6520}

func TestSimulator_PermissionOutcomes(t *testing.T) {
	granted, err := NewSimulator(SimulatorConfig{Base: constanta}).
		RequestForegroundPermission(context.Background())
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = NewSimulator(SimulatorConfig{Base: constanta, DenyPermission: true}).
		RequestForegroundPermission(context.Background())
	require.NoError(t, err)
	assert.False(t, granted)

	_, err = NewSimulator(SimulatorConfig{Base: constanta, PermissionError: true}).
		RequestForegroundPermission(context.Background())
	assert.Error(t, err)
}

func TestSimulator_ProducesFixNearBase(t *testing.T) {
	sim := NewSimulator(SimulatorConfig{Base: constanta, Seed: 1, FixesPerSec: 1000})

	fix, err := sim.CurrentPosition(context.Background(), ports.AccuracyHigh)
	require.NoError(t, err)

	assert.NoError(t, fix.Coordinate.Validate())
	assert.InDelta(t, constanta.Latitude, fix.Coordinate.Latitude, 0.01)
	assert.InDelta(t, constanta.Longitude, fix.Coordinate.Longitude, 0.01)
	require.NotNil(t, fix.AccuracyMeters)
	assert.Less(t, *fix.AccuracyMeters, 10.0, "high accuracy hint must tighten the fix")
	assert.NotZero(t, fix.CapturedAtEpochMs)
}

func TestSimulator_AlwaysFailing(t *testing.T) {
	sim := NewSimulator(SimulatorConfig{Base: constanta, FailRate: 1, Seed: 1, FixesPerSec: 1000})

	_, err := sim.CurrentPosition(context.Background(), ports.AccuracyHigh)
	assert.ErrorIs(t, err, domain.ErrPositionUnavailable)
}

func TestSimulator_RespectsContextDuringLatency(t *testing.T) {
	sim := NewSimulator(SimulatorConfig{Base: constanta, FixLatency: time.Minute, FixesPerSec: 1000})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := sim.CurrentPosition(ctx, ports.AccuracyHigh)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStatic_FixedPosition(t *testing.T) {
	static := NewStatic(44.18, 28.65)

	first, err := static.CurrentPosition(context.Background(), ports.AccuracyHigh)
	require.NoError(t, err)
	second, err := static.CurrentPosition(context.Background(), ports.AccuracyLow)
	require.NoError(t, err)

	assert.Equal(t, first.Coordinate, second.Coordinate)
	assert.Equal(t, 44.18, first.Coordinate.Latitude)
	require.NotNil(t, first.AccuracyMeters)
	assert.Equal(t, 5.0, *first.AccuracyMeters)
}
