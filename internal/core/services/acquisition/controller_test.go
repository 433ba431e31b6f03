package acquisition

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

type stubGate struct {
	state domain.PermissionState
}

func (g *stubGate) CurrentState() domain.PermissionState { return g.state }

// fakePositionService lets tests control when and how a fix resolves.
type fakePositionService struct {
	mu      sync.Mutex
	calls   int
	results chan fixResult
}

type fixResult struct {
	sample domain.PositionSample
	err    error
}

func newFakePositionService() *fakePositionService {
	return &fakePositionService{results: make(chan fixResult, 4)}
}

func (f *fakePositionService) CurrentPosition(ctx context.Context, hint ports.AccuracyHint) (domain.PositionSample, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	select {
	case r := <-f.results:
		return r.sample, r.err
	case <-ctx.Done():
		return domain.PositionSample{}, ctx.Err()
	}
}

func (f *fakePositionService) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingDirector struct {
	mu      sync.Mutex
	focused []domain.Coordinate
}

func (d *recordingDirector) FocusOn(c domain.Coordinate) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.focused = append(d.focused, c)
}

func (d *recordingDirector) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.focused)
}

func constantaFix() domain.PositionSample {
	acc := 5.0
	return domain.PositionSample{
		Coordinate:        domain.Coordinate{Latitude: 44.18, Longitude: 28.65},
		AccuracyMeters:    &acc,
		CapturedAtEpochMs: 1700000000000,
	}
}

func TestAcquire_PermissionRequired(t *testing.T) {
	for _, state := range []domain.PermissionState{domain.PermissionUnknown, domain.PermissionDenied} {
		svc := newFakePositionService()
		ctrl := NewController(&stubGate{state: state}, svc)

		err := ctrl.Acquire(context.Background())

		assert.ErrorIs(t, err, domain.ErrPermissionRequired)
		assert.Equal(t, 0, svc.callCount(), "collaborator must not be called without permission")
		assert.Equal(t, domain.AcquisitionIdle, ctrl.State().Phase)
		assert.Nil(t, ctrl.Sample())
	}
}

func TestAcquire_Success(t *testing.T) {
	svc := newFakePositionService()
	svc.results <- fixResult{sample: constantaFix()}

	director := &recordingDirector{}
	ctrl := NewController(&stubGate{state: domain.PermissionGranted}, svc)
	ctrl.SetViewportDirector(director)

	err := ctrl.Acquire(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.AcquisitionSucceeded, ctrl.State().Phase)
	assert.Empty(t, ctrl.Notice())

	sample := ctrl.Sample()
	require.NotNil(t, sample)
	assert.Equal(t, 44.18, sample.Coordinate.Latitude)
	assert.Equal(t, 28.65, sample.Coordinate.Longitude)
	require.NotNil(t, sample.AccuracyMeters)
	assert.Equal(t, 5.0, *sample.AccuracyMeters)
	assert.Equal(t, int64(1700000000000), sample.CapturedAtEpochMs)

	require.Equal(t, 1, director.count())
	assert.Equal(t, sample.Coordinate, director.focused[0])
}

func TestAcquire_Timeout(t *testing.T) {
	svc := newFakePositionService()
	svc.results <- fixResult{err: context.DeadlineExceeded}

	director := &recordingDirector{}
	ctrl := NewController(&stubGate{state: domain.PermissionGranted}, svc)
	ctrl.SetViewportDirector(director)

	err := ctrl.Acquire(context.Background())

	assert.ErrorIs(t, err, domain.ErrPositionUnavailable)
	assert.Equal(t, domain.AcquisitionFailed, ctrl.State().Phase)
	assert.Equal(t, "location request timed out", ctrl.State().Reason)
	assert.Equal(t, "location request timed out", ctrl.Notice())
	assert.Nil(t, ctrl.Sample(), "failure must not mutate the stored sample")
	assert.Equal(t, 0, director.count(), "failure must not move the viewport")
}

func TestAcquire_RejectsSecondCallWhileInFlight(t *testing.T) {
	svc := newFakePositionService()
	ctrl := NewController(&stubGate{state: domain.PermissionGranted}, svc)

	done := make(chan error, 1)
	go func() { done <- ctrl.Acquire(context.Background()) }()

	waitForPhase(t, ctrl, domain.AcquisitionInFlight)

	err := ctrl.Acquire(context.Background())
	assert.ErrorIs(t, err, domain.ErrAcquisitionInFlight)

	svc.results <- fixResult{sample: constantaFix()}
	require.NoError(t, <-done)

	// Exactly one resolved call mutated state.
	assert.Equal(t, 1, svc.callCount())
	require.NotNil(t, ctrl.Sample())
	assert.Equal(t, domain.AcquisitionSucceeded, ctrl.State().Phase)
}

func TestReset_DiscardsStaleInFlightResult(t *testing.T) {
	svc := newFakePositionService()
	ctrl := NewController(&stubGate{state: domain.PermissionGranted}, svc)

	done := make(chan error, 1)
	go func() { done <- ctrl.Acquire(context.Background()) }()
	waitForPhase(t, ctrl, domain.AcquisitionInFlight)

	ctrl.Reset()

	// The superseded request resolves after the reset; its outcome must be
	// dropped on the floor.
	svc.results <- fixResult{sample: constantaFix()}
	assert.ErrorIs(t, <-done, domain.ErrAcquisitionSuperseded)

	assert.Nil(t, ctrl.Sample())
	assert.Equal(t, domain.AcquisitionIdle, ctrl.State().Phase)
	assert.Empty(t, ctrl.Notice())
}

// sequencedPositionService hands each call its own resolution channel so a
// test can resolve specific overlapping calls in a chosen order.
type sequencedPositionService struct {
	calls chan chan fixResult
}

func newSequencedPositionService() *sequencedPositionService {
	return &sequencedPositionService{calls: make(chan chan fixResult, 4)}
}

func (s *sequencedPositionService) CurrentPosition(ctx context.Context, hint ports.AccuracyHint) (domain.PositionSample, error) {
	result := make(chan fixResult, 1)
	s.calls <- result
	select {
	case r := <-result:
		return r.sample, r.err
	case <-ctx.Done():
		return domain.PositionSample{}, ctx.Err()
	}
}

func TestReset_ThenReacquire_LateStaleResultLeavesNewRequestInFlight(t *testing.T) {
	svc := newSequencedPositionService()
	ctrl := NewController(&stubGate{state: domain.PermissionGranted}, svc)

	doneFirst := make(chan error, 1)
	go func() { doneFirst <- ctrl.Acquire(context.Background()) }()
	callFirst := <-svc.calls

	ctrl.Reset()

	doneSecond := make(chan error, 1)
	go func() { doneSecond <- ctrl.Acquire(context.Background()) }()
	callSecond := <-svc.calls

	// The pre-reset request resolves late. It must not clear the in-flight
	// flag that now belongs to the second request.
	callFirst <- fixResult{sample: constantaFix()}
	assert.ErrorIs(t, <-doneFirst, domain.ErrAcquisitionSuperseded)
	assert.Nil(t, ctrl.Sample(), "stale result must not mutate state")

	err := ctrl.Acquire(context.Background())
	assert.ErrorIs(t, err, domain.ErrAcquisitionInFlight)
	assert.Empty(t, svc.calls, "rejected call must not reach the collaborator")

	acc := 3.0
	fresh := domain.PositionSample{
		Coordinate:        domain.Coordinate{Latitude: 44.20, Longitude: 28.70},
		AccuracyMeters:    &acc,
		CapturedAtEpochMs: 1700000001000,
	}
	callSecond <- fixResult{sample: fresh}
	require.NoError(t, <-doneSecond)

	sample := ctrl.Sample()
	require.NotNil(t, sample)
	assert.Equal(t, 44.20, sample.Coordinate.Latitude)
	assert.Equal(t, domain.AcquisitionSucceeded, ctrl.State().Phase)
}

func TestReset_ClearsEverything(t *testing.T) {
	svc := newFakePositionService()
	svc.results <- fixResult{sample: constantaFix()}

	ctrl := NewController(&stubGate{state: domain.PermissionGranted}, svc)
	require.NoError(t, ctrl.Acquire(context.Background()))
	require.NotNil(t, ctrl.Sample())

	ctrl.Reset()

	assert.Nil(t, ctrl.Sample())
	assert.Equal(t, domain.AcquisitionIdle, ctrl.State().Phase)
	assert.Empty(t, ctrl.Notice())
}

func TestConsumeOutcome(t *testing.T) {
	svc := newFakePositionService()
	svc.results <- fixResult{err: context.DeadlineExceeded}

	ctrl := NewController(&stubGate{state: domain.PermissionGranted}, svc)
	_ = ctrl.Acquire(context.Background())

	outcome := ctrl.ConsumeOutcome()
	assert.Equal(t, domain.AcquisitionFailed, outcome.Phase)
	assert.Equal(t, domain.AcquisitionIdle, ctrl.State().Phase)

	// Consuming while idle is a no-op.
	again := ctrl.ConsumeOutcome()
	assert.Equal(t, domain.AcquisitionIdle, again.Phase)
}

func TestAcquire_SuccessClearsPreviousNotice(t *testing.T) {
	svc := newFakePositionService()
	svc.results <- fixResult{err: context.DeadlineExceeded}
	svc.results <- fixResult{sample: constantaFix()}

	ctrl := NewController(&stubGate{state: domain.PermissionGranted}, svc)

	_ = ctrl.Acquire(context.Background())
	assert.NotEmpty(t, ctrl.Notice())

	require.NoError(t, ctrl.Acquire(context.Background()))
	assert.Empty(t, ctrl.Notice(), "success must clear the previous notice")
}

func waitForPhase(t *testing.T, ctrl *Controller, phase domain.AcquisitionPhase) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ctrl.State().Phase == phase {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for phase %s", phase)
}
