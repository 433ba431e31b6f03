// Package acquisition drives the asynchronous request for the device's
// current position and owns the sample/state/notice triple that results
// from it.
package acquisition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
	"github.com/GeoTuxMan/MyGeoLocation/internal/telemetry"
)

// ViewportDirector is the slice of the viewport controller the acquisition
// controller needs: framing a freshly acquired coordinate.
type ViewportDirector interface {
	FocusOn(coord domain.Coordinate)
}

// Controller coordinates position acquisition. It enforces at most one
// in-flight request; a second call while one is pending is rejected. A
// generation counter guarantees that a request made stale by Reset can
// never mutate state when it eventually resolves.
type Controller struct {
	gate      ports.PermissionGate
	positions ports.PositionService
	director  ViewportDirector

	// onChange is invoked (outside the lock) after every atomic state
	// mutation so observers see InFlight before the suspension point and
	// the terminal outcome after it.
	onChange func(ctx context.Context)

	mu         sync.RWMutex
	state      domain.AcquisitionState
	sample     *domain.PositionSample
	notice     string
	inFlight   bool
	generation uint64
}

// NewController creates an acquisition controller.
func NewController(gate ports.PermissionGate, positions ports.PositionService) *Controller {
	return &Controller{
		gate:      gate,
		positions: positions,
		state:     domain.AcquisitionState{Phase: domain.AcquisitionIdle},
	}
}

// SetViewportDirector wires the viewport hand-off used on success.
func (c *Controller) SetViewportDirector(d ViewportDirector) {
	c.director = d
}

// SetOnChange wires the post-mutation notification hook.
func (c *Controller) SetOnChange(fn func(ctx context.Context)) {
	c.onChange = fn
}

// Acquire fetches a high-accuracy fix from the positioning collaborator.
//
// Preconditions: permission must be granted, otherwise the collaborator is
// never called and domain.ErrPermissionRequired is returned with the state
// left untouched. While a request is pending, further calls are rejected
// with domain.ErrAcquisitionInFlight.
func (c *Controller) Acquire(ctx context.Context) error {
	if c.gate.CurrentState() != domain.PermissionGranted {
		telemetry.AcquisitionsTotal.WithLabelValues("permission_required").Inc()
		return domain.ErrPermissionRequired
	}

	requestID := uuid.NewString()

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		telemetry.AcquisitionsTotal.WithLabelValues("rejected_in_flight").Inc()
		return domain.ErrAcquisitionInFlight
	}
	c.inFlight = true
	generation := c.generation
	// InFlight is visible synchronously, before any suspension point.
	c.state = domain.AcquisitionState{Phase: domain.AcquisitionInFlight}
	c.mu.Unlock()

	c.notify(ctx)

	ctx, span := otel.Tracer("acquisition").Start(ctx, "AcquirePosition")
	defer span.End()
	span.SetAttributes(attribute.String("request.id", requestID))

	sample, err := c.positions.CurrentPosition(ctx, ports.AccuracyHigh)
	if err == nil {
		err = sample.Coordinate.Validate()
	}

	c.mu.Lock()

	if generation != c.generation {
		// Reset happened while we were suspended; this outcome lost the
		// race and must not mutate state. The in-flight flag is left alone:
		// Reset already cleared it, and it now belongs to whichever request
		// started after the reset.
		c.mu.Unlock()
		slog.Debug("discarding stale acquisition result", "request_id", requestID)
		telemetry.AcquisitionsTotal.WithLabelValues("stale").Inc()
		span.AddEvent("stale result discarded")
		return domain.ErrAcquisitionSuperseded
	}

	c.inFlight = false

	if err != nil {
		reason := failureReason(err)
		c.state = domain.AcquisitionState{Phase: domain.AcquisitionFailed, Reason: reason}
		c.notice = reason
		c.mu.Unlock()

		slog.Warn("position acquisition failed", "request_id", requestID, "reason", reason)
		telemetry.AcquisitionsTotal.WithLabelValues("failed").Inc()
		span.RecordError(err)
		c.notify(ctx)
		return fmt.Errorf("%w: %s", domain.ErrPositionUnavailable, reason)
	}

	stored := sample.Clone()
	c.sample = &stored
	c.state = domain.AcquisitionState{Phase: domain.AcquisitionSucceeded}
	c.notice = ""
	c.mu.Unlock()

	slog.Info("position acquired",
		"request_id", requestID,
		"lat", sample.Coordinate.Latitude,
		"lng", sample.Coordinate.Longitude,
	)
	telemetry.AcquisitionsTotal.WithLabelValues("succeeded").Inc()

	if c.director != nil {
		c.director.FocusOn(sample.Coordinate)
	}
	c.notify(ctx)
	return nil
}

// ConsumeOutcome hands a terminal outcome to the caller and returns the
// acquisition state to idle. A non-terminal state is returned unchanged.
func (c *Controller) ConsumeOutcome() domain.AcquisitionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	outcome := c.state
	if outcome.Terminal() {
		c.state = domain.AcquisitionState{Phase: domain.AcquisitionIdle}
	}
	return outcome
}

// Reset clears the stored sample, the notice and the acquisition state.
// Any request still in flight is made stale and its eventual outcome is
// discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.inFlight = false
	c.sample = nil
	c.notice = ""
	c.state = domain.AcquisitionState{Phase: domain.AcquisitionIdle}
}

// Sample returns a copy of the last stored position, or nil if absent.
func (c *Controller) Sample() *domain.PositionSample {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.sample == nil {
		return nil
	}
	out := c.sample.Clone()
	return &out
}

// State returns the current acquisition state.
func (c *Controller) State() domain.AcquisitionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Notice returns the current user-facing failure message, if any.
func (c *Controller) Notice() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notice
}

func (c *Controller) notify(ctx context.Context) {
	if c.onChange != nil {
		c.onChange(ctx)
	}
}

// failureReason maps collaborator errors to the single human-readable
// notice shown to the user. Timeouts are not special-cased in the state
// machine; they only get a friendlier message.
func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "location request timed out"
	case errors.Is(err, context.Canceled):
		return "location request canceled"
	case errors.Is(err, domain.ErrPositionUnavailable):
		return "current position unavailable"
	default:
		return fmt.Sprintf("could not determine current position: %v", err)
	}
}
