package domain

import "errors"

var (
	// ErrPermissionRequired is returned when an acquisition is attempted
	// without location permission. The collaborator service is never called
	// in that case; the caller should prompt the user instead.
	ErrPermissionRequired = errors.New("location permission required")

	// ErrPermissionDenied means the user declined the permission prompt.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrAcquisitionInFlight is returned when an acquisition is requested
	// while another one is still pending. At most one in-flight request is
	// allowed to mutate state.
	ErrAcquisitionInFlight = errors.New("position acquisition already in flight")

	// ErrAcquisitionSuperseded is returned when an acquisition resolves after
	// a reset made it stale. Its outcome was discarded without mutating state.
	ErrAcquisitionSuperseded = errors.New("position acquisition superseded")

	// ErrPositionUnavailable means the positioning service could not produce
	// a fix (GPS off, no signal, timeout).
	ErrPositionUnavailable = errors.New("current position unavailable")

	// ErrSurfaceNotReady means the rendering surface could not answer a
	// camera read, typically because it is not mounted yet. Callers absorb
	// this silently; it is never surfaced to the user.
	ErrSurfaceNotReady = errors.New("rendering surface not ready")

	// ErrNoPositionSample means an operation that needs a stored position
	// was invoked before any successful acquisition.
	ErrNoPositionSample = errors.New("no position sample available")
)
