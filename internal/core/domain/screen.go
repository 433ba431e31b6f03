package domain

// PermissionState represents whether location access has been granted.
type PermissionState string

const (
	PermissionUnknown PermissionState = "unknown"
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
)

// AcquisitionPhase is the lifecycle phase of a position acquisition.
type AcquisitionPhase string

const (
	AcquisitionIdle      AcquisitionPhase = "idle"
	AcquisitionInFlight  AcquisitionPhase = "in_flight"
	AcquisitionSucceeded AcquisitionPhase = "succeeded"
	AcquisitionFailed    AcquisitionPhase = "failed"
)

// AcquisitionState is the transient state of the acquisition controller.
// Terminal phases carry a human-readable reason on failure and return to
// Idle once the UI layer consumes the outcome.
type AcquisitionState struct {
	Phase  AcquisitionPhase `json:"phase"`
	Reason string           `json:"reason,omitempty"`
}

// Terminal reports whether the state is an outcome the UI can consume.
func (s AcquisitionState) Terminal() bool {
	return s.Phase == AcquisitionSucceeded || s.Phase == AcquisitionFailed
}

// MapType selects the basemap rendered by the surface.
type MapType string

const (
	MapStandard  MapType = "standard"
	MapSatellite MapType = "satellite"
)

// Toggle flips between the two basemap types.
func (t MapType) Toggle() MapType {
	if t == MapStandard {
		return MapSatellite
	}
	return MapStandard
}

// DisplayMode holds the synchronous UI toggles. No async coupling.
type DisplayMode struct {
	MapType             MapType `json:"map_type"`
	DetailsPanelVisible bool    `json:"details_panel_visible"`
}

// ScreenSnapshot is the read-only state exposed to the presentation layer,
// assembled atomically after each mutation.
type ScreenSnapshot struct {
	Permission  PermissionState  `json:"permission"`
	Acquisition AcquisitionState `json:"acquisition"`
	Position    *PositionSample  `json:"position,omitempty"`
	Viewport    Region           `json:"viewport"`
	Display     DisplayMode      `json:"display"`
	Landmark    Landmark         `json:"landmark"`

	// Notice is the single current user-facing error message. Replaced by
	// each new failure, cleared on the next successful operation.
	Notice string `json:"notice,omitempty"`
}
