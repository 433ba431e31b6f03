package domain

// PositionSample is one immutable snapshot of a device-reported location.
// A sample is created only by a successful acquisition, replaced wholesale by
// the next one, and never partially mutated.
type PositionSample struct {
	Coordinate Coordinate `json:"coordinate"`

	// Optional attributes; nil when the positioning hardware did not report them.
	AltitudeMeters *float64 `json:"altitude_meters,omitempty"`
	AccuracyMeters *float64 `json:"accuracy_meters,omitempty"`
	SpeedMps       *float64 `json:"speed_mps,omitempty"`
	HeadingDegrees *float64 `json:"heading_degrees,omitempty"`

	// CapturedAtEpochMs is the device timestamp of the fix.
	CapturedAtEpochMs int64 `json:"captured_at_epoch_ms"`
}

// Clone returns an independent copy of the sample, so callers can hand it out
// without sharing the optional-field pointers.
func (s PositionSample) Clone() PositionSample {
	out := s
	out.AltitudeMeters = clonePtr(s.AltitudeMeters)
	out.AccuracyMeters = clonePtr(s.AccuracyMeters)
	out.SpeedMps = clonePtr(s.SpeedMps)
	out.HeadingDegrees = clonePtr(s.HeadingDegrees)
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
