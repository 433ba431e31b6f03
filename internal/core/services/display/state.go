// Package display holds the synchronous UI toggles: basemap type and the
// details panel. Pure state, no failure modes, no async coupling.
package display

import (
	"sync"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

// State owns the display mode. The details panel is gated on a position
// sample being present.
type State struct {
	positions ports.PositionReader

	mu   sync.RWMutex
	mode domain.DisplayMode
}

// NewState creates the display state with the standard basemap and the
// details panel hidden.
func NewState(positions ports.PositionReader) *State {
	return &State{
		positions: positions,
		mode:      domain.DisplayMode{MapType: domain.MapStandard},
	}
}

// ToggleMapType flips standard <-> satellite.
func (s *State) ToggleMapType() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode.MapType = s.mode.MapType.Toggle()
}

// ShowDetails makes the details panel visible. Only meaningful when a
// position sample exists; otherwise it is a no-op and returns false.
func (s *State) ShowDetails() bool {
	if s.positions.Sample() == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode.DetailsPanelVisible = true
	return true
}

// HideDetails hides the details panel.
func (s *State) HideDetails() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode.DetailsPanelVisible = false
}

// Mode returns the current display mode.
func (s *State) Mode() domain.DisplayMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}
