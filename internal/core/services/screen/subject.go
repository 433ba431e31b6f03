package screen

import (
	"context"
	"sync"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
)

// Subject manages screen observers and notifies them of state changes.
type Subject struct {
	observers []ports.ScreenObserver
	mu        sync.RWMutex
}

// NewSubject creates a new subject.
func NewSubject() *Subject {
	return &Subject{
		observers: make([]ports.ScreenObserver, 0),
	}
}

// AddObserver registers a new observer.
func (s *Subject) AddObserver(observer ports.ScreenObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Notify delivers a snapshot to all observers. Delivery is synchronous and
// happens after the mutation is committed, so no observer can see a partial
// update; observers that need to do slow work must queue internally.
func (s *Subject) Notify(ctx context.Context, snapshot domain.ScreenSnapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, obs := range s.observers {
		obs.OnScreenUpdated(ctx, snapshot)
	}
}
