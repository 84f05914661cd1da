package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/gallery/internal/picsum"
)

// Status is the tri-state reported by the image source.
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Status              Status
	Images              []picsum.Image
	HasImages           bool // true once any fetch has succeeded
	Refreshing          bool // a fetch is in flight
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	NextRetry           time.Time
}

// Stale reports whether the shown images are older than a failed fetch.
func (s Snapshot) Stale() bool {
	return s.HasImages && s.LastError != nil
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// MarkLoading records that a fetch has started. Previously loaded images stay
// visible; only a store that never succeeded reports StatusLoading.
func (s *Store) MarkLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Refreshing = true
	s.snapshot.NextRetry = time.Time{}
	if !s.snapshot.HasImages {
		s.snapshot.Status = StatusLoading
	}
}

// Update replaces the stored images. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(images []picsum.Image, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Refreshing = false
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		if !s.snapshot.HasImages {
			s.snapshot.Status = StatusError
		}
		return
	}

	s.snapshot.Images = cloneImages(images)
	s.snapshot.HasImages = true
	s.snapshot.Status = StatusReady
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.NextRetry = time.Time{}
}

// SetRetry records when the next attempt is scheduled. Zero clears it.
func (s *Store) SetRetry(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.NextRetry = at
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Images = cloneImages(s.snapshot.Images)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneImages(images []picsum.Image) []picsum.Image {
	if len(images) == 0 {
		return nil
	}
	dup := make([]picsum.Image, len(images))
	copy(dup, images)
	return dup
}
