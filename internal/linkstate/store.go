package linkstate

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is the relay connection state as last reported.
type Snapshot struct {
	URL                 string
	Connected           bool
	ConnectedAt         time.Time
	Frames              uint64
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	NextRetry           time.Duration
}

// IsOffline returns true when the relay has failed several times in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates updates from the relay goroutine with reads from the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetURL records the endpoint being dialed.
func (s *Store) SetURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.URL = url
}

// Connected marks the link up and clears failure bookkeeping.
func (s *Store) Connected() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.Connected = true
	s.snapshot.ConnectedAt = now
	s.snapshot.LastUpdated = now
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.NextRetry = 0
}

// Frame counts one delivered frame.
func (s *Store) Frame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Frames++
	s.snapshot.LastUpdated = time.Now()
}

// Disconnected marks the link down. A nil err is a clean shutdown and does
// not count as a failure.
func (s *Store) Disconnected(err error, retryIn time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Connected = false
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.NextRetry = retryIn
	if err == nil {
		return
	}
	s.snapshot.LastError = err
	s.snapshot.ConsecutiveFailures++
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
