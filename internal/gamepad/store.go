package gamepad

import "sort"

// RosterEntry names one source.
type RosterEntry struct {
	Index int
	Name  string
}

// Store is the sparse, index-addressed table of raw device states plus the
// focus index used by spectator mode. An absent key is a hole.
//
// Store is not safe for concurrent use. Message application and frame ticks
// are expected to run on the same goroutine.
type Store struct {
	devices map[int]*Device
	focus   int
}

// NewStore returns an empty store focused on source 0.
func NewStore() *Store {
	return &Store{devices: make(map[int]*Device)}
}

// Ensure returns the device at index, creating a default one when absent.
func (s *Store) Ensure(index int) *Device {
	if s.devices == nil {
		s.devices = make(map[int]*Device)
	}
	if d, ok := s.devices[index]; ok {
		return d
	}
	d := newDevice(index)
	s.devices[index] = d
	return d
}

// Lookup returns the device at index without creating it.
func (s *Store) Lookup(index int) (*Device, bool) {
	d, ok := s.devices[index]
	return d, ok
}

// Len returns the number of present devices.
func (s *Store) Len() int {
	return len(s.devices)
}

// Indices returns the present source indices in ascending order.
func (s *Store) Indices() []int {
	if len(s.devices) == 0 {
		return nil
	}
	out := make([]int, 0, len(s.devices))
	for idx := range s.devices {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Focus returns the source index exposed in spectator mode.
func (s *Store) Focus() int {
	return s.focus
}

// ApplyRoster names sources, last write wins. Timestamps are left alone so a
// rename never looks like a control change.
func (s *Store) ApplyRoster(entries []RosterEntry) {
	for _, e := range entries {
		s.Ensure(e.Index).Name = e.Name
	}
}

// ApplyFocus moves the spectator focus. The index need not exist yet.
func (s *Store) ApplyFocus(index int) {
	s.focus = index
}

// ApplyControl writes the mapped fields of c onto the source and advances
// its timestamp by exactly one, even when c carries no fields.
func (s *Store) ApplyControl(index int, c Control) *Device {
	d := s.Ensure(index)
	c.applyTo(d)
	d.Timestamp++
	return d
}
