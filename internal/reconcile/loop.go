package reconcile

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/five82/padlink/internal/gamepad"
)

var (
	// ErrNoScheduler means there is no frame signal to drive the loop.
	// There is no timer fallback.
	ErrNoScheduler = errors.New("reconcile: no frame scheduler")
	ErrNoSink      = errors.New("reconcile: no sink")
	ErrNoStore     = errors.New("reconcile: no store")
)

// Mode selects how the canonical device list is derived.
type Mode int

const (
	// ModeAll exposes every present source in ascending index order.
	ModeAll Mode = iota
	// ModeFocused exposes only the source at the store's focus index.
	ModeFocused
)

func (m Mode) String() string {
	switch m {
	case ModeFocused:
		return "focused"
	default:
		return "all"
	}
}

// ParseMode accepts "all" or "focused" (also "spectate"), case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ModeAll, nil
	case "focused", "focus", "spectate":
		return ModeFocused, nil
	default:
		return ModeAll, fmt.Errorf("unknown mode %q", s)
	}
}

// Scheduler delivers one callback per display frame.
type Scheduler interface {
	RequestNextTick(fn func())
}

// Sink receives change notifications for the canonical devices. deviceID is
// the device's position in the canonical list.
type Sink interface {
	RosterChanged(devices []*gamepad.Device)
	ButtonChanged(value float64, deviceID int, label string)
	AxisChanged(value float64, deviceID int, label, stick string, isX bool)
}

// Option configures a Loop.
type Option func(*Loop)

// WithMode sets the initial selection mode.
func WithMode(m Mode) Option {
	return func(l *Loop) { l.mode = m }
}

// Loop reconciles a gamepad.Store into Sink notifications once per frame.
// It is not safe for concurrent use; run it on the goroutine that mutates
// the store.
type Loop struct {
	store *gamepad.Store
	sched Scheduler
	sink  Sink
	mode  Mode

	running bool
	armed   bool

	// Identity of the roster last reported. nil until the first tick.
	prevRoster []rosterKey
	// Last reported timestamp per canonical position.
	prevTimestamps []uint64
}

type rosterKey struct {
	index int
	name  string
}

// New builds a stopped Loop. A Scheduler or Sink holding a nil pointer
// counts as missing.
func New(store *gamepad.Store, sched Scheduler, sink Sink, opts ...Option) (*Loop, error) {
	if isNil(sched) {
		return nil, ErrNoScheduler
	}
	if isNil(sink) {
		return nil, ErrNoSink
	}
	if store == nil {
		return nil, ErrNoStore
	}
	l := &Loop{store: store, sched: sched, sink: sink}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Start moves the loop to RUNNING and arms the next frame. Calling it while
// running, or while a frame is still armed from before a Stop, does not arm
// a second callback.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.arm()
}

// Stop moves the loop to STOPPED. A frame already armed still runs its tick
// but does not re-arm.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether the loop is in the RUNNING state.
func (l *Loop) Running() bool {
	return l.running
}

// Mode returns the current selection mode.
func (l *Loop) Mode() Mode {
	return l.mode
}

// SetMode switches selection mode. The next tick reports the roster and
// re-sends every device that has state.
func (l *Loop) SetMode(m Mode) {
	if m == l.mode {
		return
	}
	l.mode = m
	l.prevRoster = nil
	l.prevTimestamps = nil
}

func (l *Loop) arm() {
	if l.armed {
		return
	}
	l.armed = true
	l.sched.RequestNextTick(l.onFrame)
}

func (l *Loop) onFrame() {
	l.armed = false
	l.Tick()
	if l.running {
		l.arm()
	}
}

// Canonical derives the hole-free device list for the current mode. The
// entries point into the store.
func (l *Loop) Canonical() []*gamepad.Device {
	switch l.mode {
	case ModeFocused:
		if d, ok := l.store.Lookup(l.store.Focus()); ok {
			return []*gamepad.Device{d}
		}
		return []*gamepad.Device{}
	default:
		indices := l.store.Indices()
		out := make([]*gamepad.Device, 0, len(indices))
		for _, idx := range indices {
			d, _ := l.store.Lookup(idx)
			out = append(out, d)
		}
		return out
	}
}

// Tick runs one reconciliation pass: roster check, then per-device diff.
func (l *Loop) Tick() {
	devices := l.Canonical()

	roster := l.rosterKeys(devices)
	if l.prevRoster == nil || !slices.Equal(roster, l.prevRoster) {
		l.prevRoster = roster
		l.sink.RosterChanged(devices)
	}

	next := make([]uint64, len(devices))
	for p, d := range devices {
		prev, seen := uint64(0), p < len(l.prevTimestamps)
		if seen {
			prev = l.prevTimestamps[p]
		}
		next[p] = d.Timestamp
		if d.Timestamp == 0 {
			continue
		}
		if seen && d.Timestamp == prev {
			continue
		}
		l.report(p, d)
	}
	l.prevTimestamps = next
}

// rosterKeys captures what counts as a membership change. In all mode that
// is the index sequence; in focused mode the exposed name counts too.
func (l *Loop) rosterKeys(devices []*gamepad.Device) []rosterKey {
	keys := make([]rosterKey, len(devices))
	for i, d := range devices {
		keys[i] = rosterKey{index: d.Index}
		if l.mode == ModeFocused {
			keys[i].name = d.Name
		}
	}
	return keys
}

// report sends every button and axis of d, labelled, including extras.
func (l *Loop) report(id int, d *gamepad.Device) {
	for _, slot := range gamepad.ButtonSlots {
		l.sink.ButtonChanged(d.Button(slot.Index), id, slot.Label)
	}
	for _, slot := range gamepad.AxisSlots {
		l.sink.AxisChanged(d.Axis(slot.Index), id, slot.Label, slot.Stick, slot.IsX)
	}
	for i := gamepad.TypicalButtonCount; i < len(d.Buttons); i++ {
		l.sink.ButtonChanged(d.Buttons[i], id, gamepad.ExtraButtonLabel(i))
	}
	for i := gamepad.TypicalAxisCount; i < len(d.Axes); i++ {
		l.sink.AxisChanged(d.Axes[i], id, gamepad.ExtraAxisLabel(i), "", false)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
