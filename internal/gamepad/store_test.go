package gamepad

import (
	"reflect"
	"testing"
)

func TestStore_EnsureCreatesDefaults(t *testing.T) {
	s := NewStore()

	d := s.Ensure(3)
	if d.Name != DefaultName {
		t.Fatalf("Name = %q, want %q", d.Name, DefaultName)
	}
	if d.Index != 3 {
		t.Fatalf("Index = %d, want 3", d.Index)
	}
	if len(d.Buttons) != MinButtons || len(d.Axes) != MinAxes {
		t.Fatalf("slots = %d buttons / %d axes, want %d / %d", len(d.Buttons), len(d.Axes), MinButtons, MinAxes)
	}
	if d.Timestamp != 0 {
		t.Fatalf("Timestamp = %d, want 0", d.Timestamp)
	}
	if again := s.Ensure(3); again != d {
		t.Fatalf("Ensure returned a new record for an existing index")
	}
}

func TestStore_ZeroValueIsUsable(t *testing.T) {
	var s Store
	s.ApplyControl(1, Control{Jump: Value(1)})
	if d, ok := s.Lookup(1); !ok || d.Button(SlotJump) != 1 {
		t.Fatalf("zero-value store did not record control update")
	}
}

func TestStore_SparseIndicesAscending(t *testing.T) {
	s := NewStore()
	s.Ensure(5)
	s.Ensure(0)
	s.Ensure(2)

	if _, ok := s.Lookup(1); ok {
		t.Fatalf("Lookup(1) found a record for a hole")
	}
	if got, want := s.Indices(), []int{0, 2, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Indices = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
}

func TestStore_ControlTimestampStrictlyIncreases(t *testing.T) {
	s := NewStore()

	updates := []Control{
		{Jump: Value(1)},
		{},
		{Throttle: Value(0.25)},
		{Jump: Value(1)},
	}
	for i, c := range updates {
		d := s.ApplyControl(0, c)
		if want := uint64(i + 1); d.Timestamp != want {
			t.Fatalf("after update %d Timestamp = %d, want %d", i, d.Timestamp, want)
		}
	}
}

func TestStore_RosterNeverTouchesTimestamp(t *testing.T) {
	s := NewStore()
	s.ApplyControl(0, Control{Jump: Value(1)})

	s.ApplyRoster([]RosterEntry{{Index: 0, Name: "Alice"}, {Index: 1, Name: "Bob"}})
	s.ApplyRoster([]RosterEntry{{Index: 0, Name: "Alicia"}})

	a, _ := s.Lookup(0)
	b, _ := s.Lookup(1)
	if a.Timestamp != 1 {
		t.Fatalf("source 0 Timestamp = %d, want 1", a.Timestamp)
	}
	if b.Timestamp != 0 {
		t.Fatalf("source 1 Timestamp = %d, want 0", b.Timestamp)
	}
	if a.Name != "Alicia" || b.Name != "Bob" {
		t.Fatalf("names = %q, %q, want Alicia, Bob", a.Name, b.Name)
	}
}

func TestStore_FocusAcceptsMissingSource(t *testing.T) {
	s := NewStore()
	if s.Focus() != 0 {
		t.Fatalf("default Focus = %d, want 0", s.Focus())
	}
	s.ApplyFocus(7)
	if s.Focus() != 7 {
		t.Fatalf("Focus = %d, want 7", s.Focus())
	}
	if s.Len() != 0 {
		t.Fatalf("ApplyFocus created a record")
	}
}

func TestControl_FieldTable(t *testing.T) {
	s := NewStore()
	d := s.ApplyControl(0, Control{
		Jump:      Value(1),
		Boost:     Value(0),
		Handbrake: Value(1),
		UseItem:   Value(1),
		Throttle:  Value(0.5),
		Steer:     Value(-0.3),
		Pitch:     Value(0.7),
		Roll:      Value(-1),
	})

	wantButtons := []float64{1, 0, 1, 1, -0.5, 0.5, 0, 0}
	if !reflect.DeepEqual(d.Buttons, wantButtons) {
		t.Fatalf("Buttons = %v, want %v", d.Buttons, wantButtons)
	}
	wantAxes := []float64{-0.3, 0.7, -1, 0}
	if !reflect.DeepEqual(d.Axes, wantAxes) {
		t.Fatalf("Axes = %v, want %v", d.Axes, wantAxes)
	}
}

func TestControl_ThrottleIsNotClamped(t *testing.T) {
	d := NewStore().ApplyControl(0, Control{Throttle: Value(3)})
	if d.Button(SlotThrottleReverse) != -3 || d.Button(SlotThrottleForward) != 3 {
		t.Fatalf("throttle slots = %v / %v, want -3 / 3", d.Button(SlotThrottleReverse), d.Button(SlotThrottleForward))
	}
}

func TestControl_SteerOrYaw(t *testing.T) {
	tests := []struct {
		name  string
		prior float64
		c     Control
		want  float64
	}{
		{"steer wins when nonzero", 0.9, Control{Steer: Value(0.4), Yaw: Value(-0.2)}, 0.4},
		{"yaw used when steer zero", 0.9, Control{Steer: Value(0), Yaw: Value(-0.2)}, -0.2},
		{"yaw used when steer absent", 0.9, Control{Yaw: Value(0.6)}, 0.6},
		{"zero steer without yaw", 0.9, Control{Steer: Value(0)}, 0},
		{"both absent keeps prior", 0.9, Control{Pitch: Value(1)}, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.ApplyControl(0, Control{Steer: Value(tt.prior)})
			d := s.ApplyControl(0, tt.c)
			if got := d.Axis(AxisSteer); got != tt.want {
				t.Fatalf("axis 0 = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControl_AbsentFieldsKeepValues(t *testing.T) {
	s := NewStore()
	s.ApplyControl(0, Control{Jump: Value(1), Pitch: Value(0.5)})
	d := s.ApplyControl(0, Control{Boost: Value(1)})

	if d.Button(SlotJump) != 1 || d.Axis(AxisPitch) != 0.5 || d.Button(SlotBoost) != 1 {
		t.Fatalf("absent fields were overwritten: buttons=%v axes=%v", d.Buttons, d.Axes)
	}
	if d.Timestamp != 2 {
		t.Fatalf("Timestamp = %d, want 2", d.Timestamp)
	}
}

func TestControl_RawSlotsGrowSparsely(t *testing.T) {
	d := NewStore().ApplyControl(0, Control{
		Buttons: map[int]float64{18: 1},
		Axes:    map[int]float64{5: -0.5},
	})

	if len(d.Buttons) != 19 {
		t.Fatalf("len(Buttons) = %d, want 19", len(d.Buttons))
	}
	if d.ExtraButtons() != 3 || d.Button(18) != 1 || d.Button(16) != 0 {
		t.Fatalf("extra buttons = %d, values %v", d.ExtraButtons(), d.Buttons[TypicalButtonCount:])
	}
	if d.ExtraAxes() != 2 || d.Axis(5) != -0.5 {
		t.Fatalf("extra axes = %d, values %v", d.ExtraAxes(), d.Axes)
	}
}

func TestDevice_OutOfRangeReadsZero(t *testing.T) {
	d := newDevice(0)
	if d.Button(12) != 0 || d.Button(-1) != 0 || d.Axis(9) != 0 {
		t.Fatalf("out-of-range reads should be zero")
	}
	d.SetButton(-2, 1)
	if len(d.Buttons) != MinButtons {
		t.Fatalf("negative SetButton grew the slice")
	}
}

func TestSlots_CoverTypicalIndicesOnce(t *testing.T) {
	seen := make(map[int]bool)
	for _, slot := range ButtonSlots {
		if seen[slot.Index] {
			t.Fatalf("button index %d listed twice", slot.Index)
		}
		seen[slot.Index] = true
	}
	if len(seen) != TypicalButtonCount {
		t.Fatalf("button slots cover %d indices, want %d", len(seen), TypicalButtonCount)
	}
	if got := ExtraButtonLabel(17); got != "extra-button-17" {
		t.Fatalf("ExtraButtonLabel = %q", got)
	}
	if got := ExtraAxisLabel(4); got != "extra-axis-4" {
		t.Fatalf("ExtraAxisLabel = %q", got)
	}
}

func TestControl_SlotsPastCapAreIgnored(t *testing.T) {
	store := NewStore()
	d := store.ApplyControl(0, Control{
		Buttons: map[int]float64{MaxButtons: 1, 1_000_000_000: 1},
		Axes:    map[int]float64{MaxAxes: 1, 2_000_000_000: 1},
	})

	if len(d.Buttons) != MinButtons {
		t.Fatalf("len(Buttons) = %d, want %d", len(d.Buttons), MinButtons)
	}
	if len(d.Axes) != MinAxes {
		t.Fatalf("len(Axes) = %d, want %d", len(d.Axes), MinAxes)
	}
	if d.Timestamp != 1 {
		t.Fatalf("Timestamp = %d, want 1", d.Timestamp)
	}

	d.SetButton(MaxButtons-1, 0.5)
	if len(d.Buttons) != MaxButtons || d.Button(MaxButtons-1) != 0.5 {
		t.Fatalf("last slot before cap: len = %d, value = %v", len(d.Buttons), d.Button(MaxButtons-1))
	}
}
