package relay

import (
	"errors"
	"strings"
	"testing"

	"github.com/five82/padlink/internal/gamepad"
)

func TestDecode_Roster(t *testing.T) {
	msg, err := Decode([]byte(`{"players":[{"index":0,"name":"Alice"},{"index":2,"name":"Bob"}]}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if msg.Kind != KindRoster {
		t.Fatalf("Kind = %v, want roster", msg.Kind)
	}
	if len(msg.Roster) != 2 || msg.Roster[1].Index != 2 || msg.Roster[1].Name != "Bob" {
		t.Fatalf("Roster = %#v", msg.Roster)
	}
}

func TestDecode_EmptyRosterIsStillRoster(t *testing.T) {
	msg, err := Decode([]byte(`{"players":[]}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if msg.Kind != KindRoster || len(msg.Roster) != 0 {
		t.Fatalf("msg = %#v, want empty roster", msg)
	}
}

func TestDecode_Focus(t *testing.T) {
	msg, err := Decode([]byte(`{"spectate":3}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if msg.Kind != KindFocus || msg.Focus != 3 {
		t.Fatalf("msg = %#v, want focus 3", msg)
	}
}

func TestDecode_Control(t *testing.T) {
	msg, err := Decode([]byte(`{"idx":1,"ctrl":{"jm":1,"bs":0,"th":0.5,"st":0.25,"yw":0,"btn":{"16":1},"ax":{"4":-0.5}}}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if msg.Kind != KindControl || msg.Source != 1 {
		t.Fatalf("msg = %#v, want control for source 1", msg)
	}
	c := msg.Control
	if c.Jump == nil || *c.Jump != 1 || c.Boost == nil || *c.Boost != 0 {
		t.Fatalf("buttons decoded wrong: %#v", c)
	}
	if c.Throttle == nil || *c.Throttle != 0.5 {
		t.Fatalf("throttle decoded wrong: %#v", c.Throttle)
	}
	if c.Pitch != nil || c.Roll != nil || c.Handbrake != nil {
		t.Fatalf("absent fields should stay nil: %#v", c)
	}
	if c.Buttons[16] != 1 || c.Axes[4] != -0.5 {
		t.Fatalf("raw slots = %v / %v", c.Buttons, c.Axes)
	}
}

func TestDecode_ControlWithoutCtrl(t *testing.T) {
	msg, err := Decode([]byte(`{"idx":4}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	store := gamepad.NewStore()
	Apply(store, msg)
	d, ok := store.Lookup(4)
	if !ok || d.Timestamp != 1 {
		t.Fatalf("bare control did not advance timestamp: %#v", d)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantIs  error
		wantSub string
	}{
		{"malformed", `{"idx":`, nil, "decode message"},
		{"none", `{"hello":1}`, ErrUnknownMessage, ""},
		{"ambiguous", `{"idx":1,"spectate":2}`, ErrAmbiguousMessage, ""},
		{"bad slot", `{"idx":1,"ctrl":{"btn":{"x":1}}}`, nil, "btn slot"},
		{"negative slot", `{"idx":1,"ctrl":{"ax":{"-1":1}}}`, nil, "ax slot"},
		{"huge button slot", `{"idx":0,"ctrl":{"btn":{"1152921504606846976":1}}}`, nil, "btn slot"},
		{"button slot past cap", `{"idx":0,"ctrl":{"btn":{"64":1}}}`, nil, "out of range"},
		{"axis slot past cap", `{"idx":0,"ctrl":{"ax":{"1000000000":1}}}`, nil, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.in))
			if err == nil {
				t.Fatalf("Decode returned nil error")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Fatalf("err = %v, want %v", err, tt.wantIs)
			}
			if tt.wantSub != "" && !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestApply_RoutesEachKind(t *testing.T) {
	store := gamepad.NewStore()

	Apply(store, Message{Kind: KindRoster, Roster: []gamepad.RosterEntry{{Index: 0, Name: "Alice"}}})
	Apply(store, Message{Kind: KindFocus, Focus: 2})
	Apply(store, Message{Kind: KindControl, Source: 0, Control: gamepad.Control{Jump: gamepad.Value(1)}})
	Apply(store, Message{})

	d, ok := store.Lookup(0)
	if !ok || d.Name != "Alice" || d.Timestamp != 1 || d.Button(gamepad.SlotJump) != 1 {
		t.Fatalf("device = %#v", d)
	}
	if store.Focus() != 2 {
		t.Fatalf("Focus = %d, want 2", store.Focus())
	}
}

func TestKindString(t *testing.T) {
	if KindRoster.String() != "roster" || KindFocus.String() != "focus" || KindControl.String() != "control" || Kind(0).String() != "unknown" {
		t.Fatalf("Kind.String mismatch")
	}
}

func TestDecode_AcceptsLastSlotBeforeCap(t *testing.T) {
	msg, err := Decode([]byte(`{"idx":0,"ctrl":{"btn":{"63":1},"ax":{"63":-1}}}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	store := gamepad.NewStore()
	Apply(store, msg)
	d, _ := store.Lookup(0)
	if len(d.Buttons) != gamepad.MaxButtons || d.Button(63) != 1 {
		t.Fatalf("buttons len = %d, button 63 = %v, want %d and 1", len(d.Buttons), d.Button(63), gamepad.MaxButtons)
	}
	if len(d.Axes) != gamepad.MaxAxes || d.Axis(63) != -1 {
		t.Fatalf("axes len = %d, axis 63 = %v, want %d and -1", len(d.Axes), d.Axis(63), gamepad.MaxAxes)
	}
}
