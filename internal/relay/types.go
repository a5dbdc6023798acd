package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/five82/padlink/internal/gamepad"
)

var (
	// ErrUnknownMessage is returned for a frame carrying none of the
	// roster, focus or control keys.
	ErrUnknownMessage = errors.New("unknown message")
	// ErrAmbiguousMessage is returned for a frame carrying more than one.
	ErrAmbiguousMessage = errors.New("ambiguous message")
)

// Kind identifies which of the three message shapes a frame carries.
type Kind int

const (
	KindRoster Kind = iota + 1
	KindFocus
	KindControl
)

func (k Kind) String() string {
	switch k {
	case KindRoster:
		return "roster"
	case KindFocus:
		return "focus"
	case KindControl:
		return "control"
	default:
		return "unknown"
	}
}

// Message is one decoded relay frame. Only the field matching Kind is set.
type Message struct {
	Kind    Kind
	Roster  []gamepad.RosterEntry
	Focus   int
	Source  int
	Control gamepad.Control
}

// wireMessage mirrors the JSON frame. Exactly one of Players, Spectate or
// Index is expected.
type wireMessage struct {
	Players  *[]wirePlayer `json:"players"`
	Spectate *int          `json:"spectate"`
	Index    *int          `json:"idx"`
	Ctrl     *wireControl  `json:"ctrl"`
}

type wirePlayer struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type wireControl struct {
	Jump      *float64 `json:"jm"`
	Boost     *float64 `json:"bs"`
	Handbrake *float64 `json:"hb"`
	UseItem   *float64 `json:"us"`
	Throttle  *float64 `json:"th"`
	Steer     *float64 `json:"st"`
	Yaw       *float64 `json:"yw"`
	Pitch     *float64 `json:"pt"`
	Roll      *float64 `json:"rl"`

	Buttons map[string]float64 `json:"btn"`
	Axes    map[string]float64 `json:"ax"`
}

// Decode parses one JSON frame.
func Decode(data []byte) (Message, error) {
	var raw wireMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}

	present := 0
	for _, ok := range []bool{raw.Players != nil, raw.Spectate != nil, raw.Index != nil} {
		if ok {
			present++
		}
	}
	switch {
	case present == 0:
		return Message{}, ErrUnknownMessage
	case present > 1:
		return Message{}, ErrAmbiguousMessage
	}

	switch {
	case raw.Players != nil:
		entries := make([]gamepad.RosterEntry, 0, len(*raw.Players))
		for _, p := range *raw.Players {
			entries = append(entries, gamepad.RosterEntry{Index: p.Index, Name: p.Name})
		}
		return Message{Kind: KindRoster, Roster: entries}, nil
	case raw.Spectate != nil:
		return Message{Kind: KindFocus, Focus: *raw.Spectate}, nil
	default:
		msg := Message{Kind: KindControl, Source: *raw.Index}
		if raw.Ctrl != nil {
			ctrl, err := raw.Ctrl.toControl()
			if err != nil {
				return Message{}, err
			}
			msg.Control = ctrl
		}
		return msg, nil
	}
}

func (w wireControl) toControl() (gamepad.Control, error) {
	c := gamepad.Control{
		Jump:      w.Jump,
		Boost:     w.Boost,
		Handbrake: w.Handbrake,
		UseItem:   w.UseItem,
		Throttle:  w.Throttle,
		Steer:     w.Steer,
		Yaw:       w.Yaw,
		Pitch:     w.Pitch,
		Roll:      w.Roll,
	}
	var err error
	if c.Buttons, err = slotMap(w.Buttons, "btn", gamepad.MaxButtons); err != nil {
		return gamepad.Control{}, err
	}
	if c.Axes, err = slotMap(w.Axes, "ax", gamepad.MaxAxes); err != nil {
		return gamepad.Control{}, err
	}
	return c, nil
}

func slotMap(in map[string]float64, field string, limit int) (map[int]float64, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[int]float64, len(in))
	for k, v := range in {
		slot, err := strconv.Atoi(k)
		if err != nil || slot < 0 {
			return nil, fmt.Errorf("decode message: %s slot %q is not a non-negative integer", field, k)
		}
		if slot >= limit {
			return nil, fmt.Errorf("decode message: %s slot %d out of range (max %d)", field, slot, limit-1)
		}
		out[slot] = v
	}
	return out, nil
}

// Apply routes m onto the store.
func Apply(store *gamepad.Store, m Message) {
	switch m.Kind {
	case KindRoster:
		store.ApplyRoster(m.Roster)
	case KindFocus:
		store.ApplyFocus(m.Focus)
	case KindControl:
		store.ApplyControl(m.Source, m.Control)
	}
}
