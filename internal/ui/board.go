package ui

import (
	"strings"

	"github.com/five82/padlink/internal/gamepad"
)

type axisReading struct {
	value float64
	stick string
	isX   bool
}

// panel is the displayed state of one canonical position.
type panel struct {
	device       *gamepad.Device
	buttons      map[string]float64
	axes         map[string]axisReading
	extraButtons []string
	extraAxes    []string
	reports      int
	seeded       bool
}

func newPanel(d *gamepad.Device) *panel {
	return &panel{
		device:  d,
		buttons: make(map[string]float64, gamepad.TypicalButtonCount),
		axes:    make(map[string]axisReading, gamepad.TypicalAxisCount),
	}
}

// board implements reconcile.Sink by keeping the last reported value of
// every labelled control per position.
type board struct {
	panels        []*panel
	rosterChanges int
}

// RosterChanged rebuilds the panels. Readings of a device that is still
// present carry over, and a device new to the board is seeded from its
// current state, since positional diffing may not re-send either.
func (b *board) RosterChanged(devices []*gamepad.Device) {
	b.rosterChanges++

	previous := make(map[int]*panel, len(b.panels))
	for _, p := range b.panels {
		if p.device != nil {
			previous[p.device.Index] = p
		}
	}

	next := make([]*panel, 0, len(devices))
	var fresh []int
	for pos, d := range devices {
		if old, ok := previous[d.Index]; ok {
			old.device = d
			next = append(next, old)
			continue
		}
		next = append(next, newPanel(d))
		if d.HasState() {
			fresh = append(fresh, pos)
		}
	}
	b.panels = next

	for _, pos := range fresh {
		b.seed(pos, next[pos].device)
	}
}

// seed fills the panel at pos from d the way a full report would, without
// counting as a report.
func (b *board) seed(pos int, d *gamepad.Device) {
	p := b.panels[pos]
	for _, slot := range gamepad.ButtonSlots {
		p.setButton(slot.Label, d.Button(slot.Index))
	}
	for _, slot := range gamepad.AxisSlots {
		p.setAxis(slot.Label, axisReading{value: d.Axis(slot.Index), stick: slot.Stick, isX: slot.IsX})
	}
	for i := gamepad.TypicalButtonCount; i < len(d.Buttons); i++ {
		p.setButton(gamepad.ExtraButtonLabel(i), d.Buttons[i])
	}
	for i := gamepad.TypicalAxisCount; i < len(d.Axes); i++ {
		p.setAxis(gamepad.ExtraAxisLabel(i), axisReading{value: d.Axes[i]})
	}
	p.seeded = true
}

func (b *board) ButtonChanged(value float64, deviceID int, label string) {
	p := b.panel(deviceID)
	if p == nil {
		return
	}
	p.setButton(label, value)
	if label == gamepad.ButtonSlots[0].Label {
		p.reports++
	}
}

func (b *board) AxisChanged(value float64, deviceID int, label, stick string, isX bool) {
	p := b.panel(deviceID)
	if p == nil {
		return
	}
	p.setAxis(label, axisReading{value: value, stick: stick, isX: isX})
}

func (b *board) panel(id int) *panel {
	if id < 0 || id >= len(b.panels) {
		return nil
	}
	return b.panels[id]
}

func isExtra(label string) bool {
	return strings.HasPrefix(label, "extra-")
}

func (p *panel) setButton(label string, value float64) {
	if _, seen := p.buttons[label]; !seen && isExtra(label) {
		p.extraButtons = append(p.extraButtons, label)
	}
	p.buttons[label] = value
}

func (p *panel) setAxis(label string, r axisReading) {
	if _, seen := p.axes[label]; !seen && isExtra(label) {
		p.extraAxes = append(p.extraAxes, label)
	}
	p.axes[label] = r
}

// hasReadings reports whether the panel has anything to draw.
func (p *panel) hasReadings() bool {
	return p.reports > 0 || p.seeded
}
