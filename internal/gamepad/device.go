package gamepad

const (
	// TypicalButtonCount is the number of buttons with a fixed meaning.
	// Anything past it is reported as an extra button.
	TypicalButtonCount = 16
	// TypicalAxisCount is the number of axes with a fixed meaning (two sticks).
	TypicalAxisCount = 4

	// MinButtons and MinAxes are the slot counts a device starts with.
	MinButtons = 8
	MinAxes    = 4

	// MaxButtons and MaxAxes bound the slot indices a device accepts.
	MaxButtons = 64
	MaxAxes    = 64

	// DefaultName labels a source until a roster message names it.
	DefaultName = "Unknown"
)

// Device is the raw state of one source. Canonical views hold pointers to
// these, so a write here is visible through every view immediately.
type Device struct {
	Name      string
	Index     int
	Buttons   []float64
	Axes      []float64
	Timestamp uint64
}

func newDevice(index int) *Device {
	return &Device{
		Name:    DefaultName,
		Index:   index,
		Buttons: make([]float64, MinButtons),
		Axes:    make([]float64, MinAxes),
	}
}

// Button returns the value at slot i, or zero when the slot was never written.
func (d *Device) Button(i int) float64 {
	if i < 0 || i >= len(d.Buttons) {
		return 0
	}
	return d.Buttons[i]
}

// Axis returns the value at slot i, or zero when the slot was never written.
func (d *Device) Axis(i int) float64 {
	if i < 0 || i >= len(d.Axes) {
		return 0
	}
	return d.Axes[i]
}

// SetButton writes slot i, growing the button slice with zeros as needed.
// Slots outside [0, MaxButtons) are ignored.
func (d *Device) SetButton(i int, v float64) {
	if i < 0 || i >= MaxButtons {
		return
	}
	d.Buttons = grow(d.Buttons, i+1)
	d.Buttons[i] = v
}

// SetAxis writes slot i, growing the axis slice with zeros as needed.
// Slots outside [0, MaxAxes) are ignored.
func (d *Device) SetAxis(i int, v float64) {
	if i < 0 || i >= MaxAxes {
		return
	}
	d.Axes = grow(d.Axes, i+1)
	d.Axes[i] = v
}

// ExtraButtons returns the number of button slots past TypicalButtonCount.
func (d *Device) ExtraButtons() int {
	return max(0, len(d.Buttons)-TypicalButtonCount)
}

// ExtraAxes returns the number of axis slots past TypicalAxisCount.
func (d *Device) ExtraAxes() int {
	return max(0, len(d.Axes)-TypicalAxisCount)
}

// HasState reports whether the device has received at least one control update.
func (d *Device) HasState() bool {
	return d.Timestamp != 0
}

func grow(values []float64, n int) []float64 {
	if len(values) >= n {
		return values
	}
	return append(values, make([]float64, n-len(values))...)
}
