package gamepad

// Control is one control update. Nil fields are absent from the message and
// leave their slot untouched.
type Control struct {
	Jump      *float64
	Boost     *float64
	Handbrake *float64
	UseItem   *float64
	Throttle  *float64
	Steer     *float64
	Yaw       *float64
	Pitch     *float64
	Roll      *float64

	// Raw slot writes, keyed by slot index.
	Buttons map[int]float64
	Axes    map[int]float64
}

// Button and axis slots written by the fixed field table.
const (
	SlotJump      = 0
	SlotBoost     = 1
	SlotHandbrake = 2
	SlotUseItem   = 3
	// Throttle drives both top shoulders: left gets -throttle, right +throttle.
	SlotThrottleReverse = 4
	SlotThrottleForward = 5

	AxisSteer = 0
	AxisPitch = 1
	AxisRoll  = 2
)

func (c Control) applyTo(d *Device) {
	setButton(d, SlotJump, c.Jump)
	setButton(d, SlotBoost, c.Boost)
	setButton(d, SlotHandbrake, c.Handbrake)
	setButton(d, SlotUseItem, c.UseItem)
	if c.Throttle != nil {
		// Unclamped: either slot can go negative.
		d.SetButton(SlotThrottleReverse, -*c.Throttle)
		d.SetButton(SlotThrottleForward, *c.Throttle)
	}
	setAxis(d, AxisSteer, c.steerOrYaw())
	setAxis(d, AxisPitch, c.Pitch)
	setAxis(d, AxisRoll, c.Roll)

	for slot, v := range c.Buttons {
		d.SetButton(slot, v)
	}
	for slot, v := range c.Axes {
		d.SetAxis(slot, v)
	}
}

// steerOrYaw picks the first-stick X value: steer when it is set and
// nonzero, otherwise yaw, otherwise whatever steer was.
func (c Control) steerOrYaw() *float64 {
	if c.Steer != nil && *c.Steer != 0 {
		return c.Steer
	}
	if c.Yaw != nil {
		return c.Yaw
	}
	return c.Steer
}

func setButton(d *Device, slot int, v *float64) {
	if v != nil {
		d.SetButton(slot, *v)
	}
}

func setAxis(d *Device, slot int, v *float64) {
	if v != nil {
		d.SetAxis(slot, *v)
	}
}

// Value returns a pointer to v, for building a Control literal.
func Value(v float64) *float64 {
	return &v
}
