package gamepad

import "strconv"

// ButtonSlot ties a button index to the label a display uses for it.
type ButtonSlot struct {
	Index int
	Label string
}

// AxisSlot ties an axis index to its label, the stick it belongs to and
// whether it is that stick's X dimension.
type AxisSlot struct {
	Index int
	Label string
	Stick string
	IsX   bool
}

// ButtonSlots lists the typical buttons in the order they are reported.
var ButtonSlots = [TypicalButtonCount]ButtonSlot{
	{0, "button-1"},
	{1, "button-2"},
	{2, "button-3"},
	{3, "button-4"},
	{4, "button-left-shoulder-top"},
	{6, "button-left-shoulder-bottom"},
	{5, "button-right-shoulder-top"},
	{7, "button-right-shoulder-bottom"},
	{8, "button-select"},
	{9, "button-start"},
	{10, "stick-1"},
	{11, "stick-2"},
	{12, "button-dpad-top"},
	{13, "button-dpad-bottom"},
	{14, "button-dpad-left"},
	{15, "button-dpad-right"},
}

// AxisSlots lists the typical axes in the order they are reported.
var AxisSlots = [TypicalAxisCount]AxisSlot{
	{0, "stick-1-axis-x", "stick-1", true},
	{1, "stick-1-axis-y", "stick-1", false},
	{2, "stick-2-axis-x", "stick-2", true},
	{3, "stick-2-axis-y", "stick-2", false},
}

// ExtraButtonLabel labels a button past the typical count.
func ExtraButtonLabel(i int) string {
	return "extra-button-" + strconv.Itoa(i)
}

// ExtraAxisLabel labels an axis past the typical count.
func ExtraAxisLabel(i int) string {
	return "extra-axis-" + strconv.Itoa(i)
}
