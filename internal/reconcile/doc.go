// Package reconcile turns the push-fed gamepad.Store into per-frame Sink
// notifications.
//
// Each tick derives the canonical device list (every present source, or the
// focused one), reports the roster when its membership changed, and reports a
// device's full button and axis set when its Timestamp differs from the one
// recorded for the same list position on the previous tick. A zero Timestamp
// means the source has no control state yet and is never reported.
//
// The loop is RUNNING or STOPPED. It re-arms itself through the Scheduler
// after every tick while running; at most one frame callback is ever armed.
package reconcile
