// Package linkstate tracks the health of the relay connection.
//
// The relay reader goroutine writes it and the UI reads a Snapshot on each
// frame, so unlike gamepad.Store it is guarded by a mutex. It carries no
// controller state; that stays on the UI goroutine.
//
// A link is considered offline after two consecutive failed connections.
// A clean disconnect (nil error) resets nothing and counts nothing.
package linkstate
