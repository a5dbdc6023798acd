// Package ui provides padlink's terminal overlay built on Bubble Tea.
//
// # Architecture Overview
//
// Model owns the gamepad store. Relay messages arrive as RelayMsg values sent
// into the program and are applied in Update. The reconciliation loop runs on
// the same goroutine: frameScheduler turns each next-frame request into a
// tea.Tick command, and the resulting frameMsg runs the loop's tick. Nothing
// in the store needs a lock.
//
// The board type is the loop's notification sink. It keeps the last reported
// value of every labelled button and axis per canonical position, and the
// renderers draw from it:
//
//   - header.go: link status badge, mode, pad count, frame count
//   - panels.go: one bordered panel per position with button chips,
//     trigger and stick bars, and any extra controls
//   - help.go: keyboard shortcut overlay
//
// # Keys
//
//   - m: toggle between all and focused (spectator) mode
//   - space: pause or resume the reconciliation loop
//   - c: compact panels
//   - T: cycle theme
//   - h/?: help
//   - q/ctrl+c: quit
//
// Theme and mode choices are persisted through the prefs package.
package ui
