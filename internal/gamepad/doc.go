// Package gamepad holds the raw controller state fed by the relay.
//
// # Store
//
// Store is a sparse table of Device records keyed by source index. Records
// are created on first mention by any message and are never removed; a
// source that goes quiet simply stops advancing its Timestamp.
//
// Three kinds of message mutate it:
//
//   - ApplyRoster renames sources. It never touches Timestamp.
//   - ApplyFocus moves the spectator focus. No source needs to exist there.
//   - ApplyControl writes mapped fields and bumps Timestamp by one.
//
// Timestamp is the only change signal downstream. Nothing compares values,
// so two identical control updates still count as two changes.
//
// # Field table
//
//	jm  -> button 0        th -> button 4 (-th), button 5 (+th)
//	bs  -> button 1        st|yw -> axis 0
//	hb  -> button 2        pt -> axis 1
//	us  -> button 3        rl -> axis 2
//
// Values pass through unvalidated.
package gamepad
