// Package app is the composition root for padlink.
//
// # Overlay
//
// Run wires configuration, preferences, logging, the relay client and the
// UI together:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()      Read ~/.config/padlink/config.toml
//	       ├─────> prefs.Load()       Theme and last display mode
//	       ├─────> logging.New()      JSON log file under log_dir
//	       ├─────> relay.NewClient()  Websocket client for the relay
//	       ├─────> ui.New()           Model, gamepad.Store, reconcile.Loop
//	       ├─────> StartRelay()       Reconnecting stream goroutine
//	       └─────> Program.Run()      Blocks until quit or cancel
//
// The relay goroutine never touches the gamepad store. Decoded messages are
// sent into the Bubble Tea program and applied in Update, on the same
// goroutine that runs the reconciliation ticks.
//
// Mode is resolved from the --mode flag, then prefs, then config.
//
// # Reconnect
//
// StartRelay reopens the stream after every disconnect. The delay starts at
// one second and doubles per consecutive failure up to 30 seconds. A
// successful handshake resets the count. Link state is published through a
// linkstate.Store that the header reads.
//
// # Replay
//
// Replay reads a captured JSONL stream and runs one tick after each line,
// printing every roster, button and axis notification. It needs no terminal
// and no relay, which makes it the quickest way to see what the loop reports
// for a given message sequence.
package app
