// Package relay speaks to the match relay that publishes player input.
//
// The relay pushes JSON text frames over a websocket. Each frame is one of:
//
//	{"players": [{"index": 0, "name": "Alice"}]}    roster
//	{"spectate": 1}                                 focus
//	{"idx": 0, "ctrl": {"jm": 1, "th": 0.5}}        control
//
// Decode turns a frame into a Message and Apply routes it onto a
// gamepad.Store. Frames that fail to decode are logged and dropped inside
// Client.Stream; they never reach the store.
//
// Client.Stream serves a single connection. Reconnecting is the caller's
// job (see app.StartRelay).
package relay
