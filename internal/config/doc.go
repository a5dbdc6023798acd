// Package config loads padlink's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/padlink/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Fields
//
//	relay_addr = "127.0.0.1:8765"   # host:port or ws:// URL of the relay
//	relay_path = "/"                 # websocket path
//	mode       = "all"               # "all" or "focused"
//	frame_rate = 60                  # ticks per second, clamped to 1..240
//	log_dir    = "~/.local/share/padlink/logs"
//	log_level  = "info"              # debug, info, warn, error
//
// String values are trimmed; mode and log_level are lowercased. Tilde
// expansion is applied to log_dir. The mode string is validated later by
// reconcile.ParseMode so that a CLI flag can override a bad value.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors (wrapped as "parse config"). A
// missing file is not an error.
package config
