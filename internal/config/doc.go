// Package config loads pantry's optional TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pantry/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	base_url = "https://dummyjson.com"
//	request_timeout = "10s"
//	log_file = "~/.local/state/pantry/pantry.log"
//	log_level = "info"   # debug, info, warn, error
//	theme = "Nightfox"   # Nightfox, Kanagawa, Slate
//
// Every field is optional and surrounding whitespace is trimmed. Tilde
// expansion is applied to the config path and to log_file.
//
// # Error Handling
//
// A missing file is not an error. Load fails when the file cannot be read,
// is not valid TOML, carries a request_timeout that is not a positive Go
// duration, or names an unknown log_level. Theme names are not checked here;
// the UI falls back to its default palette for names it does not know.
package config
