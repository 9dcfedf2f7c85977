// Package app is the composition root for pantry.
//
// Setup loads the TOML config, opens the slog file logger and builds the
// dummyjson client. Run hands those to the Bubble Tea UI and blocks until
// the user quits or ctx is cancelled. The headless CLI modes in cmd/pantry
// call Setup directly and drive a listing.Controller instead of the UI.
//
//	config.Load ──> logging.Open ──> dummyjson.NewClient ──> ui.Run
//
// Errors from any step are wrapped and returned; nothing here retries.
package app
