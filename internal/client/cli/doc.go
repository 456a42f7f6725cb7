// Package cli wires the character client together.
//
// NewApp builds the logger, the optional tracer provider, the remote fetcher
// and the store-backed CharacterService from a config.Config. App.Run then
// shows the characters screen once: interactively when stdout is a terminal,
// or as plain text otherwise (or when Config.Plain is set).
//
// Load failures never surface as errors from Run; they are logged with their
// stage and the screen shows "No data available".
package cli
