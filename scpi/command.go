// Package scpi implements the text command dialects for USB bench
// instruments: raw SCPI passthrough and the PeakTech 4055MV waveform
// generator grammar.
package scpi

// Command is a wire-ready instrument command.
type Command interface {
	// Bytes returns the newline-terminated command text.
	Bytes() []byte

	// IsQuery reports whether the instrument answers this command with a
	// response payload.
	IsQuery() bool
}

// Dialect turns a user-supplied command token into a wire command.
// Malformed tokens fail with a command error before any I/O takes place.
type Dialect func(token string) (Command, error)
