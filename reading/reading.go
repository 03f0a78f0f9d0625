// Package reading defines the decoded results of instrument responses.
//
// A Reading is either structured (the meter's measurement decoder) or
// opaque (raw response bytes from a SCPI instrument). Renderers consume
// readings through the accessors only.
package reading

import (
	"github.com/benchlab/benchlink/apperr"
)

// Reading is a decoded instrument response.
type Reading interface {
	// CSV renders the reading as a fixed-order comma-separated line.
	// Reading types without a structured decode return a general error.
	CSV() (string, error)

	// Raw returns the untouched response bytes.
	Raw() []byte

	// String returns a best-effort UTF-8 view of the response bytes.
	String() string
}

// RawReading wraps an opaque response payload.
type RawReading struct {
	data []byte
}

// NewRaw wraps response bytes in an opaque reading.
func NewRaw(data []byte) *RawReading {
	return &RawReading{data: data}
}

// CSV is unsupported for opaque readings.
func (r *RawReading) CSV() (string, error) {
	return "", apperr.General("raw reading does not support CSV format")
}

// Raw returns the response bytes unchanged.
func (r *RawReading) Raw() []byte { return r.data }

// String returns a best-effort UTF-8 view of the response bytes.
func (r *RawReading) String() string { return string(r.data) }
