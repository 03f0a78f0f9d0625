package scpi

import "strings"

// Raw is the passthrough dialect: the token is the literal command text.
type Raw string

// Bytes returns the command text with a trailing newline appended if absent.
func (r Raw) Bytes() []byte {
	s := string(r)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return []byte(s)
}

// IsQuery reports whether the command text contains a '?', the SCPI query
// marker.
func (r Raw) IsQuery() bool {
	return strings.Contains(string(r), "?")
}

// ParseRaw is the Dialect for generic SCPI instruments. Every token is a
// valid command.
func ParseRaw(token string) (Command, error) {
	return Raw(token), nil
}
