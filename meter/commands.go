package meter

import (
	"github.com/benchlab/benchlink/apperr"
)

// Opcode identifies a UT-161D instrument function.
type Opcode uint16

// commandOpcodes maps the human-readable command tokens to their opcodes.
var commandOpcodes = map[string]Opcode{
	"Measure":   OpMeasure,
	"MinMax":    OpMinMax,
	"NotMinMax": OpNotMinMax,
	"Range":     OpRange,
	"Auto":      OpAuto,
	"Rel":       OpRel,
	"Select2":   OpSelect2,
	"Hold":      OpHold,
	"Lamp":      OpLamp,
	"Select1":   OpSelect1,
	"PMinMax":   OpPMinMax,
	"NotPeak":   OpNotPeak,
}

// Command is a parsed meter command token, ready to frame.
type Command struct {
	// Name is the original command token
	Name string

	// Opcode is the instrument function to invoke
	Opcode Opcode
}

// ParseCommand resolves a command token against the meter's command set.
// Unknown tokens fail with a command error before any I/O takes place.
func ParseCommand(token string) (Command, error) {
	op, ok := commandOpcodes[token]
	if !ok {
		return Command{}, apperr.Command("unknown command: %s", token)
	}
	return Command{Name: token, Opcode: op}, nil
}

// ExpectsResponse reports whether the meter answers this command with a
// measurement frame. Only Measure does.
func (c Command) ExpectsResponse() bool {
	return c.Opcode == OpMeasure
}

// Frame builds the 6-byte command frame:
//
//	[0xAB][0xCD][0x03][opcode_low][adjusted_high][adjusted_low]
//
// The opcode is truncated to its low byte for position 4, then increased by
// OpcodeOffset before splitting into the high/low bytes of positions 5-6.
func (c Command) Frame() []byte {
	op := uint16(c.Opcode) & 0xFF
	adjusted := op + OpcodeOffset
	return []byte{
		SyncByte1,
		SyncByte2,
		commandMarker,
		byte(op),
		byte(adjusted >> 8),
		byte(adjusted),
	}
}

// WithLengthPrefix prepends the 1-byte total length the HID transport
// expects in front of every outgoing frame.
func WithLengthPrefix(frame []byte) []byte {
	buf := make([]byte, 0, 1+len(frame))
	buf = append(buf, byte(len(frame)))
	return append(buf, frame...)
}
