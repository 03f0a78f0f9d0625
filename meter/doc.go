// Package meter implements the UT-161D multimeter wire protocol.
//
// # Protocol Overview
//
// The meter speaks a framed binary protocol over HID. Every frame starts
// with the sync sequence 0xAB 0xCD.
//
// Commands are fixed-size:
//
//	Write:    [len][0xAB][0xCD][0x03][opcode_low][adjusted_high][adjusted_low]
//
// where the adjusted value is the opcode's low byte plus OpcodeOffset, and
// len is the 1-byte total length prefix the HID transport requires.
//
// Responses arrive as a stream of 64-byte HID reports (first byte reserved)
// that reassemble into:
//
//	Response: [0xAB][0xCD][len][body...][checksum_hi][checksum_lo]
//
// The checksum is the 16-bit truncated sum of the body bytes, big-endian.
// A frame whose checksum does not match is rejected.
//
// # Usage
//
// Parse a command token, frame it, and decode the response:
//
//	cmd, err := meter.ParseCommand("Measure")
//	frame := meter.WithLengthPrefix(cmd.Frame())
//	// write frame, then feed report payloads into a FrameDecoder
//	var dec meter.FrameDecoder
//	body, done, err := dec.Feed(report[1:])
//	if done {
//	    r, ok := meter.DecodeReading(body)
//	    // ...
//	}
//
// Only the Measure command expects a response; all other commands are
// button-press style writes.
package meter
