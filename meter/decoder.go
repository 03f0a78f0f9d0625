package meter

import (
	"encoding/binary"

	"github.com/benchlab/benchlink/apperr"
)

type decodeState int

const (
	awaitSync1 decodeState = iota
	awaitSync2
	awaitLength
	awaitPayload
)

// FrameDecoder reassembles one meter response frame from a stream of byte
// chunks. The decoder carries its state across Feed calls so chunk
// boundaries can fall anywhere, including inside the sync sequence or the
// checksum. The zero value is ready to use.
//
// Frames are rejected, never silently accepted, when the trailing big-endian
// checksum disagrees with the running sum of the payload bytes.
type FrameDecoder struct {
	state decodeState
	buf   []byte
	index int
	sum   uint16
}

// Feed consumes chunk and returns the decoded frame body once the frame
// completes. done is false while more input is needed. Any bytes following
// a completed frame in the same chunk are discarded.
//
// Bytes before the first sync byte are discarded. A wrong byte after the
// first sync byte, a frame too short to carry its checksum, and a checksum
// mismatch are all hard HID errors; the decoder does not resynchronize.
func (d *FrameDecoder) Feed(chunk []byte) (body []byte, done bool, err error) {
	for _, b := range chunk {
		switch d.state {
		case awaitSync1:
			if b == SyncByte1 {
				d.state = awaitSync2
			}
		case awaitSync2:
			if b != SyncByte2 {
				d.reset()
				return nil, false, apperr.Hid("unexpected byte 0x%02X, expected sync byte 0x%02X", b, SyncByte2)
			}
			d.state = awaitLength
		case awaitLength:
			if int(b) < ChecksumSize {
				d.reset()
				return nil, false, apperr.Hid("frame length %d too short to carry a checksum", b)
			}
			d.buf = make([]byte, b)
			d.index = 0
			d.sum = 0
			d.state = awaitPayload
		case awaitPayload:
			d.buf[d.index] = b
			if d.index+ChecksumSize < len(d.buf) {
				d.sum += uint16(b)
			}
			d.index++
			if d.index == len(d.buf) {
				want := binary.BigEndian.Uint16(d.buf[len(d.buf)-ChecksumSize:])
				got := d.sum
				frame := d.buf
				d.reset()
				if got != want {
					return nil, false, apperr.Hid("checksum mismatch: calculated 0x%04X, frame carries 0x%04X", got, want)
				}
				return frame[:len(frame)-ChecksumSize], true, nil
			}
		}
	}
	return nil, false, nil
}

func (d *FrameDecoder) reset() {
	*d = FrameDecoder{}
}

// EncodeFrame builds a complete response frame around body, exactly as the
// instrument emits it:
//
//	[0xAB][0xCD][len][body...][checksum_hi][checksum_lo]
//
// where len covers the body plus the two checksum bytes. Used by tests and
// device simulators.
func EncodeFrame(body []byte) []byte {
	frame := make([]byte, 0, 3+len(body)+ChecksumSize)
	frame = append(frame, SyncByte1, SyncByte2, byte(len(body)+ChecksumSize))
	frame = append(frame, body...)
	sum := Sum16(body)
	return append(frame, byte(sum>>8), byte(sum))
}
