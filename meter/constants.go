package meter

// Frame structure constants for the UT-161D wire protocol.
const (
	// SyncByte1 is the first sync byte of every frame (0xAB)
	SyncByte1 = 0xAB

	// SyncByte2 is the second sync byte of every frame (0xCD)
	SyncByte2 = 0xCD

	// commandMarker is the third header byte of every outgoing command frame
	commandMarker = 0x03

	// OpcodeOffset is added to the opcode before it is split into the two
	// trailing bytes of the command frame
	OpcodeOffset = 379

	// ChecksumSize is the size of the trailing big-endian checksum
	ChecksumSize = 2

	// ReportSize is the fixed HID input report size. The first byte of each
	// report is reserved and carries no frame data.
	ReportSize = 64

	// MinReadingSize is the minimum response body length that decodes into a
	// measurement. Shorter bodies yield no reading.
	MinReadingSize = 14
)

// Opcode values for the instrument functions the meter accepts.
const (
	// OpMeasure requests the current measurement. This is the only opcode
	// the meter answers with a response frame.
	OpMeasure Opcode = 94

	// OpMinMax enables min/max recording
	OpMinMax Opcode = 65

	// OpNotMinMax leaves min/max recording
	OpNotMinMax Opcode = 66

	// OpRange steps the manual range
	OpRange Opcode = 70

	// OpAuto returns to auto-ranging
	OpAuto Opcode = 71

	// OpRel toggles relative measurement
	OpRel Opcode = 72

	// OpSelect2 is the secondary function select button
	OpSelect2 Opcode = 73

	// OpHold toggles display hold
	OpHold Opcode = 74

	// OpLamp toggles the backlight
	OpLamp Opcode = 75

	// OpSelect1 is the primary function select button
	OpSelect1 Opcode = 76

	// OpPMinMax enables peak min/max recording
	OpPMinMax Opcode = 77

	// OpNotPeak leaves peak recording
	OpNotPeak Opcode = 78
)
