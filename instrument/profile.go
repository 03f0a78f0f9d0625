package instrument

import "github.com/benchlab/benchlink/scpi"

// Profile bundles the per-model USB transfer parameters and the command
// dialect an instrument speaks.
type Profile struct {
	Name            string
	InterfaceNumber int
	BulkInAddress   byte
	BulkOutAddress  byte
	Dialect         scpi.Dialect
}

// GenericSCPI is the profile for instruments that accept literal SCPI text
// on the first interface's default bulk endpoint pair.
func GenericSCPI() Profile {
	return Profile{
		Name:            "scpi-usb",
		InterfaceNumber: 0,
		BulkInAddress:   0x81,
		BulkOutAddress:  0x01,
		Dialect:         scpi.ParseRaw,
	}
}

// Peaktech4055MV is the profile for the PeakTech 4055MV waveform generator.
func Peaktech4055MV() Profile {
	return Profile{
		Name:            "peaktech4055mv",
		InterfaceNumber: 0,
		BulkInAddress:   0x82,
		BulkOutAddress:  0x02,
		Dialect:         scpi.ParseGenerator,
	}
}
