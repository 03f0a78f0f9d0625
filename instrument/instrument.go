package instrument

import (
	"context"

	"github.com/benchlab/benchlink/apperr"
	"github.com/benchlab/benchlink/config"
	"github.com/benchlab/benchlink/reading"
)

// Instrument is an open bench instrument session.
type Instrument interface {
	// Command executes a batch of command tokens strictly in order and
	// returns the readings the batch produced. A nil slice means the batch
	// produced none.
	Command(ctx context.Context, tokens []string) ([]reading.Reading, error)

	// Info returns a human-readable device description.
	Info() string

	// Close releases the device and any bus resources it claimed.
	Close() error
}

var (
	_ Instrument = (*Meter)(nil)
	_ Instrument = (*BulkDevice)(nil)
)

// Open opens the instrument a configuration entry describes. The entry's
// optional interface and endpoint fields override the profile defaults.
func Open(dev config.Device, opts ...Option) (Instrument, error) {
	switch dev.Type {
	case config.DeviceUT161D:
		return OpenMeter(dev.HIDPath, opts...)
	case config.DeviceGenericSCPI:
		return OpenBulk(dev.USBAddress, overrideProfile(GenericSCPI(), dev), opts...)
	case config.DevicePeaktech4055MV:
		return OpenBulk(dev.USBAddress, overrideProfile(Peaktech4055MV(), dev), opts...)
	default:
		return nil, apperr.Command("unknown device type: %s", dev.Type)
	}
}

func overrideProfile(p Profile, dev config.Device) Profile {
	if dev.InterfaceNumber != nil {
		p.InterfaceNumber = *dev.InterfaceNumber
	}
	if dev.BulkInAddress != nil {
		p.BulkInAddress = *dev.BulkInAddress
	}
	if dev.BulkOutAddress != nil {
		p.BulkOutAddress = *dev.BulkOutAddress
	}
	return p
}
