package instrument

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/gousb"
	"github.com/sirupsen/logrus"

	"github.com/benchlab/benchlink/apperr"
	"github.com/benchlab/benchlink/reading"
	"github.com/benchlab/benchlink/scpi"
)

// bulkOut and bulkIn are the endpoint surfaces the driver uses. gousb's
// endpoint types satisfy them; tests inject fakes.
type bulkOut interface {
	WriteContext(ctx context.Context, buf []byte) (int, error)
}

type bulkIn interface {
	ReadContext(ctx context.Context, buf []byte) (int, error)
}

// BulkDevice drives a SCPI-speaking instrument over a pair of USB bulk
// endpoints. The command dialect and transfer parameters come from the
// device profile.
//
// BulkDevice is not safe for concurrent use; run one batch at a time.
type BulkDevice struct {
	profile Profile
	config  Config
	info    string

	out bulkOut
	in  bulkIn

	// hardware handles, nil when the device was built around injected
	// endpoints
	intf   *gousb.Interface
	usbCfg *gousb.Config
	dev    *gousb.Device
	usbCtx *gousb.Context
}

// parseUSBAddress splits a "vid:pid" address into its hex halves.
func parseUSBAddress(address string) (gousb.ID, gousb.ID, error) {
	parts := strings.Split(address, ":")
	if len(parts) != 2 {
		return 0, 0, apperr.Usb("invalid USB address %q, expected vid:pid", address)
	}
	vid, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return 0, 0, apperr.Usb("invalid vendor id in USB address %q: %v", address, err)
	}
	pid, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return 0, 0, apperr.Usb("invalid product id in USB address %q: %v", address, err)
	}
	return gousb.ID(vid), gousb.ID(pid), nil
}

// OpenBulk opens the USB device at a "vid:pid" address, claims the
// profile's interface on configuration 1 and resolves its bulk endpoint
// pair. Every failure path releases whatever was acquired before it.
func OpenBulk(address string, profile Profile, opts ...Option) (*BulkDevice, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	vid, pid, err := parseUSBAddress(address)
	if err != nil {
		return nil, err
	}

	usbCtx := gousb.NewContext()

	dev, err := usbCtx.OpenDeviceWithVIDPID(vid, pid)
	if err != nil {
		usbCtx.Close()
		return nil, apperr.Usb("failed to open USB device %s: %v", address, err)
	}
	if dev == nil {
		usbCtx.Close()
		return nil, apperr.Usb("USB device %s not found", address)
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		usbCtx.Close()
		return nil, apperr.Usb("failed to detach kernel driver from %s: %v", address, err)
	}

	usbCfg, err := dev.Config(1)
	if err != nil {
		dev.Close()
		usbCtx.Close()
		return nil, apperr.Usb("failed to select configuration 1 on %s: %v", address, err)
	}

	intf, err := usbCfg.Interface(profile.InterfaceNumber, 0)
	if err != nil {
		usbCfg.Close()
		dev.Close()
		usbCtx.Close()
		return nil, apperr.Usb("failed to claim interface %d on %s: %v", profile.InterfaceNumber, address, err)
	}

	out, err := intf.OutEndpoint(int(profile.BulkOutAddress & 0x0F))
	if err != nil {
		intf.Close()
		usbCfg.Close()
		dev.Close()
		usbCtx.Close()
		return nil, apperr.Usb("failed to open OUT endpoint 0x%02X on %s: %v", profile.BulkOutAddress, address, err)
	}

	in, err := intf.InEndpoint(int(profile.BulkInAddress & 0x0F))
	if err != nil {
		intf.Close()
		usbCfg.Close()
		dev.Close()
		usbCtx.Close()
		return nil, apperr.Usb("failed to open IN endpoint 0x%02X on %s: %v", profile.BulkInAddress, address, err)
	}

	d := &BulkDevice{
		profile: profile,
		config:  cfg,
		info:    bulkInfo(dev),
		out:     out,
		in:      in,
		intf:    intf,
		usbCfg:  usbCfg,
		dev:     dev,
		usbCtx:  usbCtx,
	}
	cfg.Logger.WithFields(logrus.Fields{
		"address": address,
		"profile": profile.Name,
		"device":  d.info,
	}).Info("usb session open")
	return d, nil
}

// NewBulkDevice wraps an injected endpoint pair. Used by tests.
func NewBulkDevice(out bulkOut, in bulkIn, profile Profile, opts ...Option) *BulkDevice {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &BulkDevice{
		profile: profile,
		config:  cfg,
		info:    profile.Name,
		out:     out,
		in:      in,
	}
}

func bulkInfo(dev *gousb.Device) string {
	mfr, err := dev.Manufacturer()
	if err != nil {
		mfr = "?"
	}
	product, err := dev.Product()
	if err != nil {
		product = "?"
	}
	return fmt.Sprintf("%s %s (%s:%s)", mfr, product, dev.Desc.Vendor, dev.Desc.Product)
}

// Info returns the device's manufacturer and product strings with its
// vid:pid address.
func (d *BulkDevice) Info() string { return d.info }

// Command executes a batch of dialect tokens. All tokens are parsed up
// front; a malformed token fails the batch before any transfer. Each query
// token reads one response, returned as an opaque raw reading.
func (d *BulkDevice) Command(ctx context.Context, tokens []string) ([]reading.Reading, error) {
	commands := make([]scpi.Command, 0, len(tokens))
	for _, token := range tokens {
		cmd, err := d.profile.Dialect(token)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}

	var readings []reading.Reading
	for i, cmd := range commands {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}

		wire := cmd.Bytes()
		d.config.Logger.WithFields(logrus.Fields{
			"token": tokens[i],
			"wire":  strings.TrimSuffix(string(wire), "\n"),
		}).Debug("write command")

		if _, err := d.out.WriteContext(ctx, wire); err != nil {
			return nil, apperr.Command("failed to send command %q: %v", tokens[i], err)
		}

		if !cmd.IsQuery() {
			continue
		}

		buf := make([]byte, d.config.ReadBufferSize)
		n, err := d.in.ReadContext(ctx, buf)
		if err != nil {
			return nil, apperr.Command("failed to read response for command %q: %v", tokens[i], err)
		}
		readings = append(readings, reading.NewRaw(buf[:n]))
	}
	return readings, nil
}

// Close releases the claimed interface and every handle under it.
func (d *BulkDevice) Close() error {
	var firstErr error
	if d.intf != nil {
		d.intf.Close()
	}
	if d.usbCfg != nil {
		if err := d.usbCfg.Close(); err != nil {
			firstErr = err
		}
	}
	if d.dev != nil {
		if err := d.dev.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if d.usbCtx != nil {
		if err := d.usbCtx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return apperr.Usb("failed to close USB device: %v", firstErr)
	}
	d.config.Logger.Info("usb session closed")
	return nil
}
