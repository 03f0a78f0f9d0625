package instrument

import (
	"fmt"

	"github.com/google/gousb"
	"github.com/sstallion/go-hid"

	"github.com/benchlab/benchlink/apperr"
)

// HIDDeviceInfo identifies one enumerated HID device.
type HIDDeviceInfo struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
	Serial       string
}

func (i HIDDeviceInfo) String() string {
	return fmt.Sprintf("%04x:%04x %s %s %s", i.VendorID, i.ProductID, i.Path, i.Manufacturer, i.Product)
}

// ListHID enumerates every HID device visible on the host.
func ListHID() ([]HIDDeviceInfo, error) {
	if err := hid.Init(); err != nil {
		return nil, apperr.Hid("failed to initialize HID API: %v", err)
	}
	defer hid.Exit()

	var devices []HIDDeviceInfo
	err := hid.Enumerate(hid.VendorIDAny, hid.ProductIDAny, func(info *hid.DeviceInfo) error {
		devices = append(devices, HIDDeviceInfo{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Manufacturer: info.MfrStr,
			Product:      info.ProductStr,
			Serial:       info.SerialNbr,
		})
		return nil
	})
	if err != nil {
		return nil, apperr.Hid("failed to enumerate HID devices: %v", err)
	}
	return devices, nil
}

// USBDeviceInfo identifies one enumerated USB device.
type USBDeviceInfo struct {
	// Address is the "vid:pid" form accepted by device configuration.
	Address string
	Bus     int
	Device  int
}

func (i USBDeviceInfo) String() string {
	return fmt.Sprintf("%s bus %03d device %03d", i.Address, i.Bus, i.Device)
}

// ListUSB enumerates every USB device descriptor visible on the host
// without opening any device.
func ListUSB() ([]USBDeviceInfo, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	var devices []USBDeviceInfo
	_, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		devices = append(devices, USBDeviceInfo{
			Address: fmt.Sprintf("%s:%s", desc.Vendor, desc.Product),
			Bus:     desc.Bus,
			Device:  desc.Address,
		})
		return false
	})
	if err != nil {
		return nil, apperr.Usb("failed to enumerate USB devices: %v", err)
	}
	return devices, nil
}
