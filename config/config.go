// Package config loads the benchlink YAML configuration: logging options
// and a named inventory of bench instruments with their bus addresses.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benchlab/benchlink/apperr"
)

// Known device types.
const (
	DeviceUT161D         = "ut161d"
	DeviceGenericSCPI    = "scpi-usb"
	DevicePeaktech4055MV = "peaktech4055mv"
)

type Config struct {
	Log     LogConfig         `yaml:"log"`
	Devices map[string]Device `yaml:"devices"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Device describes one configured instrument. HIDPath addresses HID
// devices, USBAddress ("vid:pid" in hex) addresses USB bulk devices.
// The transfer fields are optional overrides for the pointer-is-absent
// profile defaults.
type Device struct {
	Type            string `yaml:"type"`
	HIDPath         string `yaml:"hid_path,omitempty"`
	USBAddress      string `yaml:"usb_address,omitempty"`
	InterfaceNumber *int   `yaml:"interface,omitempty"`
	BulkInAddress   *uint8 `yaml:"bulk_in,omitempty"`
	BulkOutAddress  *uint8 `yaml:"bulk_out,omitempty"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.General("failed to read config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, apperr.General("failed to parse config file: %v", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Devices: map[string]Device{},
	}
}
