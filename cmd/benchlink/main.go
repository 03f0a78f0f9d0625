// Command benchlink talks to bench instruments from the shell: the UNI-T
// UT-161D multimeter over HID and SCPI instruments over USB bulk transfers.
//
// Each positional argument is one command token; the whole argument list
// runs as a single batch against the selected device.
//
//	benchlink -type ut161d -hid /dev/hidraw3 Measure
//	benchlink -config bench.yaml -device gen "Apply:Sin 10kHz, 1.2" Reset
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/benchlab/benchlink/apperr"
	"github.com/benchlab/benchlink/config"
	"github.com/benchlab/benchlink/instrument"
)

var Version = "1.0.0"

var (
	configFile  = flag.String("config", "", "path to a YAML config file")
	deviceName  = flag.String("device", "", "named device entry from the config file")
	deviceType  = flag.String("type", "", "device type: ut161d, scpi-usb or peaktech4055mv")
	hidPath     = flag.String("hid", "", "HID device path for ut161d")
	usbAddress  = flag.String("usb", "", "USB address as vid:pid for SCPI devices")
	ifaceNumber = flag.Int("interface", -1, "USB interface number override")
	bulkIn      = flag.Int("bulk-in", -1, "bulk IN endpoint address override")
	bulkOut     = flag.Int("bulk-out", -1, "bulk OUT endpoint address override")
	format      = flag.String("format", "csv", "output format: csv or raw")
	list        = flag.Bool("list", false, "list visible HID and USB devices and exit")
	verbose     = flag.Bool("verbose", false, "enable debug logging")
	showVersion = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("benchlink v%s\n", Version)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "benchlink: %v\n", err)
		os.Exit(apperr.ExitCode(err))
	}
}

func run() error {
	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log := setupLogger(cfg.Log)

	if *list {
		return listDevices(os.Stdout)
	}

	dev, err := selectDevice(cfg)
	if err != nil {
		return err
	}

	inst, err := instrument.Open(dev, instrument.WithLogger(log))
	if err != nil {
		return err
	}
	defer inst.Close()

	log.WithField("device", inst.Info()).Debug("device open")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	readings, err := inst.Command(ctx, flag.Args())
	if err != nil {
		return err
	}

	return writeReadings(os.Stdout, readings, *format)
}

// selectDevice resolves the target device from the named config entry and
// the command-line overrides, flags winning over the file.
func selectDevice(cfg *config.Config) (config.Device, error) {
	var dev config.Device
	if *deviceName != "" {
		entry, ok := cfg.Devices[*deviceName]
		if !ok {
			return dev, apperr.General("no device %q in config", *deviceName)
		}
		dev = entry
	}

	if *deviceType != "" {
		dev.Type = *deviceType
	}
	if *hidPath != "" {
		dev.HIDPath = *hidPath
	}
	if *usbAddress != "" {
		dev.USBAddress = *usbAddress
	}
	if *ifaceNumber >= 0 {
		n := *ifaceNumber
		dev.InterfaceNumber = &n
	}
	if *bulkIn >= 0 {
		addr := uint8(*bulkIn)
		dev.BulkInAddress = &addr
	}
	if *bulkOut >= 0 {
		addr := uint8(*bulkOut)
		dev.BulkOutAddress = &addr
	}

	if dev.Type == "" {
		return dev, apperr.General("no device selected, use -device or -type")
	}
	return dev, nil
}

func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if *verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.SetOutput(os.Stderr)
	return log
}

func listDevices(w *os.File) error {
	hids, err := instrument.ListHID()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "HID devices:")
	for _, d := range hids {
		fmt.Fprintf(w, "  %s\n", d)
	}

	usbs, err := instrument.ListUSB()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "USB devices:")
	for _, d := range usbs {
		fmt.Fprintf(w, "  %s\n", d)
	}
	return nil
}
