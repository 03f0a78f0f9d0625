package instrument

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/sstallion/go-hid"

	"github.com/benchlab/benchlink/apperr"
	"github.com/benchlab/benchlink/meter"
	"github.com/benchlab/benchlink/reading"
)

// Meter drives the UT-161D multimeter over its HID interface.
//
// Meter is not safe for concurrent use; run one batch at a time.
type Meter struct {
	port    io.ReadWriteCloser
	config  Config
	info    string
	ownsAPI bool
}

// OpenMeter opens the meter at the given HID path. The HID API is
// initialized for the session and released again by Close.
func OpenMeter(path string, opts ...Option) (*Meter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if path == "" {
		return nil, apperr.Hid("no HID path configured")
	}

	if err := hid.Init(); err != nil {
		return nil, apperr.Hid("failed to initialize HID API: %v", err)
	}

	dev, err := hid.OpenPath(path)
	if err != nil {
		_ = hid.Exit()
		return nil, apperr.Hid("failed to open HID device %s: %v", path, err)
	}

	m := &Meter{
		port:    dev,
		config:  cfg,
		info:    meterInfo(dev),
		ownsAPI: true,
	}
	cfg.Logger.WithFields(logrus.Fields{
		"path":   path,
		"device": m.info,
	}).Info("meter session open")
	return m, nil
}

// NewMeter wraps an already open port. Used by tests and by callers that
// manage the HID API lifetime themselves.
func NewMeter(port io.ReadWriteCloser, opts ...Option) *Meter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Meter{port: port, config: cfg, info: "UT-161D"}
}

func meterInfo(dev *hid.Device) string {
	mfr, err := dev.GetMfrStr()
	if err != nil {
		mfr = "?"
	}
	product, err := dev.GetProductStr()
	if err != nil {
		product = "?"
	}
	serial, err := dev.GetSerialNbr()
	if err != nil {
		serial = "?"
	}
	return fmt.Sprintf("%s %s (serial %s)", mfr, product, serial)
}

// Info returns the device's manufacturer, product and serial strings.
func (m *Meter) Info() string { return m.info }

// Command executes a batch of meter command tokens. All tokens are parsed
// up front; a malformed token fails the batch before any frame is written.
// Only Measure produces a reading.
func (m *Meter) Command(ctx context.Context, tokens []string) ([]reading.Reading, error) {
	commands := make([]meter.Command, 0, len(tokens))
	for _, token := range tokens {
		cmd, err := meter.ParseCommand(token)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}

	var readings []reading.Reading
	for _, cmd := range commands {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}

		frame := meter.WithLengthPrefix(cmd.Frame())
		m.config.Logger.WithFields(logrus.Fields{
			"command": cmd.Name,
			"frame":   fmt.Sprintf("% X", frame),
		}).Debug("write command frame")

		if _, err := m.port.Write(frame); err != nil {
			return nil, apperr.Command("failed to send command %q: %v", cmd.Name, err)
		}

		if !cmd.ExpectsResponse() {
			continue
		}

		body, err := m.readFrame(ctx)
		if err != nil {
			return nil, err
		}
		if r, ok := meter.DecodeReading(body); ok {
			readings = append(readings, r)
		} else {
			m.config.Logger.WithField("length", len(body)).Debug("response body carries no measurement")
		}
	}
	return readings, nil
}

// readFrame blocks on HID reports, discards each report's id byte and feeds
// the rest to the frame decoder until a complete frame arrives. There is no
// read timeout; cancellation happens via the context between reports.
func (m *Meter) readFrame(ctx context.Context) ([]byte, error) {
	var dec meter.FrameDecoder
	buf := make([]byte, meter.ReportSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}

		n, err := m.port.Read(buf)
		if err != nil {
			return nil, apperr.Hid("failed to read HID report: %v", err)
		}
		if n < 2 {
			continue
		}

		body, done, err := dec.Feed(buf[1:n])
		if err != nil {
			return nil, err
		}
		if done {
			return body, nil
		}
	}
}

// Close releases the device and, when this session initialized it, the HID
// API as well.
func (m *Meter) Close() error {
	err := m.port.Close()
	if m.ownsAPI {
		if exitErr := hid.Exit(); err == nil && exitErr != nil {
			err = exitErr
		}
	}
	if err != nil {
		return apperr.Hid("failed to close HID device: %v", err)
	}
	m.config.Logger.Info("meter session closed")
	return nil
}
