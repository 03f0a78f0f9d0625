package instrument

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config holds the driver configuration shared by both transports.
type Config struct {
	// Logger receives session and transfer logs (optional)
	Logger logrus.FieldLogger

	// ReadBufferSize is the buffer size for bulk IN transfers
	ReadBufferSize int
}

func defaultConfig() Config {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return Config{
		Logger:         log,
		ReadBufferSize: 2048,
	}
}

// Option is a functional option for configuring a driver.
type Option func(*Config)

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	dev, err := instrument.OpenMeter(path, instrument.WithLogger(log))
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithReadBufferSize sets the buffer size for bulk IN transfers.
// Default is 2048 bytes.
func WithReadBufferSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ReadBufferSize = size
		}
	}
}
