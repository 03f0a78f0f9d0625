// Package instrument contains the transport drivers for bench instruments.
//
// Two drivers share one contract: a batch of command tokens goes in, the
// readings the batch produced come out. Meter drives the UT-161D multimeter
// over its HID interface with a framed binary protocol; BulkDevice drives
// SCPI-speaking instruments over USB bulk endpoints with a text dialect.
//
// # Batches
//
// Every token in a batch is parsed before any I/O happens, so a malformed
// token never leaves the bus in a half-executed state. Tokens then execute
// strictly in order; the first transfer failure aborts the batch and
// discards any readings collected so far.
//
// # Usage
//
//	dev, err := instrument.Open(cfg.Devices["dmm"],
//	    instrument.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	defer dev.Close()
//
//	readings, err := dev.Command(ctx, []string{"Measure"})
package instrument
