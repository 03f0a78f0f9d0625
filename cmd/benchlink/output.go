package main

import (
	"fmt"
	"io"

	"github.com/benchlab/benchlink/apperr"
	"github.com/benchlab/benchlink/reading"
)

// writeReadings renders a batch's readings. csv prints one structured line
// per reading, raw prints a hex dump followed by the best-effort text.
func writeReadings(w io.Writer, readings []reading.Reading, format string) error {
	switch format {
	case "csv":
		for _, r := range readings {
			line, err := r.CSV()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return apperr.General("failed to write output: %v", err)
			}
		}
	case "raw":
		for _, r := range readings {
			if _, err := fmt.Fprintf(w, "% X\n%s\n", r.Raw(), r.String()); err != nil {
				return apperr.General("failed to write output: %v", err)
			}
		}
	default:
		return apperr.Command("unknown output format: %s", format)
	}
	return nil
}
