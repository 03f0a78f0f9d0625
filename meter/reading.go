package meter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benchlab/benchlink/reading"
)

// Reading is a decoded UT-161D measurement.
type Reading struct {
	raw []byte

	// Mode is the measurement function name from the mode table
	Mode string

	// Range is the single-character range selector
	Range string

	// DisplayValue is the trimmed ASCII display content
	DisplayValue string

	// Overload reports an out-of-range sentinel on the display
	Overload bool

	// NCV reports a non-contact voltage sentinel on the display
	NCV bool

	// DecimalValue is the parsed display value. Nil when the display shows
	// an overload or NCV sentinel, or text that does not parse as a number.
	DecimalValue *float64

	// DisplayUnit is the physical unit resolved from (Mode, Range)
	DisplayUnit string

	// Progress is the two-digit bar-graph value
	Progress uint16

	Max  bool
	Min  bool
	Hold bool
	Rel  bool

	Auto      bool
	Battery   bool
	HWWarning bool

	DC          bool
	PeakMax     bool
	PeakMin     bool
	BarPolarity bool
}

var _ reading.Reading = (*Reading)(nil)

// DecodeReading decodes a response frame body into a measurement.
// Bodies shorter than MinReadingSize carry no measurement and return
// (nil, false); that is not an error.
//
// Body layout: byte 0 mode index, byte 1 range selector, bytes 2-8 ASCII
// display value, bytes 9-10 bar-graph digits, bytes 11-13 flag bits.
func DecodeReading(body []byte) (*Reading, bool) {
	if len(body) < MinReadingSize {
		return nil, false
	}

	mode := "Unknown"
	if int(body[0]) < len(modeNames) {
		mode = modeNames[body[0]]
	}
	rng := string(body[1:2])
	display := strings.TrimSpace(string(body[2:9]))

	r := &Reading{
		raw:          append([]byte(nil), body...),
		Mode:         mode,
		Range:        rng,
		DisplayValue: display,
		Overload:     isOverload(display),
		NCV:          isNCV(display),
		Progress:     uint16(body[9])*10 + uint16(body[10]),
	}

	if !r.Overload && !r.NCV {
		if v, err := strconv.ParseFloat(display, 64); err == nil {
			r.DecimalValue = &v
		}
	}

	unit, ok := unitFor(mode, rng)
	if !ok {
		unit = "Unknown"
	}
	r.DisplayUnit = unit

	r.Rel = body[11]&0x01 != 0
	r.Hold = body[11]&0x02 != 0
	r.Min = body[11]&0x04 != 0
	r.Max = body[11]&0x08 != 0

	r.HWWarning = body[12]&0x01 != 0
	r.Battery = body[12]&0x02 != 0
	r.Auto = body[12]&0x04 != 0

	r.BarPolarity = body[13]&0x01 != 0
	r.PeakMin = body[13]&0x02 != 0
	r.PeakMax = body[13]&0x04 != 0
	r.DC = body[13]&0x08 != 0

	return r, true
}

// CSV renders the measurement as a fixed-order comma-separated line:
//
//	mode,range,display,overload,ncv,decimal,unit,progress,max,min,hold,rel,
//	auto,battery,hwwarning,dc,peak_max,peak_min,bar_polarity
//
// An absent decimal value renders as the literal None, never as an empty
// field.
func (r *Reading) CSV() (string, error) {
	decimal := "None"
	if r.DecimalValue != nil {
		decimal = strconv.FormatFloat(*r.DecimalValue, 'g', -1, 64)
	}
	return fmt.Sprintf("%s,%s,%s,%t,%t,%s,%s,%d,%t,%t,%t,%t,%t,%t,%t,%t,%t,%t,%t",
		r.Mode,
		r.Range,
		r.DisplayValue,
		r.Overload,
		r.NCV,
		decimal,
		r.DisplayUnit,
		r.Progress,
		r.Max,
		r.Min,
		r.Hold,
		r.Rel,
		r.Auto,
		r.Battery,
		r.HWWarning,
		r.DC,
		r.PeakMax,
		r.PeakMin,
		r.BarPolarity,
	), nil
}

// Raw returns the undecoded response body.
func (r *Reading) Raw() []byte { return r.raw }

// String returns a best-effort UTF-8 view of the response body.
func (r *Reading) String() string { return string(r.raw) }
