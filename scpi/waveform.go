package scpi

import (
	"strings"

	"github.com/benchlab/benchlink/apperr"
)

// Waveform is one of the generator's built-in output shapes.
type Waveform string

// The closed set of waveforms the PeakTech 4055MV accepts.
const (
	WaveformSin    Waveform = "Sin"
	WaveformSqu    Waveform = "Squ"
	WaveformRamp   Waveform = "Ramp"
	WaveformNoise  Waveform = "Noise"
	WaveformPPulse Waveform = "PPulse"
	WaveformNPulse Waveform = "NPulse"
	WaveformStair  Waveform = "Stair"
	WaveformHSine  Waveform = "HSine"
	WaveformLSine  Waveform = "LSine"
	WaveformRexp   Waveform = "Rexp"
	WaveformRLog   Waveform = "RLog"
	WaveformTang   Waveform = "Tang"
	WaveformSinc   Waveform = "Sinc"
	WaveformRound  Waveform = "Round"
	WaveformCard   Waveform = "Card"
	WaveformQuake  Waveform = "Quake"
)

var waveforms = map[string]Waveform{
	"Sin":    WaveformSin,
	"Squ":    WaveformSqu,
	"Ramp":   WaveformRamp,
	"Noise":  WaveformNoise,
	"PPulse": WaveformPPulse,
	"NPulse": WaveformNPulse,
	"Stair":  WaveformStair,
	"HSine":  WaveformHSine,
	"LSine":  WaveformLSine,
	"Rexp":   WaveformRexp,
	"RLog":   WaveformRLog,
	"Tang":   WaveformTang,
	"Sinc":   WaveformSinc,
	"Round":  WaveformRound,
	"Card":   WaveformCard,
	"Quake":  WaveformQuake,
}

// ApplyCommand configures the generator output. Frequency, amplitude and
// offset are optional positional fields; an empty string means the field was
// not supplied. The fields depend on each other in order: amplitude requires
// a frequency, offset requires an amplitude.
type ApplyCommand struct {
	Waveform  Waveform
	Frequency string
	Amplitude string
	Offset    string
}

// Bytes re-serializes the command as the generator expects it, e.g.
//
//	Apply:Sin 10kHz, 1.2, 0.5\n
//
// with only the supplied optional fields present.
func (c ApplyCommand) Bytes() []byte {
	var b strings.Builder
	b.WriteString("Apply:")
	b.WriteString(string(c.Waveform))
	if c.Frequency != "" {
		b.WriteString(" ")
		b.WriteString(c.Frequency)
	}
	if c.Amplitude != "" {
		b.WriteString(", ")
		b.WriteString(c.Amplitude)
	}
	if c.Offset != "" {
		b.WriteString(", ")
		b.WriteString(c.Offset)
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// IsQuery is always false; the generator dialect is write-only.
func (c ApplyCommand) IsQuery() bool { return false }

// ResetCommand issues the SCPI *RST.
type ResetCommand struct{}

// Bytes returns the reset command text.
func (ResetCommand) Bytes() []byte { return []byte("*RST\n") }

// IsQuery is always false; the generator dialect is write-only.
func (ResetCommand) IsQuery() bool { return false }

// passthrough is the generator's escape hatch for literal command text.
type passthrough string

func (p passthrough) Bytes() []byte {
	s := string(p)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return []byte(s)
}

func (p passthrough) IsQuery() bool { return false }

// ParseGenerator is the Dialect for the PeakTech 4055MV function generator.
// Tokens dispatch by prefix: "Apply:" parses the structured apply grammar,
// the exact literal "Reset" becomes *RST, and anything else passes through
// with an optional "Raw:" prefix stripped.
func ParseGenerator(token string) (Command, error) {
	switch {
	case strings.HasPrefix(token, "Apply:"):
		return parseApply(token)
	case token == "Reset":
		return ResetCommand{}, nil
	default:
		return passthrough(strings.TrimPrefix(token, "Raw:")), nil
	}
}

func parseApply(token string) (Command, error) {
	parts := strings.Split(token[len("Apply:"):], ",")
	if len(parts) > 3 {
		return nil, apperr.Command("too many parameters for Apply command")
	}

	head := strings.SplitN(strings.TrimSpace(parts[0]), " ", 2)
	name := strings.TrimSpace(head[0])
	if name == "" {
		return nil, apperr.Command("waveform type is required for Apply command")
	}
	wf, ok := waveforms[name]
	if !ok {
		return nil, apperr.Command("unknown waveform: %s", name)
	}

	cmd := ApplyCommand{Waveform: wf}
	if len(head) == 2 {
		cmd.Frequency = strings.TrimSpace(head[1])
	}
	if len(parts) >= 2 {
		cmd.Amplitude = strings.TrimSpace(parts[1])
	}
	if len(parts) >= 3 {
		cmd.Offset = strings.TrimSpace(parts[2])
	}

	if cmd.Amplitude != "" && cmd.Frequency == "" {
		return nil, apperr.Command("amplitude requires a frequency")
	}
	if cmd.Offset != "" && cmd.Amplitude == "" {
		return nil, apperr.Command("offset requires an amplitude")
	}
	return cmd, nil
}
