package meter

// modeNames indexes the measurement mode reported in byte 0 of a response
// body. Out-of-range indices report as "Unknown".
var modeNames = [31]string{
	"ACV", "ACmV", "DCV", "DCmV", "Hz", "%", "OHM", "CONT", "DIDOE", "CAP",
	"°C", "°F", "DCuA", "ACuA", "DCmA", "ACmA", "DCA", "ACA", "HFE", "Live",
	"NCV", "LozV", "ACA", "DCA", "LPF", "AC/DC", "LPF", "AC+DC", "LPF",
	"AC+DC2", "INRUSH",
}

// overloadValues are the display strings the meter shows when the input is
// out of range for the selected function.
var overloadValues = []string{".OL", "O.L", "OL.", "OL", "-.OL", "-O.L", "-OL.", "-OL"}

// ncvValues are the display strings shown in non-contact voltage mode
// (field strength indication, >=50Vrms at 50-60Hz).
var ncvValues = []string{"EF", "-", "--", "---", "----", "-----"}

func isOverload(value string) bool {
	for _, s := range overloadValues {
		if value == s {
			return true
		}
	}
	return false
}

func isNCV(value string) bool {
	for _, s := range ncvValues {
		if value == s {
			return true
		}
	}
	return false
}

// unitFor resolves the display unit for a (mode, range) pair. The second
// return is false for pairs the meter never reports.
func unitFor(mode, rng string) (string, bool) {
	switch mode {
	case "%":
		if rng == "0" {
			return "%", true
		}
	case "AC+DC", "AC+DC2", "ACA", "DCA":
		if rng == "1" {
			return "A", true
		}
	case "AC/DC", "ACV", "DCV", "LPF", "LozV":
		switch rng {
		case "0", "1", "2", "3":
			return "V", true
		}
	case "ACmA", "DCmA":
		if rng == "0" || rng == "1" {
			return "mA", true
		}
	case "ACmV", "DCmV":
		if rng == "0" {
			return "mV", true
		}
	case "ACuA", "DCuA":
		if rng == "0" || rng == "1" {
			return "uA", true
		}
	case "CAP":
		switch rng {
		case "0", "1":
			return "nF", true
		case "2", "3", "4":
			return "uF", true
		case "5", "6", "7":
			return "mF", true
		}
	case "CONT":
		if rng == "0" {
			return "Ω", true
		}
	case "DIDOE":
		if rng == "0" {
			return "V", true
		}
	case "Hz":
		switch rng {
		case "0", "1":
			return "Hz", true
		case "2", "3", "4":
			return "kHz", true
		case "5", "6", "7":
			return "MHz", true
		}
	case "OHM":
		switch rng {
		case "0":
			return "Ω", true
		case "1", "2", "3":
			return "kΩ", true
		case "4", "5", "6":
			return "MΩ", true
		}
	case "°C":
		if rng == "0" || rng == "1" {
			return "°C", true
		}
	case "°F":
		if rng == "0" || rng == "1" {
			return "°F", true
		}
	case "HFE":
		if rng == "0" {
			return "B", true
		}
	case "NCV":
		if rng == "0" {
			return "NCV", true
		}
	}
	return "", false
}
