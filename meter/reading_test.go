package meter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReading(t *testing.T) {
	body := []byte{
		2, 0, '1', '2', '3', '.', '4', '5', '6', 5, 0,
		0b00001110, 0b00000111, 0b00001111,
	}

	r, ok := DecodeReading(body)
	require.True(t, ok)

	assert.Equal(t, "DCV", r.Mode)
	assert.Equal(t, "\x00", r.Range)
	assert.Equal(t, "123.456", r.DisplayValue)
	assert.False(t, r.Overload)
	assert.False(t, r.NCV)
	require.NotNil(t, r.DecimalValue)
	assert.Equal(t, 123.456, *r.DecimalValue)
	assert.Equal(t, "Unknown", r.DisplayUnit)
	assert.Equal(t, uint16(50), r.Progress)
	assert.True(t, r.Max)
	assert.True(t, r.Min)
	assert.True(t, r.Hold)
	assert.False(t, r.Rel)
	assert.True(t, r.Auto)
	assert.True(t, r.Battery)
	assert.True(t, r.HWWarning)
	assert.True(t, r.DC)
	assert.True(t, r.PeakMax)
	assert.True(t, r.PeakMin)
	assert.True(t, r.BarPolarity)
	assert.Equal(t, body, r.Raw())
}

// padded builds a minimal response body around a 7-character display field.
func padded(display string) []byte {
	body := []byte{2, '0'}
	field := make([]byte, 7)
	for i := range field {
		field[i] = ' '
	}
	copy(field, display)
	body = append(body, field...)
	return append(body, 0, 0, 0, 0, 0)
}

func TestDecodeReadingOverload(t *testing.T) {
	for _, display := range []string{".OL", "O.L", "OL.", "OL", "-.OL", "-O.L", "-OL.", "-OL"} {
		r, ok := DecodeReading(padded(display))
		require.True(t, ok, display)
		assert.True(t, r.Overload, display)
		assert.False(t, r.NCV, display)
		assert.Nil(t, r.DecimalValue, display)
	}
}

func TestDecodeReadingNCV(t *testing.T) {
	for _, display := range []string{"EF", "-", "--", "---", "----", "-----"} {
		r, ok := DecodeReading(padded(display))
		require.True(t, ok, display)
		assert.True(t, r.NCV, display)
		assert.False(t, r.Overload, display)
		assert.Nil(t, r.DecimalValue, display)
	}
}

func TestDecodeReadingUnparsableValue(t *testing.T) {
	// not a sentinel, not a number: no value, no error
	r, ok := DecodeReading(padded("diSC"))
	require.True(t, ok)
	assert.False(t, r.Overload)
	assert.False(t, r.NCV)
	assert.Nil(t, r.DecimalValue)
}

func TestDecodeReadingShortBody(t *testing.T) {
	for length := 0; length < MinReadingSize; length++ {
		r, ok := DecodeReading(make([]byte, length))
		assert.False(t, ok, "length %d", length)
		assert.Nil(t, r, "length %d", length)
	}
}

func TestDecodeReadingUnknownMode(t *testing.T) {
	body := padded("1.5")
	body[0] = 31 // one past the mode table
	r, ok := DecodeReading(body)
	require.True(t, ok)
	assert.Equal(t, "Unknown", r.Mode)
}

func TestReadingCSV(t *testing.T) {
	body := []byte{
		2, '0', ' ', '1', '2', '3', '.', '4', '5', 5, 0,
		0b00001110, 0b00000111, 0b00001111,
	}
	r, ok := DecodeReading(body)
	require.True(t, ok)

	line, err := r.CSV()
	require.NoError(t, err)
	assert.Equal(t,
		"DCV,0,123.45,false,false,123.45,V,50,true,true,true,false,true,true,true,true,true,true,true",
		line)
}

func TestReadingCSVAbsentValue(t *testing.T) {
	r, ok := DecodeReading(padded("OL"))
	require.True(t, ok)

	line, err := r.CSV()
	require.NoError(t, err)
	assert.Contains(t, line, ",true,false,None,")
}

func TestUnitTable(t *testing.T) {
	tests := []struct {
		mode string
		rng  string
		unit string
	}{
		{"%", "0", "%"},
		{"AC+DC", "1", "A"},
		{"AC+DC2", "1", "A"},
		{"AC/DC", "0", "V"},
		{"AC/DC", "1", "V"},
		{"AC/DC", "2", "V"},
		{"AC/DC", "3", "V"},
		{"ACA", "1", "A"},
		{"ACV", "0", "V"},
		{"ACV", "1", "V"},
		{"ACV", "2", "V"},
		{"ACV", "3", "V"},
		{"ACmA", "0", "mA"},
		{"ACmA", "1", "mA"},
		{"ACmV", "0", "mV"},
		{"ACuA", "0", "uA"},
		{"ACuA", "1", "uA"},
		{"CAP", "0", "nF"},
		{"CAP", "1", "nF"},
		{"CAP", "2", "uF"},
		{"CAP", "3", "uF"},
		{"CAP", "4", "uF"},
		{"CAP", "5", "mF"},
		{"CAP", "6", "mF"},
		{"CAP", "7", "mF"},
		{"CONT", "0", "Ω"},
		{"DCA", "1", "A"},
		{"DCV", "0", "V"},
		{"DCV", "1", "V"},
		{"DCV", "2", "V"},
		{"DCV", "3", "V"},
		{"DCmA", "0", "mA"},
		{"DCmA", "1", "mA"},
		{"DCmV", "0", "mV"},
		{"DCuA", "0", "uA"},
		{"DCuA", "1", "uA"},
		{"DIDOE", "0", "V"},
		{"Hz", "0", "Hz"},
		{"Hz", "1", "Hz"},
		{"Hz", "2", "kHz"},
		{"Hz", "3", "kHz"},
		{"Hz", "4", "kHz"},
		{"Hz", "5", "MHz"},
		{"Hz", "6", "MHz"},
		{"Hz", "7", "MHz"},
		{"LPF", "0", "V"},
		{"LPF", "1", "V"},
		{"LPF", "2", "V"},
		{"LPF", "3", "V"},
		{"LozV", "0", "V"},
		{"LozV", "1", "V"},
		{"LozV", "2", "V"},
		{"LozV", "3", "V"},
		{"OHM", "0", "Ω"},
		{"OHM", "1", "kΩ"},
		{"OHM", "2", "kΩ"},
		{"OHM", "3", "kΩ"},
		{"OHM", "4", "MΩ"},
		{"OHM", "5", "MΩ"},
		{"OHM", "6", "MΩ"},
		{"°C", "0", "°C"},
		{"°C", "1", "°C"},
		{"°F", "0", "°F"},
		{"°F", "1", "°F"},
		{"HFE", "0", "B"},
		{"NCV", "0", "NCV"},
	}

	for _, tt := range tests {
		unit, ok := unitFor(tt.mode, tt.rng)
		require.True(t, ok, "%s/%s", tt.mode, tt.rng)
		assert.Equal(t, tt.unit, unit, "%s/%s", tt.mode, tt.rng)
	}
}

func TestUnitTableUnlistedPairs(t *testing.T) {
	unlisted := []struct{ mode, rng string }{
		{"DCV", "4"},
		{"OHM", "7"},
		{"INRUSH", "0"},
		{"Live", "0"},
		{"Unknown", "0"},
		{"", ""},
	}
	for _, tt := range unlisted {
		if _, ok := unitFor(tt.mode, tt.rng); ok {
			t.Errorf("unitFor(%q, %q) resolved, want unlisted", tt.mode, tt.rng)
		}
	}
}
