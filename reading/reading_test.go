package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchlab/benchlink/apperr"
)

func TestRawReadingAccessors(t *testing.T) {
	data := []byte("PeakTech,4055MV,0.01\n")
	r := NewRaw(data)

	assert.Equal(t, data, r.Raw())
	assert.Equal(t, "PeakTech,4055MV,0.01\n", r.String())
}

func TestRawReadingCSVUnsupported(t *testing.T) {
	r := NewRaw([]byte{0x01, 0x02})

	_, err := r.CSV()
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindGeneral))
}

func TestRawReadingInvalidUTF8(t *testing.T) {
	r := NewRaw([]byte{0xFF, 0xFE, 'o', 'k'})

	// best effort: no error, invalid bytes preserved in the view
	assert.Len(t, r.String(), 4)
	assert.Equal(t, []byte{0xFF, 0xFE, 'o', 'k'}, r.Raw())
}
