package meter

// Sum16 computes the 16-bit truncated sum of data. The meter appends this
// sum, big-endian, to every response frame body.
func Sum16(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}
