package strenc

// Rounds is the number of Feistel rounds per block encryption.
const Rounds = 16

const halfKeyMask = 1<<28 - 1

// Schedule holds the sixteen 48-bit round keys derived from one key segment.
type Schedule [Rounds]uint64

// NewSchedule derives the round keys for a key segment.
func NewSchedule(segment Block64) Schedule {
	var ks Schedule

	reg := permute(uint64(segment), BlockSize, permutedChoice1[:])
	c, d := reg>>28, reg&halfKeyMask
	for i, shift := range rotations {
		c = rotateHalf(c, shift)
		d = rotateHalf(d, shift)
		ks[i] = permute(c<<28|d, 56, permutedChoice2[:])
	}

	return ks
}

// rotateHalf rotates a 28-bit register left.
func rotateHalf(v uint64, shift uint8) uint64 {
	return (v<<shift | v>>(28-shift)) & halfKeyMask
}
