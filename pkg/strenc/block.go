package strenc

import (
	"fmt"
)

const (
	// BlockSize is the number of bits in a data block or key segment.
	BlockSize = 64
	// CharsPerBlock is the number of characters packed into one block.
	CharsPerBlock = 4
	// HexBlockSize is the number of hex digits produced per block.
	HexBlockSize = 16

	charBits = 16
	charMask = 1<<charBits - 1
)

// Block64 is a 64-bit block. Bit 1 of the DES numbering is the most significant bit.
type Block64 uint64

// EncodeChunk packs up to four characters into a block, 16 bits per character,
// most significant bit first. Missing slots are zero. Characters past the
// fourth are ignored.
func EncodeChunk(chunk []rune) Block64 {
	var v uint64
	for i := 0; i < CharsPerBlock; i++ {
		v <<= charBits
		if i < len(chunk) {
			// Only the low code-unit bits survive, as in the legacy script.
			v |= uint64(chunk[i]) & charMask
		}
	}

	return Block64(v)
}

// Chunks splits s into four-character chunks and encodes each one.
// It returns ceil(n/4) blocks for n characters and nil for an empty string.
func Chunks(s string) []Block64 {
	if s == "" {
		return nil
	}

	runes := []rune(s)
	blocks := make([]Block64, 0, (len(runes)+CharsPerBlock-1)/CharsPerBlock)
	for start := 0; start < len(runes); start += CharsPerBlock {
		end := min(start+CharsPerBlock, len(runes))
		blocks = append(blocks, EncodeChunk(runes[start:end]))
	}

	return blocks
}

// Hex renders the block as 16 uppercase hex digits.
func (b Block64) Hex() string {
	return fmt.Sprintf("%016X", uint64(b))
}

// String implements fmt.Stringer.
func (b Block64) String() string {
	return b.Hex()
}
