package strenc

const halfBlockMask = 1<<32 - 1

// Encrypt runs one block through the cipher under ks.
// The halves are not swapped back after the last round: FP is applied to R16||L16.
func Encrypt(block Block64, ks *Schedule) Block64 {
	state := permute(uint64(block), BlockSize, initialPermutation[:])
	left, right := state>>32, state&halfBlockMask

	for i := 0; i < Rounds; i++ {
		left, right = right, left^feistel(right, ks[i])
	}

	return Block64(permute(right<<32|left, BlockSize, finalPermutation[:]))
}

// feistel is the round function f(R, K).
func feistel(right, roundKey uint64) uint64 {
	x := permute(right, 32, expansion[:]) ^ roundKey

	var out uint64
	for box := 0; box < len(sBoxes); box++ {
		group := (x >> (42 - 6*box)) & 0x3f
		row := (group>>4)&0x2 | group&0x1
		col := (group >> 1) & 0xf
		out = out<<4 | uint64(sBoxes[box][row][col])
	}

	return permute(out, 32, pBox[:])
}
