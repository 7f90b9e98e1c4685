package strenc

import (
	"crypto/des"
	"encoding/binary"
	"math/rand"
	"testing"
)

// fipsPermutedChoice1 is PC-1 as published in FIPS 46-3. With it the block
// transform must agree with crypto/des.
var fipsPermutedChoice1 = [56]uint8{
	57, 49, 41, 33, 25, 17, 9,
	1, 58, 50, 42, 34, 26, 18,
	10, 2, 59, 51, 43, 35, 27,
	19, 11, 3, 60, 52, 44, 36,
	63, 55, 47, 39, 31, 23, 15,
	7, 62, 54, 46, 38, 30, 22,
	14, 6, 61, 53, 45, 37, 29,
	21, 13, 5, 28, 20, 12, 4,
}

func fipsSchedule(key uint64) Schedule {
	var ks Schedule

	reg := permute(key, BlockSize, fipsPermutedChoice1[:])
	c, d := reg>>28, reg&halfKeyMask
	for i, shift := range rotations {
		c = rotateHalf(c, shift)
		d = rotateHalf(d, shift)
		ks[i] = permute(c<<28|d, 56, permutedChoice2[:])
	}

	return ks
}

func TestEncryptMatchesStandardDES(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(46))
	for i := 0; i < 256; i++ {
		key := rng.Uint64()
		plain := rng.Uint64()

		var keyBytes, in, out [8]byte
		binary.BigEndian.PutUint64(keyBytes[:], key)
		binary.BigEndian.PutUint64(in[:], plain)

		c, err := des.NewCipher(keyBytes[:])
		if err != nil {
			t.Fatalf("des.NewCipher() error = %v.", err)
		}
		c.Encrypt(out[:], in[:])
		want := Block64(binary.BigEndian.Uint64(out[:]))

		ks := fipsSchedule(key)
		if got := Encrypt(Block64(plain), &ks); got != want {
			t.Fatalf("key %016X block %016X: Encrypt() = %s, want %s.", key, plain, got, want)
		}
	}
}

func TestEncryptKnownVectors(t *testing.T) {
	t.Parallel()

	fips := fipsSchedule(0x133457799BBCDFF1)
	zero := NewSchedule(0)
	one := NewSchedule(EncodeChunk([]rune("1")))

	tests := []struct {
		name  string
		block Block64
		ks    *Schedule
		want  Block64
	}{
		{name: "textbook example", block: 0x0123456789ABCDEF, ks: &fips, want: 0x85E813540F0AB405},
		{name: "zero key zero block", block: 0, ks: &zero, want: 0x8CA64DE9C1B123A7},
		{name: "legacy abcd under 1", block: EncodeChunk([]rune("abcd")), ks: &one, want: 0x4A60B51D4FD386C1},
		{name: "legacy a under 1", block: EncodeChunk([]rune("a")), ks: &one, want: 0xA74E6D7B47D31254},
	}

	for _, tt := range tests {
		tt := tt // capture range variable.
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Encrypt(tt.block, tt.ks); got != tt.want {
				t.Errorf("Encrypt() = %s, want %s.", got, tt.want)
			}
		})
	}
}

func TestLegacyKeyScheduleDiffersFromFIPS(t *testing.T) {
	t.Parallel()

	seg := EncodeChunk([]rune("abcd"))
	if NewSchedule(seg) == fipsSchedule(uint64(seg)) {
		t.Error("legacy schedule unexpectedly equals the FIPS schedule.")
	}
}
