package strenc

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 is returned by Validate for malformed UTF-8 input.
	ErrInvalidUTF8 = errors.New("input is not valid utf-8")
	// ErrUnsupportedCharacter is returned by Validate for characters that do not
	// fit in one 16-bit slot. The legacy page has no defined behaviour for them.
	ErrUnsupportedCharacter = errors.New("character outside the basic multilingual plane")
)

// maxChar is the largest character that fits in one block slot.
const maxChar = charMask

// Validate reports whether s can be encoded with a known legacy result.
// Encode never fails; callers run Validate first and reject what it refuses.
func Validate(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}

	for i, r := range s {
		if r > maxChar {
			return fmt.Errorf("%w: %U at byte %d", ErrUnsupportedCharacter, r, i)
		}
	}

	return nil
}

// Len returns the number of characters in s as the encoder counts them.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}
