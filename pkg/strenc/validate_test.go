package strenc

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "ascii", input: "admin123456", wantErr: nil},
		{name: "empty", input: "", wantErr: nil},
		{name: "cjk", input: "用户名密码", wantErr: nil},
		{name: "max bmp", input: "\uffff", wantErr: nil},
		{name: "emoji", input: "a\U0001F600", wantErr: ErrUnsupportedCharacter},
		{name: "invalid utf8", input: "ab\xffcd", wantErr: ErrInvalidUTF8},
	}

	for _, tt := range tests {
		tt := tt // capture range variable.
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) error = %v, want %v.", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestLen(t *testing.T) {
	t.Parallel()

	if got := Len("张三abc"); got != 5 {
		t.Errorf("Len() = %d, want 5.", got)
	}
}

func TestEncodeKeepsLegacyTruncationForWideChars(t *testing.T) {
	t.Parallel()

	// U+1F600 keeps its low 16 bits in a single slot, like the legacy script.
	if got := Encode("a\U0001F600", "", "", ""); got != "0061F60000000000" {
		t.Errorf("Encode() = %s, want 0061F60000000000.", got)
	}
}
