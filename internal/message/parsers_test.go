package message

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     string
		wantRest string
		wantErr  error
	}{
		{name: "single field", input: "0004abcd", want: "abcd"},
		{name: "with rest", input: "0002ab0001c", want: "ab", wantRest: "0001c"},
		{name: "empty field", input: "0000", want: ""},
		{name: "short prefix", input: "00", wantErr: ErrTruncated},
		{name: "short body", input: "0005abc", wantErr: ErrTruncated},
		{name: "non digit prefix", input: "00x4abcd", wantErr: ErrBadLength},
		{name: "signed prefix", input: "+003abc", wantErr: ErrBadLength},
	}

	for _, tt := range tests {
		tt := tt // capture range variable.
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, rest, err := ReadField([]byte(tt.input))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.wantRest, string(rest))
		})
	}
}

func TestEncodeFields(t *testing.T) {
	t.Parallel()

	out, err := EncodeFields("abcd", "", "12")
	require.NoError(t, err)
	assert.Equal(t, "0004abcd0000000212", string(out))

	_, err = EncodeFields(strings.Repeat("a", MaxFieldLength+1))
	assert.Error(t, err)
}

func TestNewEA(t *testing.T) {
	t.Parallel()

	payload, err := EncodeFields("abcd", "1", "", "3")
	require.NoError(t, err)

	m, err := NewEA(payload)
	require.NoError(t, err)
	assert.Equal(t, "EA", m.CommandCode())
	assert.Equal(t, "abcd", string(m.Get("Data")))
	assert.Equal(t, "1", string(m.Get("Key 1")))
	assert.Empty(t, m.Get("Key 2"))
	assert.Equal(t, "3", string(m.Get("Key 3")))
	assert.NotContains(t, m.Trace(), "abcd")
}

func TestNewEAErrors(t *testing.T) {
	t.Parallel()

	_, err := NewEA([]byte("0004abcd"))
	assert.ErrorIs(t, err, ErrTruncated)

	payload, err := EncodeFields("a", "b", "c", "d", "e")
	require.NoError(t, err)
	_, err = NewEA(payload)
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestNewFA(t *testing.T) {
	t.Parallel()

	payload, err := EncodeFields("admin", "123456", "LT-1-abc", "e1s1")
	require.NoError(t, err)

	m, err := NewFA(payload)
	require.NoError(t, err)
	assert.Equal(t, "FA", m.CommandCode())
	assert.Equal(t, "admin", string(m.Get("Username")))
	assert.Equal(t, "123456", string(m.Get("Password")))
	assert.Equal(t, "LT-1-abc", string(m.Get("Login Ticket")))
	assert.Equal(t, "e1s1", string(m.Get("Execution")))
}
