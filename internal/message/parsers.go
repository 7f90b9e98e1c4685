// Package message parses encode service requests.
//
// Variable fields are framed as four decimal digits giving the byte length,
// followed by the bytes: "0004abcd".
package message

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// LengthDigits is the width of a field length prefix.
	LengthDigits = 4
	// MaxFieldLength is the largest length a prefix can express.
	MaxFieldLength = 9999
)

var (
	// ErrTruncated means the payload ended inside a field.
	ErrTruncated = errors.New("field truncated")
	// ErrBadLength means a length prefix is not four decimal digits.
	ErrBadLength = errors.New("invalid field length prefix")
	// ErrTrailingData means bytes remain after the last expected field.
	ErrTrailingData = errors.New("unexpected trailing data")
)

// ReadField splits one length-prefixed field off data.
func ReadField(data []byte) ([]byte, []byte, error) {
	if len(data) < LengthDigits {
		return nil, nil, ErrTruncated
	}

	for _, c := range data[:LengthDigits] {
		if c < '0' || c > '9' {
			return nil, nil, ErrBadLength
		}
	}
	n, err := strconv.Atoi(string(data[:LengthDigits]))
	if err != nil {
		return nil, nil, ErrBadLength
	}

	data = data[LengthDigits:]
	if len(data) < n {
		return nil, nil, ErrTruncated
	}

	return data[:n], data[n:], nil
}

// AppendField appends a length-prefixed field to dst.
func AppendField(dst, field []byte) ([]byte, error) {
	if len(field) > MaxFieldLength {
		return nil, fmt.Errorf("field of %d bytes exceeds %d", len(field), MaxFieldLength)
	}
	dst = append(dst, fmt.Sprintf("%0*d", LengthDigits, len(field))...)

	return append(dst, field...), nil
}

// EncodeFields frames every field in order.
func EncodeFields(fields ...string) ([]byte, error) {
	var out []byte
	for _, f := range fields {
		var err error
		if out, err = AppendField(out, []byte(f)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// parseFields reads the named fields in order and rejects leftovers.
func parseFields(m *BaseMessage, data []byte, names ...string) error {
	for _, name := range names {
		field, rest, err := ReadField(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		m.Fields[name], data = field, rest
	}
	if len(data) != 0 {
		return ErrTrailingData
	}

	return nil
}

// NewEA parses an EA Encode Data command from payload data.
func NewEA(data []byte) (*BaseMessage, error) {
	m := NewBaseMessage("EA", "Encode data under key cascade")
	if err := parseFields(m, data, "Data", "Key 1", "Key 2", "Key 3"); err != nil {
		return nil, err
	}

	return m, nil
}

// NewFA parses an FA Build Login Form command from payload data.
func NewFA(data []byte) (*BaseMessage, error) {
	m := NewBaseMessage("FA", "Build login form")
	if err := parseFields(m, data, "Username", "Password", "Login Ticket", "Execution"); err != nil {
		return nil, err
	}

	return m, nil
}
