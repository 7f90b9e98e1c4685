// Package casform builds the field set posted by the CAS login form.
//
// The page sends the credentials only inside the rsa field:
//
//	rsa       = strEnc(username + password + lt, "1", "2", "3")
//	ul, pl    = character lengths of username and password
//	lt        = login ticket scraped from the form
//	execution = flow execution token scraped from the form
//	_eventId  = "submit"
package casform

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/andrei-cloud/go_casenc/pkg/strenc"
)

// Form field names.
const (
	FieldRSA       = "rsa"
	FieldUserLen   = "ul"
	FieldPassLen   = "pl"
	FieldLT        = "lt"
	FieldExecution = "execution"
	FieldEventID   = "_eventId"

	// EventSubmit is the only event the login flow accepts.
	EventSubmit = "submit"
)

// DefaultKeys are the key literals embedded in the login page script.
var DefaultKeys = [3]string{"1", "2", "3"}

// ErrMissingField is returned when a required credential is empty.
var ErrMissingField = errors.New("missing required field")

// Credentials are the values a login attempt needs.
type Credentials struct {
	Username    string
	Password    string
	LoginTicket string
	Execution   string
}

// Form is a built login form.
type Form struct {
	RSA         string
	UserLen     int
	PassLen     int
	LoginTicket string
	Execution   string
}

// Builder encodes credentials under a fixed key cascade.
type Builder struct {
	cascade *strenc.Cascade
}

// NewBuilder returns a builder for the given keys, or DefaultKeys when none are given.
func NewBuilder(keys ...string) *Builder {
	if len(keys) == 0 {
		keys = DefaultKeys[:]
	}

	return &Builder{cascade: strenc.NewCascade(keys...)}
}

// Build validates creds and produces the form.
func (b *Builder) Build(creds Credentials) (Form, error) {
	if err := creds.Validate(); err != nil {
		return Form{}, err
	}

	return Form{
		RSA:         b.cascade.Encode(creds.Username + creds.Password + creds.LoginTicket),
		UserLen:     strenc.Len(creds.Username),
		PassLen:     strenc.Len(creds.Password),
		LoginTicket: creds.LoginTicket,
		Execution:   creds.Execution,
	}, nil
}

// Validate checks that required fields are present and encodable.
// Execution is optional: some deployments of the page do not render it.
func (c Credentials) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"username", c.Username},
		{"password", c.Password},
		{"lt", c.LoginTicket},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
		if err := strenc.Validate(f.value); err != nil {
			return fmt.Errorf("invalid %s: %w", f.name, err)
		}
	}

	return nil
}

// Values returns the form as url.Values ready to post.
func (f Form) Values() url.Values {
	v := url.Values{}
	v.Set(FieldRSA, f.RSA)
	v.Set(FieldUserLen, strconv.Itoa(f.UserLen))
	v.Set(FieldPassLen, strconv.Itoa(f.PassLen))
	v.Set(FieldLT, f.LoginTicket)
	if f.Execution != "" {
		v.Set(FieldExecution, f.Execution)
	}
	v.Set(FieldEventID, EventSubmit)

	return v
}

// Encode returns the urlencoded form body.
func (f Form) Encode() string {
	return f.Values().Encode()
}
