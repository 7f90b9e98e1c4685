// Package service implements the encode service commands.
package service

import (
	"errors"

	"github.com/andrei-cloud/go_casenc/pkg/casform"
)

// Version is reported by the NC diagnostics command.
const Version = "0001-CASENC"

// MaxDataLength bounds the data field of an EA request in bytes.
const MaxDataLength = 4096

// ErrUnknownCommand is returned by Execute for unregistered command codes.
var ErrUnknownCommand = errors.New("unknown command")

// Handler executes one command payload and returns the full response.
type Handler func(input []byte) ([]byte, error)

type command struct {
	description string
	handler     Handler
}

// Service dispatches command codes to their handlers.
type Service struct {
	builder  *casform.Builder
	commands map[string]command
}

// New returns a service whose FA command encodes forms under formKeys.
func New(formKeys ...string) *Service {
	s := &Service{builder: casform.NewBuilder(formKeys...)}
	s.commands = map[string]command{
		"EA": {"Encode data under key cascade", s.ExecuteEA},
		"FA": {"Build login form", s.ExecuteFA},
		"NC": {"Perform diagnostics", s.ExecuteNC},
	}

	return s
}

// Execute runs the handler registered for cmd.
func (s *Service) Execute(cmd string, input []byte) ([]byte, error) {
	c, ok := s.commands[cmd]
	if !ok {
		return nil, ErrUnknownCommand
	}

	return c.handler(input)
}

// Description returns the description of cmd or cmd itself if unknown.
func (s *Service) Description(cmd string) string {
	if c, ok := s.commands[cmd]; ok {
		return c.description
	}

	return cmd
}

// ResponseCode returns the response code for cmd by incrementing its second character.
func ResponseCode(cmd string) string {
	b := []byte(cmd)
	if len(b) < 2 {
		return cmd
	}
	if b[1] == 'Z' {
		b[1] = 'A'
	} else {
		b[1]++
	}

	return string(b)
}
