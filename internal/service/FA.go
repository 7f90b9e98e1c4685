package service

import (
	"github.com/andrei-cloud/go_casenc/internal/errorcodes"
	"github.com/andrei-cloud/go_casenc/internal/message"
	"github.com/andrei-cloud/go_casenc/pkg/casform"
	"github.com/rs/zerolog/log"
)

// ExecuteFA builds a login form from username, password, login ticket and execution.
// Response: FB00 + urlencoded form body.
func (s *Service) ExecuteFA(input []byte) ([]byte, error) {
	msg, err := message.NewFA(input)
	if err != nil {
		log.Debug().Err(err).Msg("FA: malformed request")
		return nil, errorcodes.Err15
	}

	form, err := s.builder.Build(casform.Credentials{
		Username:    string(msg.Get("Username")),
		Password:    string(msg.Get("Password")),
		LoginTicket: string(msg.Get("Login Ticket")),
		Execution:   string(msg.Get("Execution")),
	})
	if err != nil {
		log.Debug().Err(err).Msg("FA: invalid credentials")
		return nil, errorcodes.Err15
	}

	body := form.Encode()
	resp := make([]byte, 0, 4+len(body))
	resp = append(resp, "FB00"...)
	resp = append(resp, body...)

	return resp, nil
}
