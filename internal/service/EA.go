package service

import (
	"github.com/andrei-cloud/go_casenc/internal/errorcodes"
	"github.com/andrei-cloud/go_casenc/internal/message"
	"github.com/andrei-cloud/go_casenc/pkg/strenc"
	"github.com/rs/zerolog/log"
)

// ExecuteEA encodes the data field under the three key fields.
// Response: EB00 + hex.
func (s *Service) ExecuteEA(input []byte) ([]byte, error) {
	msg, err := message.NewEA(input)
	if err != nil {
		log.Debug().Err(err).Msg("EA: malformed request")
		return nil, errorcodes.Err15
	}

	data := msg.Get("Data")
	if len(data) > MaxDataLength {
		log.Debug().Int("data_len", len(data)).Msg("EA: data too long")
		return nil, errorcodes.Err80
	}

	fields := []string{
		string(data),
		string(msg.Get("Key 1")),
		string(msg.Get("Key 2")),
		string(msg.Get("Key 3")),
	}
	for _, f := range fields {
		if err := strenc.Validate(f); err != nil {
			log.Debug().Err(err).Msg("EA: unsupported input")
			return nil, errorcodes.Err15
		}
	}

	out := strenc.Encode(fields[0], fields[1], fields[2], fields[3])
	log.Debug().Int("blocks", len(out)/strenc.HexBlockSize).Msg("EA: data encoded")

	resp := make([]byte, 0, 4+len(out))
	resp = append(resp, "EB00"...)
	resp = append(resp, out...)

	return resp, nil
}
