// Package logging configures zerolog for go_casenc.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the zerolog logger with the specified debug mode and output format.
// Logs go to stderr so command output on stdout stays clean.
func InitLogger(debug, human bool) {
	InitLoggerTo(os.Stderr, debug, human)
}

// InitLoggerTo is InitLogger with an explicit destination.
func InitLoggerTo(out io.Writer, debug, human bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	base := zerolog.New(out).With().Timestamp().Logger()
	if human {
		log.Logger = base.Output(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339Nano,
		})
	} else {
		log.Logger = base
	}
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Configure initializes the logger from configuration strings such as
// "debug"/"info" and "human"/"json".
func Configure(level, format string) {
	level = strings.TrimSpace(strings.ToLower(level))
	format = strings.TrimSpace(strings.ToLower(format))
	InitLogger(level == "debug", format != "json")
}

// LogRequest logs a received command with structured fields.
// Payloads carry credentials, so only their size is logged.
func LogRequest(
	requestID string,
	clientIP string,
	command string,
	description string,
	requestData []byte,
	activeConns int,
) {
	log.Info().
		Str("event", "request_received").
		Str("request_id", requestID).
		Str("client_ip", clientIP).
		Str("command", command).
		Str("description", description).
		Int("request_len", len(requestData)).
		Int("active_connections", activeConns).
		Msg("received command")
}

// LogResponse logs a sent response with structured fields.
func LogResponse(
	requestID string,
	clientIP string,
	command string,
	responseCommand string,
	errorCode string,
	responseLen int,
	duration time.Duration,
) {
	log.Info().
		Str("event", "response_sent").
		Str("request_id", requestID).
		Str("client_ip", clientIP).
		Str("command", command).
		Str("response_command", responseCommand).
		Str("error_code", errorCode).
		Int("response_len", responseLen).
		Dur("duration", duration).
		Msg("sent response")
}
