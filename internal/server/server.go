// Package server exposes the encode service over TCP using anet framing.
package server

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	anetserver "github.com/andrei-cloud/anet/server"
	"github.com/andrei-cloud/go_casenc/internal/errorcodes"
	"github.com/andrei-cloud/go_casenc/internal/logging"
	"github.com/andrei-cloud/go_casenc/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// logAdapter implements anet.Logger using zerolog.
type logAdapter struct{}

// Server wraps the anet TCP server and the encode service.
type Server struct {
	address     string
	srv         *anetserver.Server
	svcHolder   atomic.Value // stores *service.Service
	activeConns int32
}

func (l logAdapter) Print(v ...any) {
	log.Info().Msg(fmt.Sprint(v...))
}

func (l logAdapter) Printf(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func (l logAdapter) Infof(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func (l logAdapter) Warnf(format string, v ...any) {
	log.Warn().Msgf(format, v...)
}

func (l logAdapter) Errorf(format string, v ...any) {
	log.Error().Msgf(format, v...)
}

// NewServer configures and returns the server instance.
func NewServer(address string, svc *service.Service) (*Server, error) {
	cfg := &anetserver.ServerConfig{
		MaxConns:        100,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     0 * time.Second, // disable idle connection closure.
		ShutdownTimeout: 5 * time.Second,
		Logger:          logAdapter{},
	}

	s := &Server{address: address}
	s.svcHolder.Store(svc)
	handler := anetserver.HandlerFunc(s.handle)
	srv, err := anetserver.NewServer(address, handler, cfg)
	if err != nil {
		return nil, fmt.Errorf("server setup failed: %w", err)
	}
	s.srv = srv

	return s, nil
}

// Start begins listening for connections.
func (s *Server) Start() error {
	log.Info().Str("address", s.address).Msg("server started")
	return s.srv.Start()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	return s.srv.Stop()
}

// SetService swaps in a new service atomically, e.g. after a key change.
func (s *Server) SetService(svc *service.Service) {
	s.svcHolder.Store(svc)
}

// errorResponse constructs an error response: incremented code + error code.
func errorResponse(cmd string, code errorcodes.ServiceError) []byte {
	return []byte(service.ResponseCode(cmd) + code.CodeOnly())
}

func (s *Server) handle(conn *anetserver.ServerConn, data []byte) ([]byte, error) {
	client := conn.Conn.RemoteAddr().String()
	active := atomic.AddInt32(&s.activeConns, 1)
	defer atomic.AddInt32(&s.activeConns, -1)

	start := time.Now()
	requestID := uuid.NewString()

	if len(data) < 2 {
		log.Error().
			Str("request_id", requestID).
			Str("client_ip", client).
			Msg("malformed request")
		return nil, errors.New("malformed request")
	}

	svc, ok := s.svcHolder.Load().(*service.Service)
	if !ok {
		log.Error().
			Str("event", "service_load_error").
			Str("request_id", requestID).
			Msg("failed to load service")
		return nil, errors.New("service load failed")
	}

	cmd := string(data[:2])
	logging.LogRequest(requestID, client, cmd, svc.Description(cmd), data[2:], int(active))

	resp, execErr := svc.Execute(cmd, data[2:])
	if execErr != nil {
		var svcErr errorcodes.ServiceError
		switch {
		case errors.Is(execErr, service.ErrUnknownCommand):
			log.Warn().
				Str("event", "unknown_command").
				Str("request_id", requestID).
				Str("command", cmd).
				Msg("command not recognized, responding with error code")
			resp = errorResponse(cmd, errorcodes.Err68)
		case errors.As(execErr, &svcErr):
			resp = errorResponse(cmd, svcErr)
		default:
			log.Error().
				Str("event", "command_error").
				Str("request_id", requestID).
				Str("command", cmd).
				Err(execErr).
				Msg("command execution failed")
			resp = errorResponse(cmd, errorcodes.Err15)
		}
	}

	code := ""
	if len(resp) >= 4 {
		code = string(resp[2:4])
	}
	logging.LogResponse(requestID, client, cmd, service.ResponseCode(cmd), code, len(resp), time.Since(start))

	return resp, nil
}
