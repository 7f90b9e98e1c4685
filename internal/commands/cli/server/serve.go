// Package server provides server-related CLI commands.
package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrei-cloud/go_casenc/internal/config"
	"github.com/andrei-cloud/go_casenc/internal/server"
	"github.com/andrei-cloud/go_casenc/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the encode server",
		Long: `Start the TCP encode service. EA encodes data with the given keys, FA builds
a login form with the configured keys and NC reports the service version.
Send SIGHUP to reload the keys from the configuration file.`,
		RunE: runServe,
	}

	// Add serve command specific flags that can override config.
	cmd.Flags().String("host", "localhost", "Server host")
	cmd.Flags().Int("port", 1600, "Server port")

	if err := config.BindFlag("server.host", cmd.Flags().Lookup("host")); err != nil {
		return nil, err
	}
	if err := config.BindFlag("server.port", cmd.Flags().Lookup("port")); err != nil {
		return nil, err
	}

	return cmd, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Get()
	cfgFile := config.GetViper().ConfigFileUsed()

	srv, err := server.NewServer(cfg.Address(), service.New(cfg.CascadeKeys()...))
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Reload keys on SIGHUP.
	reloadChan := make(chan os.Signal, 1)
	signal.Notify(reloadChan, syscall.SIGHUP)
	defer signal.Stop(reloadChan)
	go func() {
		for range reloadChan {
			log.Info().Msg("reloading configuration...")
			if err := config.Initialize(cfgFile); err != nil {
				log.Error().Err(err).Msg("failed to reload configuration")
				continue
			}
			srv.SetService(service.New(config.Get().CascadeKeys()...))
			log.Info().Msg("keys reloaded")
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stopChan)

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start server: %w", err)
	case <-stopChan:
	case <-cmd.Context().Done():
	}

	log.Info().Msg("shutting down server...")
	if err := srv.Stop(); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	return nil
}
