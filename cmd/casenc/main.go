package main

import (
	"context"
	"os"

	"github.com/andrei-cloud/go_casenc/internal/commands/cli"
	"github.com/andrei-cloud/go_casenc/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.InitLogger(false, true)

	rootCmd, err := cli.NewRootCommand()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build commands")
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
