// Package cli provides the CLI command structure for go_casenc.
package cli

import (
	"fmt"

	"github.com/andrei-cloud/go_casenc/internal/config"
	"github.com/andrei-cloud/go_casenc/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCommand creates and returns the root command with all subcommands.
func NewRootCommand() (*cobra.Command, error) {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "casenc",
		Short: "CAS login form encoder",
		Long: `Reproduces the strEnc routine of the CAS login page: encodes credentials
into the rsa form field, builds the full login form and serves both over TCP.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// Initialize configuration before running any command.
			if err := config.Initialize(cfgFile); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			cfg := config.Get()
			logging.Configure(cfg.Log.Level, cfg.Log.Format)

			return nil
		},
	}

	// Add persistent flags that affect all commands.
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.go_casenc/config.yaml)")

	// Add global flags that can override config file settings.
	rootCmd.PersistentFlags().
		String("log-level", "info", "logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "human", "logging format (human, json)")

	// Bind flags to viper.
	if err := config.BindFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return nil, err
	}
	if err := config.BindFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		return nil, err
	}

	// Register all commands.
	if err := RegisterCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return rootCmd, nil
}
