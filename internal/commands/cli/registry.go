// Package cli provides centralized command registration.
package cli

import (
	"fmt"

	"github.com/andrei-cloud/go_casenc/internal/commands/cli/encode"
	"github.com/andrei-cloud/go_casenc/internal/commands/cli/form"
	"github.com/andrei-cloud/go_casenc/internal/commands/cli/server"
	"github.com/spf13/cobra"
)

// RegisterCommands registers all root commands.
func RegisterCommands(root *cobra.Command) error {
	encodeCmd, err := encode.NewEncodeCommand()
	if err != nil {
		return fmt.Errorf("failed to create encode command: %w", err)
	}
	root.AddCommand(encodeCmd)

	root.AddCommand(form.NewFormCommand())

	serveCmd, err := server.NewServeCommand()
	if err != nil {
		return fmt.Errorf("failed to create serve command: %w", err)
	}
	root.AddCommand(serveCmd)

	return nil
}
