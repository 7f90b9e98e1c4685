// Package form provides the login form command.
package form

import (
	"fmt"
	"sort"

	"github.com/andrei-cloud/go_casenc/internal/config"
	"github.com/andrei-cloud/go_casenc/pkg/casform"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Output formats.
const (
	formatURLEncoded = "urlencoded"
	formatFields     = "fields"
)

// NewFormCommand creates the form command.
func NewFormCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Build the CAS login form fields",
		Long: `Build the fields posted by the CAS login page. The username, password and
login ticket are encoded into the rsa field with the configured keys; ul and pl
carry the username and password lengths.`,
		Example: `  # Print the urlencoded body
  casenc form --username admin --password 123456 --lt LT-1-abc --execution e1s1

  # Print one field per line
  casenc form --username admin --password 123456 --lt LT-1-abc --format fields

  # Enter credentials interactively
  casenc form --interactive`,
		RunE: runForm,
	}

	cmd.Flags().String("username", "", "Account name")
	cmd.Flags().String("password", "", "Account password")
	cmd.Flags().String("lt", "", "Login ticket from the login page")
	cmd.Flags().String("execution", "", "Execution token from the login page")
	cmd.Flags().String("format", formatURLEncoded, "Output format (urlencoded, fields)")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for missing values")

	return cmd
}

func runForm(cmd *cobra.Command, _ []string) error {
	var creds casform.Credentials
	creds.Username, _ = cmd.Flags().GetString("username")
	creds.Password, _ = cmd.Flags().GetString("password")
	creds.LoginTicket, _ = cmd.Flags().GetString("lt")
	creds.Execution, _ = cmd.Flags().GetString("execution")
	format, _ := cmd.Flags().GetString("format")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if format != formatURLEncoded && format != formatFields {
		return fmt.Errorf("unknown output format: %s", format)
	}

	if interactive {
		var err error
		if creds, err = runPrompt(cmd.InOrStdin(), cmd.ErrOrStderr(), creds); err != nil {
			return err
		}
	}

	keys := config.Get().CascadeKeys()
	f, err := casform.NewBuilder(keys...).Build(creds)
	if err != nil {
		return err
	}
	log.Debug().Int("ul", f.UserLen).Int("pl", f.PassLen).Msg("login form built")

	out := cmd.OutOrStdout()
	if format == formatURLEncoded {
		fmt.Fprintln(out, f.Encode())

		return nil
	}

	values := f.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s: %s\n", name, values.Get(name))
	}

	return nil
}
