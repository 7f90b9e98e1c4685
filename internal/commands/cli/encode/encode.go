// Package encode provides the encode command.
package encode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andrei-cloud/go_casenc/internal/config"
	"github.com/andrei-cloud/go_casenc/pkg/strenc"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode data with the strEnc key cascade",
		Long: `Encode data the way the CAS login page does: four characters per block,
encrypted once per key segment (key1, then key2, then key3) and printed as hex.
Omitted keys are skipped; with no keys the blocks are printed unencrypted.`,
		Example: `  # Encode with the keys used by the login page
  casenc encode --data admin123456LT-1-abc --key1 1 --key2 2 --key3 3

  # Use the keys from the configuration file
  casenc encode --data admin123456LT-1-abc --site-keys

  # Read data from standard input
  echo -n admin123456LT-1-abc | casenc encode --stdin --key1 1`,
		RunE: runEncode,
	}

	cmd.Flags().String("data", "", "Data to encode")
	cmd.Flags().Bool("stdin", false, "Read data from standard input")
	cmd.Flags().String("key1", "", "First key")
	cmd.Flags().String("key2", "", "Second key")
	cmd.Flags().String("key3", "", "Third key")
	cmd.Flags().Bool("site-keys", false, "Use the keys from the configuration")

	cmd.MarkFlagsMutuallyExclusive("data", "stdin")
	cmd.MarkFlagsMutuallyExclusive("site-keys", "key1")
	cmd.MarkFlagsMutuallyExclusive("site-keys", "key2")
	cmd.MarkFlagsMutuallyExclusive("site-keys", "key3")

	return cmd, nil
}

func runEncode(cmd *cobra.Command, _ []string) error {
	data, _ := cmd.Flags().GetString("data")
	fromStdin, _ := cmd.Flags().GetBool("stdin")
	siteKeys, _ := cmd.Flags().GetBool("site-keys")

	if fromStdin {
		var err error
		if data, err = readData(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	keys := make([]string, 3)
	if siteKeys {
		copy(keys, config.Get().CascadeKeys())
	} else {
		for i, name := range []string{"key1", "key2", "key3"} {
			keys[i], _ = cmd.Flags().GetString(name)
		}
	}

	if err := strenc.Validate(data); err != nil {
		return fmt.Errorf("invalid data: %w", err)
	}
	for i, k := range keys {
		if err := strenc.Validate(k); err != nil {
			return fmt.Errorf("invalid key%d: %w", i+1, err)
		}
	}

	cascade := strenc.NewCascade(keys...)
	log.Debug().
		Int("chars", strenc.Len(data)).
		Int("segments", cascade.Segments()).
		Msg("encoding data")

	fmt.Fprintln(cmd.OutOrStdout(), cascade.Encode(data))

	return nil
}

// readData reads all of r, dropping one trailing newline.
func readData(r io.Reader) (string, error) {
	raw, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(raw) == 0 {
		return "", errors.New("no data on stdin")
	}

	s := strings.TrimSuffix(string(raw), "\n")

	return strings.TrimSuffix(s, "\r"), nil
}
