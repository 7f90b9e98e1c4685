package encode

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrei-cloud/go_casenc/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("keys:\n  first: \"1\"\n  second: \"2\"\n  third: \"3\"\n"), 0o600))
	require.NoError(t, config.Initialize(cfgPath))

	cmd, err := NewEncodeCommand()
	require.NoError(t, err)

	root := &cobra.Command{Use: "casenc", SilenceErrors: true, SilenceUsage: true}
	root.AddCommand(cmd)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"encode"}, args...))

	err = root.Execute()

	return strings.TrimSpace(buf.String()), err
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "identity path",
			args: []string{"--data", "ab12"},
			want: "0061006200310032",
		},
		{
			name: "explicit keys",
			args: []string{"--data", "abcd", "--key1", "1", "--key2", "2", "--key3", "3"},
			want: "A9CF2704230383D1",
		},
		{
			name: "site keys from config",
			args: []string{"--data", "admin123456LT-1-abc", "--site-keys"},
			want: "012C2C9BA925FAF8F8D702931DB661E9890C30BCD9BF9E07E04B48F9BB10DBA239644174795FB4D0",
		},
		{
			name:  "stdin with newline",
			stdin: "abcd\n",
			args:  []string{"--stdin", "--key1", "1"},
			want:  "4A60B51D4FD386C1",
		},
		{
			name:    "empty stdin",
			args:    []string{"--stdin"},
			wantErr: true,
		},
		{
			name:    "wide character",
			args:    []string{"--data", "a\U0001F600"},
			wantErr: true,
		},
		{
			name:    "site keys with explicit key",
			args:    []string{"--data", "abcd", "--site-keys", "--key1", "9"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.stdin, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestReadData(t *testing.T) {
	t.Parallel()

	got, err := readData(strings.NewReader("abc\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	got, err = readData(strings.NewReader("a b\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "a b\n", got)
}
