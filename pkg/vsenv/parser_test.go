// pkg/vsenv/parser_test.go
package vsenv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "simple variables",
			input: "FOO=bar\nPATH=C:\\Windows\n",
			want:  map[string]string{"FOO": "bar", "PATH": "C:\\Windows"},
		},
		{
			name:  "names are uppercased",
			input: "ProgramFiles=C:\\Program Files\n",
			want:  map[string]string{"PROGRAMFILES": "C:\\Program Files"},
		},
		{
			name:  "value may contain separators",
			input: "FLAGS=/D NDEBUG=1 /D X=2\n",
			want:  map[string]string{"FLAGS": "/D NDEBUG=1 /D X=2"},
		},
		{
			name:  "last write wins",
			input: "FOO=first\nFOO=second\n",
			want:  map[string]string{"FOO": "second"},
		},
		{
			name:  "lines without separator are ignored",
			input: "Setting environment for amd64\nFOO=bar\nsome banner text\n",
			want:  map[string]string{"FOO": "bar"},
		},
		{
			name:  "empty names are ignored",
			input: "=C:=C:\\\nFOO=bar\n",
			want:  map[string]string{"FOO": "bar"},
		},
		{
			name:  "crlf line endings",
			input: "FOO=bar\r\nBAZ=qux\r\n",
			want:  map[string]string{"FOO": "bar", "BAZ": "qux"},
		},
		{
			name:  "empty value kept",
			input: "EMPTY=\n",
			want:  map[string]string{"EMPTY": ""},
		},
		{
			name:  "empty input",
			input: "",
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEnv(strings.NewReader(tt.input))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnvLongLines(t *testing.T) {
	// A PATH assembled by vcvarsall.bat easily exceeds the default
	// bufio.Scanner token size.
	value := strings.Repeat("C:\\Some\\Long\\Directory;", 10000)
	env := ParseEnv(strings.NewReader("PATH=" + value + "\n"))

	require.Equal(t, value, env["PATH"])
}
