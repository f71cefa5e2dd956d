// pkg/vsenv/parser.go
package vsenv

import (
	"bufio"
	"io"
	"strings"
)

// ParseEnv parses the output of the cmd.exe "set" builtin into an
// environment mapping. Each line of the form NAME=VALUE becomes one entry;
// names are uppercased, lines without a separator or with an empty name are
// ignored, and later duplicates overwrite earlier ones.
func ParseEnv(r io.Reader) map[string]string {
	env := make(map[string]string)

	sc := bufio.NewScanner(r)
	// PATH and friends routinely exceed the default token size.
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		name, value, ok := strings.Cut(line, "=")
		if !ok || name == "" {
			continue
		}
		env[strings.ToUpper(name)] = value
	}

	return env
}
