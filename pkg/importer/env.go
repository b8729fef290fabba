package importer

import (
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔧 EnvParser implements Parser for dotenv-style KEY=VALUE files
type EnvParser struct{}

func init() {
	Register(&EnvParser{})
}

func (p *EnvParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".env")
}

func (p *EnvParser) Parse(_ context.Context, data []byte) (map[string]string, error) {
	out := map[string]string{}

	for i, raw := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, errors.Errorf("line %d: not a KEY=VALUE pair: %q", i+1, raw)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, errors.Errorf("line %d: empty key", i+1)
		}
		out[key] = unquote(strings.TrimSpace(value))
	}

	return out, nil
}

// unquote strips one matching pair of single or double quotes. Quotes are
// dotenv syntax, not part of the value, so a value that was written quoted
// comes back bare.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
