package render

import (
	"fmt"
	"strings"
)

// renderEnv emits the plain env-file format: a header comment block followed
// by one KEY=VALUE line per entry in canonical order. The header is always
// present, independent of the IncludeComments flag.
func renderEnv(entries []entry, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Generated by %s v%s\n", toolName, opts.version())
	b.WriteString("# n8n environment configuration\n")
	fmt.Fprintf(&b, "# Created: %s\n", opts.timestamp())
	b.WriteString("\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "%s=%s\n", e.key, e.value)
	}

	return b.String()
}
