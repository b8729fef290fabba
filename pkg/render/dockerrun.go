package render

import (
	"fmt"
	"strings"
)

// renderDockerRun emits a single docker run invocation: one -e flag per
// entry with the value double-quoted as-is, the published-port mapping with
// the usual fallback, and the data volume.
func renderDockerRun(entries []entry, config map[string]string) string {
	parts := []string{
		"docker run -d",
		"--name n8n",
		fmt.Sprintf("-p %s:%s", hostPort(config), containerPort),
	}

	for _, e := range entries {
		// values are wrapped in double quotes verbatim, no further escaping
		parts = append(parts, fmt.Sprintf("-e %s=\"%s\"", e.key, e.value))
	}

	parts = append(parts,
		"-v n8n_data:/home/node/.n8n",
		n8nImage,
	)

	return strings.Join(parts, " ")
}
