package render

import (
	"fmt"
	"strings"
)

const (
	postgresImage = "postgres:16-alpine"
	redisImage    = "redis:7-alpine"
)

// renderCompose emits a docker-compose file: the n8n service with the
// filtered environment, plus a postgres and/or redis service when the
// configuration calls for them. The volumes section mirrors whichever
// services were emitted.
func renderCompose(entries []entry, config map[string]string, opts Options) string {
	var b strings.Builder

	if opts.includeComments() {
		fmt.Fprintf(&b, "# Generated by %s v%s\n", toolName, opts.version())
		fmt.Fprintf(&b, "# Created: %s\n", opts.timestamp())
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "version: %q\n", opts.ComposeVersion)
	b.WriteString("\n")
	b.WriteString("services:\n")

	// primary n8n service
	b.WriteString("  n8n:\n")
	fmt.Fprintf(&b, "    image: %s\n", n8nImage)
	b.WriteString("    restart: unless-stopped\n")
	b.WriteString("    ports:\n")
	fmt.Fprintf(&b, "      - \"%s:%s\"\n", hostPort(config), containerPort)
	if len(entries) > 0 {
		b.WriteString("    environment:\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "      - %s=%s\n", e.key, e.value)
		}
	}
	b.WriteString("    volumes:\n")
	b.WriteString("      - n8n_data:/home/node/.n8n\n")

	withDB := wantsDatabaseService(config)
	withQueue := wantsQueueService(config)

	if withDB {
		user := fallback(config["DB_POSTGRESDB_USER"], "postgres")
		password := fallback(config["DB_POSTGRESDB_PASSWORD"], "password")
		database := fallback(config["DB_POSTGRESDB_DATABASE"], "n8n")

		b.WriteString("\n")
		b.WriteString("  postgres:\n")
		fmt.Fprintf(&b, "    image: %s\n", postgresImage)
		b.WriteString("    restart: unless-stopped\n")
		b.WriteString("    environment:\n")
		fmt.Fprintf(&b, "      - POSTGRES_USER=%s\n", user)
		fmt.Fprintf(&b, "      - POSTGRES_PASSWORD=%s\n", password)
		fmt.Fprintf(&b, "      - POSTGRES_DB=%s\n", database)
		b.WriteString("    volumes:\n")
		b.WriteString("      - postgres_data:/var/lib/postgresql/data\n")
	}

	if withQueue {
		b.WriteString("\n")
		b.WriteString("  redis:\n")
		fmt.Fprintf(&b, "    image: %s\n", redisImage)
		b.WriteString("    restart: unless-stopped\n")
		b.WriteString("    volumes:\n")
		b.WriteString("      - redis_data:/data\n")
	}

	b.WriteString("\n")
	b.WriteString("volumes:\n")
	b.WriteString("  n8n_data:\n")
	if withDB {
		b.WriteString("  postgres_data:\n")
	}
	if withQueue {
		b.WriteString("  redis_data:\n")
	}

	return b.String()
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
