package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCompose(t *testing.T) {
	tests := []struct {
		name   string
		config map[string]string
		opts   Options
		check  func(t *testing.T, out string)
	}{
		{
			name:   "default_version_and_port_fallback",
			config: map[string]string{"N8N_HOST": "localhost"},
			opts:   Options{Format: FormatCompose, Now: testTime},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "version: \"3.8\"", "default compose version is 3.8")
				assert.Contains(t, out, "- \"5678:5678\"", "port falls back to 5678")
				assert.Contains(t, out, "image: n8nio/n8n:latest")
				assert.Contains(t, out, "- n8n_data:/home/node/.n8n")
			},
		},
		{
			name:   "explicit_version_and_port",
			config: map[string]string{"N8N_PORT": "9000"},
			opts:   Options{Format: FormatCompose, ComposeVersion: "3.9", Now: testTime},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "version: \"3.9\"")
				assert.Contains(t, out, "- \"9000:5678\"", "host side uses N8N_PORT, container side stays 5678")
			},
		},
		{
			name: "postgres_block_with_fallbacks",
			config: map[string]string{
				"DB_TYPE": "postgresdb",
			},
			opts: Options{Format: FormatCompose, Now: testTime},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "  postgres:\n", "postgres service should appear")
				assert.Contains(t, out, "- POSTGRES_USER=postgres", "user falls back to postgres")
				assert.Contains(t, out, "- POSTGRES_PASSWORD=password", "password falls back to password")
				assert.Contains(t, out, "- POSTGRES_DB=n8n", "database falls back to n8n")
				assert.Contains(t, out, "  postgres_data:\n", "postgres volume should be declared")
				assert.NotContains(t, out, "redis", "no queue block without queue mode")
			},
		},
		{
			name: "postgres_block_with_explicit_values",
			config: map[string]string{
				"DB_TYPE":                "postgresdb",
				"DB_POSTGRESDB_USER":     "n8nuser",
				"DB_POSTGRESDB_PASSWORD": "s3cret",
				"DB_POSTGRESDB_DATABASE": "workflows",
			},
			opts: Options{Format: FormatCompose, Now: testTime},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "- POSTGRES_USER=n8nuser")
				assert.Contains(t, out, "- POSTGRES_PASSWORD=s3cret")
				assert.Contains(t, out, "- POSTGRES_DB=workflows")
			},
		},
		{
			name:   "queue_block_without_database_block",
			config: map[string]string{"EXECUTIONS_MODE": "queue"},
			opts:   Options{Format: FormatCompose, Now: testTime},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "  redis:\n", "queue mode should emit the redis service")
				assert.Contains(t, out, "image: redis:7-alpine")
				assert.Contains(t, out, "  redis_data:\n", "redis volume should be declared")
				assert.NotContains(t, out, "postgres", "no database block when DB_TYPE is unset")
			},
		},
		{
			name: "environment_entries_indented",
			config: map[string]string{
				"N8N_HOST": "localhost",
				"DB_TYPE":  "sqlite",
			},
			opts: Options{Format: FormatCompose, Now: testTime},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "      - N8N_HOST=localhost\n")
				assert.Contains(t, out, "      - DB_TYPE=sqlite\n")
			},
		},
		{
			name:   "empty_config_renders_skeleton",
			config: map[string]string{},
			opts:   Options{Format: FormatCompose, Now: testTime},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "services:")
				assert.Contains(t, out, "  n8n:")
				assert.NotContains(t, out, "environment:", "no environment section without entries")
				assert.Contains(t, out, "volumes:\n  n8n_data:\n", "data volume is always declared")
			},
		},
		{
			name:   "comments_can_be_disabled",
			config: map[string]string{"N8N_HOST": "x"},
			opts:   Options{Format: FormatCompose, IncludeComments: boolPtr(false), Now: testTime},
			check: func(t *testing.T, out string) {
				assert.NotContains(t, out, "#", "no comment lines when disabled")
				assert.True(t, strings.HasPrefix(out, "version:"), "output should start at the version header")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Generate(tt.config, tt.opts)
			require.NoError(t, err)
			tt.check(t, out)
		})
	}
}

func TestServicePredicates(t *testing.T) {
	assert.True(t, wantsDatabaseService(map[string]string{"DB_TYPE": "postgresdb"}))
	assert.False(t, wantsDatabaseService(map[string]string{"DB_TYPE": "sqlite"}))
	assert.False(t, wantsDatabaseService(map[string]string{}))

	assert.True(t, wantsQueueService(map[string]string{"EXECUTIONS_MODE": "queue"}))
	assert.False(t, wantsQueueService(map[string]string{"EXECUTIONS_MODE": "regular"}))
	assert.False(t, wantsQueueService(map[string]string{}))
}

func boolPtr(b bool) *bool {
	return &b
}
