// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

// The catalog mirrors the documented n8n environment surface. Field order
// inside each category is the canonical display and render order.

var categories = []Category{
	{
		ID:          "general",
		Name:        "General",
		Description: "Host, port and base URL settings",
		Icon:        "globe",
		Fields: []Field{
			{Name: "N8N_HOST", Type: TypeString, Default: "localhost", Description: "Host name the server binds to", Required: true},
			{Name: "N8N_PORT", Type: TypeNumber, Default: "5678", Description: "HTTP port the server listens on", Required: true},
			{Name: "N8N_PROTOCOL", Type: TypeEnum, Default: "http", Description: "Protocol used to reach the instance"},
			{Name: "N8N_LISTEN_ADDRESS", Type: TypeString, Default: "0.0.0.0", Description: "IP address the server listens on"},
			{Name: "N8N_PATH", Type: TypeString, Default: "/", Description: "Path prefix the instance is served under"},
			{Name: "N8N_EDITOR_BASE_URL", Type: TypeString, Description: "Public URL of the editor UI"},
			{Name: "WEBHOOK_URL", Type: TypeString, Description: "Externally reachable webhook base URL"},
			{Name: "GENERIC_TIMEZONE", Type: TypeString, Default: "America/New_York", Description: "Timezone used for schedule triggers"},
			{Name: "N8N_DEFAULT_LOCALE", Type: TypeString, Default: "en", Description: "Default UI locale"},
			{Name: "N8N_HIDE_USAGE_PAGE", Type: TypeBoolean, Default: "false", Description: "Hide the usage and plan page"},
		},
	},
	{
		ID:          "database",
		Name:        "Database",
		Description: "Persistence backend settings",
		Icon:        "database",
		Fields: []Field{
			{Name: "DB_TYPE", Type: TypeEnum, Default: "sqlite", Description: "Database backend to use"},
			{Name: "DB_TABLE_PREFIX", Type: TypeString, Description: "Prefix for all table names"},
			{Name: "DB_POSTGRESDB_HOST", Type: TypeString, Default: "localhost", Description: "Postgres host"},
			{Name: "DB_POSTGRESDB_PORT", Type: TypeNumber, Default: "5432", Description: "Postgres port"},
			{Name: "DB_POSTGRESDB_DATABASE", Type: TypeString, Default: "n8n", Description: "Postgres database name"},
			{Name: "DB_POSTGRESDB_USER", Type: TypeString, Default: "postgres", Description: "Postgres user", FileSupport: true},
			{Name: "DB_POSTGRESDB_PASSWORD", Type: TypeString, Description: "Postgres password", FileSupport: true},
			{Name: "DB_POSTGRESDB_SCHEMA", Type: TypeString, Default: "public", Description: "Postgres schema"},
			{Name: "DB_POSTGRESDB_POOL_SIZE", Type: TypeNumber, Default: "2", Description: "Connection pool size"},
			{Name: "DB_SQLITE_VACUUM_ON_STARTUP", Type: TypeBoolean, Default: "false", Description: "Run VACUUM on startup (sqlite only)"},
		},
	},
	{
		ID:          "executions",
		Name:        "Executions",
		Description: "Workflow execution behavior and data retention",
		Icon:        "play",
		Fields: []Field{
			{Name: "EXECUTIONS_MODE", Type: TypeEnum, Default: "regular", Description: "How workflow executions are run"},
			{Name: "EXECUTIONS_TIMEOUT", Type: TypeNumber, Default: "-1", Description: "Default execution timeout in seconds, -1 to disable"},
			{Name: "EXECUTIONS_TIMEOUT_MAX", Type: TypeNumber, Default: "3600", Description: "Maximum execution timeout a workflow may set"},
			{Name: "EXECUTIONS_DATA_SAVE_ON_ERROR", Type: TypeEnum, Default: "all", Description: "Save execution data on error"},
			{Name: "EXECUTIONS_DATA_SAVE_ON_SUCCESS", Type: TypeEnum, Default: "all", Description: "Save execution data on success"},
			{Name: "EXECUTIONS_DATA_SAVE_ON_PROGRESS", Type: TypeBoolean, Default: "false", Description: "Save progress data during execution"},
			{Name: "EXECUTIONS_DATA_PRUNE", Type: TypeBoolean, Default: "true", Description: "Prune old execution data"},
			{Name: "EXECUTIONS_DATA_MAX_AGE", Type: TypeNumber, Default: "336", Description: "Hours to keep execution data when pruning"},
		},
	},
	{
		ID:          "queue",
		Name:        "Queue",
		Description: "Redis-backed queue mode settings",
		Icon:        "layers",
		Fields: []Field{
			{Name: "QUEUE_BULL_REDIS_HOST", Type: TypeString, Description: "Redis host for queue mode"},
			{Name: "QUEUE_BULL_REDIS_PORT", Type: TypeNumber, Default: "6379", Description: "Redis port"},
			{Name: "QUEUE_BULL_REDIS_DB", Type: TypeNumber, Default: "0", Description: "Redis database index"},
			{Name: "QUEUE_BULL_REDIS_USERNAME", Type: TypeString, Description: "Redis username"},
			{Name: "QUEUE_BULL_REDIS_PASSWORD", Type: TypeString, Description: "Redis password", FileSupport: true},
			{Name: "QUEUE_BULL_REDIS_TLS", Type: TypeBoolean, Default: "false", Description: "Use TLS for the Redis connection"},
			{Name: "QUEUE_HEALTH_CHECK_ACTIVE", Type: TypeBoolean, Default: "false", Description: "Enable the worker health check endpoint"},
			{Name: "QUEUE_WORKER_CONCURRENCY", Type: TypeNumber, Default: "10", Description: "Concurrent jobs per worker"},
		},
	},
	{
		ID:          "security",
		Name:        "Security",
		Description: "Secrets, auth and hardening",
		Icon:        "shield",
		Fields: []Field{
			{Name: "N8N_ENCRYPTION_KEY", Type: TypeString, Description: "Key used to encrypt stored credentials", FileSupport: true},
			{Name: "N8N_USER_MANAGEMENT_JWT_SECRET", Type: TypeString, Description: "Secret used to sign session tokens", FileSupport: true},
			{Name: "N8N_BASIC_AUTH_ACTIVE", Type: TypeBoolean, Default: "false", Description: "Protect the instance with basic auth"},
			{Name: "N8N_BASIC_AUTH_USER", Type: TypeString, Description: "Basic auth user", FileSupport: true},
			{Name: "N8N_BASIC_AUTH_PASSWORD", Type: TypeString, Description: "Basic auth password", FileSupport: true},
			{Name: "N8N_SECURE_COOKIE", Type: TypeBoolean, Default: "true", Description: "Set the Secure attribute on session cookies"},
			{Name: "N8N_BLOCK_ENV_ACCESS_IN_NODE", Type: TypeBoolean, Default: "false", Description: "Block access to process env from Code nodes"},
		},
	},
	{
		ID:          "logging",
		Name:        "Logging & Diagnostics",
		Description: "Log output, metrics and telemetry",
		Icon:        "file-text",
		Fields: []Field{
			{Name: "N8N_LOG_LEVEL", Type: TypeEnum, Default: "info", Description: "Log verbosity"},
			{Name: "N8N_LOG_OUTPUT", Type: TypeEnum, Default: "console", Description: "Where log lines are written"},
			{Name: "N8N_LOG_FILE_LOCATION", Type: TypeString, Description: "Log file path when output is file"},
			{Name: "N8N_METRICS", Type: TypeBoolean, Default: "false", Description: "Expose a Prometheus metrics endpoint"},
			{Name: "N8N_DIAGNOSTICS_ENABLED", Type: TypeBoolean, Default: "false", Description: "Send anonymous usage telemetry"},
			{Name: "N8N_VERSION_NOTIFICATIONS_ENABLED", Type: TypeBoolean, Default: "true", Description: "Notify about new n8n versions"},
			{Name: "N8N_HIRING_BANNER_ENABLED", Type: TypeBoolean, Default: "true", Description: "Show the hiring banner in the console"},
		},
	},
}

var templates = []Template{
	{
		ID:          "quick-start",
		Name:        "Quick Start",
		Description: "Smallest working setup: sqlite, plain http, local host",
		Icon:        "zap",
		Categories:  []string{"general"},
		Presets: map[string]string{
			"N8N_HOST":     "localhost",
			"N8N_PORT":     "5678",
			"N8N_PROTOCOL": "http",
			"DB_TYPE":      "sqlite",
		},
	},
	{
		ID:          "production-postgres",
		Name:        "Production (Postgres)",
		Description: "Postgres-backed instance behind TLS",
		Icon:        "server",
		Categories:  []string{"general", "database", "security"},
		Presets: map[string]string{
			"N8N_HOST":               "n8n.example.com",
			"N8N_PORT":               "5678",
			"N8N_PROTOCOL":           "https",
			"DB_TYPE":                "postgresdb",
			"DB_POSTGRESDB_HOST":     "postgres",
			"DB_POSTGRESDB_PORT":     "5432",
			"DB_POSTGRESDB_DATABASE": "n8n",
			"DB_POSTGRESDB_USER":     "n8n",
			"DB_POSTGRESDB_SCHEMA":   "public",
			"N8N_SECURE_COOKIE":      "true",
		},
	},
	{
		ID:          "queue-mode",
		Name:        "Queue Mode",
		Description: "Scaled-out execution with Redis workers and Postgres",
		Icon:        "layers",
		Categories:  []string{"general", "database", "executions", "queue"},
		Presets: map[string]string{
			"N8N_HOST":                  "n8n.example.com",
			"N8N_PORT":                  "5678",
			"EXECUTIONS_MODE":           "queue",
			"QUEUE_BULL_REDIS_HOST":     "redis",
			"QUEUE_BULL_REDIS_PORT":     "6379",
			"QUEUE_HEALTH_CHECK_ACTIVE": "true",
			"DB_TYPE":                   "postgresdb",
			"DB_POSTGRESDB_HOST":        "postgres",
			"DB_POSTGRESDB_PORT":        "5432",
			"DB_POSTGRESDB_DATABASE":    "n8n",
			"DB_POSTGRESDB_USER":        "n8n",
		},
	},
	{
		ID:          "hardened",
		Name:        "Hardened",
		Description: "Telemetry off, strict cookies, env access blocked",
		Icon:        "shield",
		Categories:  []string{"general", "security", "logging"},
		Presets: map[string]string{
			"N8N_HOST":                          "n8n.internal",
			"N8N_PORT":                          "5678",
			"N8N_PROTOCOL":                      "https",
			"N8N_SECURE_COOKIE":                 "true",
			"N8N_BLOCK_ENV_ACCESS_IN_NODE":      "true",
			"N8N_DIAGNOSTICS_ENABLED":           "false",
			"N8N_VERSION_NOTIFICATIONS_ENABLED": "false",
			"N8N_HIRING_BANNER_ENABLED":         "false",
		},
	},
}
