package rules

// Static classification tables. These are pure constant data: a field's rule
// set is fully determined by which tables its name appears in. Keep them next
// to the builder so a new field only needs touching this file.

// requiredFields fail validation when present with an empty value. A field
// that was never added to the config is not checked here at all; only the
// dependency lists below can flag absent fields.
var requiredFields = map[string]bool{
	"N8N_HOST": true,
	"N8N_PORT": true,
}

// numericFields must be an optionally-signed integer when non-empty.
var numericFields = map[string]bool{
	"N8N_PORT":                 true,
	"DB_POSTGRESDB_PORT":       true,
	"DB_POSTGRESDB_POOL_SIZE":  true,
	"QUEUE_BULL_REDIS_PORT":    true,
	"QUEUE_BULL_REDIS_DB":      true,
	"QUEUE_WORKER_CONCURRENCY": true,
	"EXECUTIONS_TIMEOUT":       true,
	"EXECUTIONS_TIMEOUT_MAX":   true,
	"EXECUTIONS_DATA_MAX_AGE":  true,
}

// booleanFields must be exactly "true" or "false" when non-empty.
var booleanFields = map[string]bool{
	"N8N_HIDE_USAGE_PAGE":               true,
	"DB_SQLITE_VACUUM_ON_STARTUP":       true,
	"EXECUTIONS_DATA_SAVE_ON_PROGRESS":  true,
	"EXECUTIONS_DATA_PRUNE":             true,
	"QUEUE_BULL_REDIS_TLS":              true,
	"QUEUE_HEALTH_CHECK_ACTIVE":         true,
	"N8N_BASIC_AUTH_ACTIVE":             true,
	"N8N_SECURE_COOKIE":                 true,
	"N8N_BLOCK_ENV_ACCESS_IN_NODE":      true,
	"N8N_METRICS":                       true,
	"N8N_DIAGNOSTICS_ENABLED":           true,
	"N8N_VERSION_NOTIFICATIONS_ENABLED": true,
	"N8N_HIRING_BANNER_ENABLED":         true,
}

// enumFields maps a field name to its fixed allowed-value list.
var enumFields = map[string][]string{
	"DB_TYPE":                         {"sqlite", "postgresdb", "mysqldb", "mariadb"},
	"N8N_PROTOCOL":                    {"http", "https"},
	"EXECUTIONS_MODE":                 {"regular", "queue"},
	"EXECUTIONS_DATA_SAVE_ON_ERROR":   {"all", "none"},
	"EXECUTIONS_DATA_SAVE_ON_SUCCESS": {"all", "none"},
	"N8N_LOG_LEVEL":                   {"info", "warn", "error", "debug"},
	"N8N_LOG_OUTPUT":                  {"console", "file"},
}

// PostgresRequired lists the fields that must be set whenever
// DB_TYPE is "postgresdb". Order matters for deterministic error output.
var PostgresRequired = []string{
	"DB_POSTGRESDB_HOST",
	"DB_POSTGRESDB_PORT",
	"DB_POSTGRESDB_DATABASE",
	"DB_POSTGRESDB_USER",
}

// RedisRequired lists the fields that must be set whenever
// EXECUTIONS_MODE is "queue".
var RedisRequired = []string{
	"QUEUE_BULL_REDIS_HOST",
	"QUEUE_BULL_REDIS_PORT",
}

var (
	postgresRequiredSet = toSet(PostgresRequired)
	redisRequiredSet    = toSet(RedisRequired)
)

func toSet(names []string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}
