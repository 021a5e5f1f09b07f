package config

import "time"

// Options configures the config loader.
type Options struct {
	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file, used only when YAML is absent.
	EnvPath string

	// EnvPrefix enables overrides from process environment variables.
	// With prefix "PASSHASH", hash.bcrypt.cost is read from PASSHASH_HASH_BCRYPT_COST.
	EnvPrefix string

	// Defaults are applied below every other source.
	Defaults map[string]any
}

// ConfigProvider is the interface consumers depend on for reading configuration.
// Implementations must be safe for concurrent use.
type ConfigProvider interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string

	// IsSet reports whether the key has a value in any source, defaults included.
	IsSet(key string) bool

	// WatchChanges starts watching the config file for changes (YAML only).
	// Non-blocking: spawns a background goroutine.
	WatchChanges()

	// OnChange registers a callback that fires after a successful config reload.
	// Callbacks run in registration order.
	OnChange(fn func())

	// StopWatching stops delivering reload callbacks.
	StopWatching()

	// Source returns which config source is active: "yaml" or "env".
	Source() string
}

// Defaults returns the settings used when neither file nor environment sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"app.name":                      "passhash-api",
		"logging.level":                 "info",
		"server.port":                   8080,
		"server.read_timeout":           30 * time.Second,
		"server.write_timeout":          30 * time.Second,
		"database.host":                 "localhost",
		"database.port":                 5432,
		"database.ssl_mode":             "disable",
		"redis.host":                    "localhost",
		"redis.port":                    6379,
		"security.jwt.ttl":              15 * time.Minute,
		"security.jwt.issuer":           "passhash-api",
		"hash.bcrypt.cost":              10,
		"hash.verify.max_cost":          14,
		"uid.strategy":                  "uuidv7",
		"uid.node_id":                   1,
		"rate_limit.login.max_attempts": 5,
		"rate_limit.login.window":       15 * time.Minute,
		"rate_limit.hash_verify.limit":  30,
		"rate_limit.hash_verify.window": time.Minute,
	}
}
