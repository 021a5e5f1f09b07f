package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit_YAMLWithDefaults(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "config.yaml", "hash:\n  bcrypt:\n    cost: 12\nserver:\n  port: 9090\n")

	cfg, err := Init(Options{YAMLPath: yamlPath, Defaults: Defaults()})
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Source())
	assert.Equal(t, 12, cfg.GetInt("hash.bcrypt.cost"))
	assert.Equal(t, 14, cfg.GetInt("hash.verify.max_cost"))
	assert.Equal(t, 9090, cfg.GetInt("server.port"))
	assert.Equal(t, 15*time.Minute, cfg.GetDuration("security.jwt.ttl"))
	assert.Equal(t, "uuidv7", cfg.GetString("uid.strategy"))
	assert.True(t, cfg.IsSet("redis.host"))
	assert.False(t, cfg.IsSet("not.a.key"))
}

func TestInit_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "config.yaml", "hash:\n  bcrypt:\n    cost: 12\n")
	t.Setenv("PASSHASH_HASH_BCRYPT_COST", "14")

	cfg, err := Init(Options{YAMLPath: yamlPath, EnvPrefix: "PASSHASH", Defaults: Defaults()})
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.GetInt("hash.bcrypt.cost"))
}

func TestInit_EnvFileFallback(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "HASH_BCRYPT_COST=11\nSECURITY_JWT_SECRET=from-env-file\n")

	cfg, err := Init(Options{
		YAMLPath: filepath.Join(dir, "missing.yaml"),
		EnvPath:  envPath,
		Defaults: map[string]any{
			"hash.bcrypt.cost":    10,
			"security.jwt.secret": "",
			"server.port":         8080,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.Source())
	assert.Equal(t, 11, cfg.GetInt("hash.bcrypt.cost"))
	assert.Equal(t, "from-env-file", cfg.GetString("security.jwt.secret"))
	assert.Equal(t, 8080, cfg.GetInt("server.port"))
}

func TestInit_NoFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Init(Options{
		YAMLPath: filepath.Join(dir, "config.yaml"),
		EnvPath:  filepath.Join(dir, ".env"),
	})

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config: no config file found")
}

func TestInit_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "config.yaml", "hash: [unterminated\n")

	_, err := Init(Options{YAMLPath: yamlPath})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: failed to read yaml file")
}

func TestWatchChanges_ReloadsAndNotifies(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "config.yaml", "logging:\n  level: info\n")

	cfg, err := Init(Options{YAMLPath: yamlPath})
	require.NoError(t, err)

	var calls atomic.Int32
	cfg.OnChange(func() { calls.Add(1) })
	cfg.WatchChanges()
	t.Cleanup(cfg.StopWatching)

	writeFile(t, dir, "config.yaml", "logging:\n  level: debug\n")

	require.Eventually(t, func() bool {
		return calls.Load() > 0 && cfg.GetString("logging.level") == "debug"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchChanges_IgnoredForEnvSource(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "LOGGING_LEVEL=info\n")

	cfg, err := Init(Options{EnvPath: envPath})
	require.NoError(t, err)

	cfg.WatchChanges()
	cfg.StopWatching()
	assert.Equal(t, "env", cfg.Source())
}
