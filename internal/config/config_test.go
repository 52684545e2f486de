package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortvis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWhenDefaultFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
size: "30"
speed: 2.5
seed: 7
renderer: json
cache_ttl: 10m
metrics: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Size)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, RendererJSON, cfg.Renderer)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, 8080, cfg.HTTPPort, "untouched keys keep their default")
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "size: 30\nhttp_port: 9000\n")
	t.Setenv("SORTVIS_SIZE", "12")
	t.Setenv("SORTVIS_REDIS_URL", "localhost:6379")
	t.Setenv("SORTVIS_CACHE_TTL", "1h")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Size)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestLoad_Clamps(t *testing.T) {
	path := writeFile(t, "size: 500\nspeed: 0\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Size)
	assert.Equal(t, 0.2, cfg.Speed)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown key":      "colour: red\n",
		"bad yaml":         "size: [\n",
		"unknown renderer": "renderer: svg\n",
		"bad port":         "http_port: 70000\n",
		"bad type":         "size: lots\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SORTVIS_SPEED", "fast")
	_, err := Load("")
	assert.Error(t, err)
}
