// Package config resolves the runtime settings of the sortvis binaries.
//
// Sources are layered, later wins: built-in defaults, the YAML file, then
// SORTVIS_* environment variables. Command-line flags are applied on top by
// the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/aretw0/sortvis/pkg/pacing"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no explicit config file is given. It may be absent.
const DefaultPath = "sortvis.yaml"

// EnvPrefix namespaces the environment variables.
const EnvPrefix = "SORTVIS_"

// Config holds every tunable of the CLI and servers.
type Config struct {
	Size  int     `mapstructure:"size" env:"SIZE"`
	Speed float64 `mapstructure:"speed" env:"SPEED"`
	// Seed makes arrays reproducible. Zero means a random seed.
	Seed uint64 `mapstructure:"seed" env:"SEED"`

	// Renderer is "bars" (terminal) or "json" (NDJSON frames).
	Renderer string `mapstructure:"renderer" env:"RENDERER"`
	Debug    bool   `mapstructure:"debug" env:"DEBUG"`

	RedisURL string        `mapstructure:"redis_url" env:"REDIS_URL"`
	CacheTTL time.Duration `mapstructure:"cache_ttl" env:"CACHE_TTL"`

	HTTPPort     int    `mapstructure:"http_port" env:"HTTP_PORT"`
	Metrics      bool   `mapstructure:"metrics" env:"METRICS"`
	OTelEndpoint string `mapstructure:"otel_endpoint" env:"OTEL_ENDPOINT"`
}

// Renderer names.
const (
	RendererBars = "bars"
	RendererJSON = "json"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Size:     dataset.DefaultSize,
		Speed:    pacing.DefaultSpeed,
		Renderer: RendererBars,
		CacheTTL: 24 * time.Hour,
		HTTPPort: 8080,
	}
}

// Load layers the YAML file at path and the environment over the defaults.
// A missing file is only an error when path is not DefaultPath.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.Normalize(), nil
}

// decodeYAML unmarshals into a generic map first so that loosely typed values
// ("30", "1.5", "10m") decode like their typed counterparts.
func decodeYAML(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate rejects settings that cannot be clamped into shape.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererBars, RendererJSON:
	default:
		return fmt.Errorf("unknown renderer %q (want %q or %q)", c.Renderer, RendererBars, RendererJSON)
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTPPort)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("negative cache ttl %s", c.CacheTTL)
	}
	return nil
}

// Normalize clamps size and speed into their supported ranges.
func (c Config) Normalize() Config {
	c.Size = dataset.ClampSize(c.Size)
	c.Speed = pacing.ClampSpeed(c.Speed)
	return c
}
