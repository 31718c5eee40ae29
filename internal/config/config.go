// Package config loads the scenelint CLI configuration from a YAML file and
// the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/lint"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/parse"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
)

// Environment variables read by Load.
const (
	EnvConfig        = "SCENELINT_CONFIG"
	EnvAllowFallback = "SCENELINT_ALLOW_FALLBACK"
	EnvStrict        = "SCENELINT_STRICT"
	EnvConcurrency   = "SCENELINT_CONCURRENCY"
)

// Config holds the CLI settings.
type Config struct {
	Vocabulary    scene.Vocabulary `yaml:"vocabulary"`
	AllowFallback bool             `yaml:"allow_fallback"`
	Strict        bool             `yaml:"strict"`
	// Concurrency bounds batch linting; 0 means GOMAXPROCS.
	Concurrency int           `yaml:"concurrency"`
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig selects the slog handler. Empty values defer to
// SCENELINT_LOG_LEVEL and SCENELINT_LOG_FORMAT.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{AllowFallback: true}
}

// Load reads the YAML file at path, or at $SCENELINT_CONFIG when path is
// empty, over the defaults and then applies environment overrides. With no
// path at all only defaults and environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults without consulting the environment.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() error {
	if err := envOverride(EnvAllowFallback, &c.AllowFallback); err != nil {
		return err
	}
	if err := envOverride(EnvStrict, &c.Strict); err != nil {
		return err
	}
	return envOverride(EnvConcurrency, &c.Concurrency)
}

func envOverride[T any](key string, dst *T) error {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	v, err := parse.ParseStringAs[T](raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

// Validate rejects values no component can honour.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	for _, name := range c.Vocabulary.Characters {
		if strings.TrimSpace(name) == "" {
			return errors.New("vocabulary.characters contains an empty name")
		}
	}
	return nil
}

// LintOptions translates c into linter options.
func (c *Config) LintOptions() []lint.Option {
	return []lint.Option{
		lint.WithVocabulary(c.Vocabulary),
		lint.WithFallback(c.AllowFallback),
		lint.WithStrict(c.Strict),
		lint.WithConcurrency(c.Concurrency),
	}
}
