// SPDX-License-Identifier: MIT
// Package: dcpgen/config

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/generator"
	"github.com/katalvlaran/dcpgen/quiz"
)

// ErrInvalid wraps every validation failure reported by Load.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings of one dcpgen run.
type Config struct {
	// Difficulty selects a preset from Presets.
	Difficulty quiz.Difficulty `yaml:"difficulty" env:"DCPGEN_DIFFICULTY" validate:"oneof=Easy Medium Hard"`
	// Kind fixes the exercise kind; empty draws one per exercise.
	Kind  string `yaml:"kind" env:"DCPGEN_KIND" validate:"omitempty,oneof=convex concave non-dcp"`
	Count int    `yaml:"count" env:"DCPGEN_COUNT" validate:"gte=1,lte=10000"`
	// Seed makes runs reproducible; zero uses the process-wide source.
	Seed int64 `yaml:"seed" env:"DCPGEN_SEED"`
	// CatalogPath points at a YAML production table; empty selects the
	// built-in one.
	CatalogPath       string `yaml:"catalog" env:"DCPGEN_CATALOG" validate:"omitempty,file"`
	MaxDepth          int    `yaml:"max_depth" env:"DCPGEN_MAX_DEPTH" validate:"gte=1,lte=256"`
	ViolationAttempts int    `yaml:"violation_attempts" env:"DCPGEN_VIOLATION_ATTEMPTS" validate:"gte=1"`
	LogLevel          string `yaml:"log_level" env:"DCPGEN_LOG_LEVEL" validate:"oneof=debug info warn error"`

	Presets map[quiz.Difficulty]quiz.Params `yaml:"presets" validate:"dive,keys,oneof=Easy Medium Hard,endkeys"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Difficulty:        quiz.Medium,
		Count:             1,
		MaxDepth:          generator.DefaultMaxDepth,
		ViolationAttempts: generator.DefaultViolationAttempts,
		LogLevel:          "info",
		Presets:           quiz.DefaultPresets(),
	}
}

// Load reads path (a missing file is not an error; an empty path skips the
// file), applies the environment and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := decode(data, cfg); err != nil {
				return nil, fmt.Errorf("config: %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode merges YAML into cfg. Unknown keys are rejected; presets named in
// the file replace the matching defaults and leave the others alone.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, d := range quiz.Difficulties {
		p, ok := c.Presets[d]
		if !ok {
			return fmt.Errorf("%w: preset %s missing", ErrInvalid, d)
		}
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("%w: preset %s: %w", ErrInvalid, d, err)
		}
	}
	return nil
}

// QuizKind reports the fixed kind, or ok=false when kinds are drawn.
func (c *Config) QuizKind() (k quiz.Kind, ok bool, err error) {
	if c.Kind == "" {
		return 0, false, nil
	}
	k, err = quiz.ParseKind(c.Kind)
	return k, err == nil, err
}

// Level returns LogLevel as a zap level.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// Catalog loads the production table named by CatalogPath.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(c.CatalogPath)
}

// GeneratorOptions translates the settings into generator options.
// Catalog and logging are left to the caller.
func (c *Config) GeneratorOptions() []generator.Option {
	opts := []generator.Option{
		generator.WithMaxDepth(c.MaxDepth),
		generator.WithViolationAttempts(c.ViolationAttempts),
	}
	if c.Seed != 0 {
		opts = append(opts, generator.WithSeed(c.Seed))
	}
	return opts
}
