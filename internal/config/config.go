// Package config loads the pathlab demo configuration from YAML, an optional
// .env file and PATHLAB_* environment variables, in that order of precedence
// (later wins), and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix names the environment overrides: PATHLAB_MODE, PATHLAB_GRID_ROWS,
// PATHLAB_PLAYBACK_STEPS_PER_SEGMENT and so on, one per field.
const EnvPrefix = "pathlab"

// Config is the demo configuration.
type Config struct {
	// Mode selects the sample graph: "geo" (city network) or "planar" (jittered grid).
	Mode      string `yaml:"mode" validate:"oneof=geo planar"`
	Algorithm string `yaml:"algorithm" validate:"oneof=bfs dfs dijkstra astar nn"`
	// Start is the node id the route begins at.
	Start int `yaml:"start" validate:"min=1"`
	// Goal is the target node id; 0 means none.
	Goal int `yaml:"goal" validate:"min=0"`

	Grid     GridConfig     `yaml:"grid"`
	Log      LogConfig      `yaml:"log"`
	Playback PlaybackConfig `yaml:"playback"`
}

// GridConfig shapes the planar sample graph.
type GridConfig struct {
	Rows      int     `yaml:"rows" validate:"min=1"`
	Cols      int     `yaml:"cols" validate:"min=1"`
	Spacing   float64 `yaml:"spacing" validate:"gt=0"`
	Amplitude float64 `yaml:"amplitude" validate:"gte=0,lt=0.5"`
	Seed      int64   `yaml:"seed"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
	Output string `yaml:"output" validate:"oneof=stdout stderr"`
}

// PlaybackConfig paces the vehicle animation.
type PlaybackConfig struct {
	// Interval is the time spent on one route segment.
	Interval time.Duration `yaml:"interval" validate:"gt=0"`
	// StepsPerSegment overrides the step count derived from Interval; 0 derives it.
	StepsPerSegment int `yaml:"steps_per_segment" split_words:"true" validate:"min=0"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Mode:      "geo",
		Algorithm: "dijkstra",
		Start:     1,
		Grid: GridConfig{
			Rows:      5,
			Cols:      5,
			Spacing:   100,
			Amplitude: 0.25,
			Seed:      1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Playback: PlaybackConfig{
			Interval: 200 * time.Millisecond,
		},
	}
}

var validate = validator.New()

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Load builds a Config from Default, the YAML file at path (skipped when
// path is empty), the given .env files (".env" when none are named; a
// missing .env is not an error) and PATHLAB_* variables, then validates it.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
		}
	}

	if err := loadDotEnv(envFiles); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv populates the process environment; variables already set win.
func loadDotEnv(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: env files %v: %w", files, err)
	}

	return nil
}

// applyEnv overlays PATHLAB_* variables; unset variables keep the current value.
func (c *Config) applyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
