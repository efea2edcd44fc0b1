// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no config path is given; it may be absent
const DefaultConfigPath = "stamp_office.yaml"

// Config holds settings for both the validator and the sync tool.
// Relative directories are resolved against Root.
type Config struct {
	Root        string         `yaml:"root"`
	DataDir     string         `yaml:"data_dir" validate:"required"`
	GameDataDir string         `yaml:"game_data_dir" validate:"required"`
	Validate    ValidateConfig `yaml:"validate"`
	Sync        SyncConfig     `yaml:"sync"`
	Log         LogConfig      `yaml:"log"`
	NoColor     bool           `yaml:"no_color"`
}

// ValidateConfig contains content validation settings.
type ValidateConfig struct {
	TicketPattern string `yaml:"ticket_pattern" validate:"required"`
	TicketIDScope string `yaml:"ticket_id_scope" validate:"oneof=global file"`
	MaxWords      int    `yaml:"max_words" validate:"min=1"`
	Strict        bool   `yaml:"strict"`
}

// SyncConfig contains settings for copying content into the game tree.
type SyncConfig struct {
	TicketPattern string   `yaml:"ticket_pattern" validate:"required"`
	WatchInterval Duration `yaml:"watch_interval" validate:"gt=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Duration is a wrapper around time.Duration that supports YAML string parsing.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Load loads configuration with precedence: defaults → YAML file → env vars.
// An empty path falls back to STAMP_OFFICE_CONFIG and then DefaultConfigPath;
// only the default file is allowed to be missing.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := true
	if path == "" {
		path = os.Getenv("STAMP_OFFICE_CONFIG")
	}
	if path == "" {
		path = DefaultConfigPath
		explicit = false
	}

	if err := loadYAMLFile(cfg, path, explicit); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		DataDir:     "data",
		GameDataDir: filepath.Join("game", "data"),
		Validate: ValidateConfig{
			TicketPattern: "shift*.json",
			TicketIDScope: "global",
			MaxWords:      8,
		},
		Sync: SyncConfig{
			TicketPattern: "*.json",
			WatchInterval: Duration(500 * time.Millisecond),
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

func loadYAMLFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Only non-empty env vars override config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STAMP_OFFICE_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("STAMP_OFFICE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("STAMP_OFFICE_GAME_DATA_DIR"); v != "" {
		cfg.GameDataDir = v
	}

	// Validate
	if v := os.Getenv("STAMP_OFFICE_TICKET_PATTERN"); v != "" {
		cfg.Validate.TicketPattern = v
	}
	if v := os.Getenv("STAMP_OFFICE_TICKET_ID_SCOPE"); v != "" {
		cfg.Validate.TicketIDScope = v
	}
	if v := os.Getenv("STAMP_OFFICE_MAX_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Validate.MaxWords = n
		}
	}
	if v := os.Getenv("STAMP_OFFICE_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Validate.Strict = b
		}
	}

	// Sync
	if v := os.Getenv("STAMP_OFFICE_WATCH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Sync.WatchInterval = Duration(d)
		}
	}

	// Log
	if v := os.Getenv("STAMP_OFFICE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STAMP_OFFICE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	// https://no-color.org
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
}

// Check validates the configuration values.
func (c *Config) Check() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if filepath.Clean(c.GameDataDir) == filepath.Clean(c.DataDir) {
		return fmt.Errorf("config error: 'game_data_dir' must differ from 'data_dir'")
	}

	return nil
}

// ResolveRoot makes Root absolute. When Root is unset the directory holding
// DataDir is searched for in the working directory and up to two levels above it.
func (c *Config) ResolveRoot() error {
	if c.Root != "" {
		abs, err := filepath.Abs(c.Root)
		if err != nil {
			return fmt.Errorf("failed to resolve root %s: %w", c.Root, err)
		}
		c.Root = abs
		return nil
	}

	candidates := []string{
		".",
		"..",
		filepath.Join("..", ".."),
	}
	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(filepath.Join(abs, c.DataDir)); err == nil && info.IsDir() {
			c.Root = abs
			return nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	c.Root = cwd
	return nil
}

// DataPath returns the directory holding the canonical content
func (c *Config) DataPath() string {
	return c.resolve(c.DataDir)
}

// GameDataPath returns the game engine's content directory
func (c *Config) GameDataPath() string {
	return c.resolve(c.GameDataDir)
}

func (c *Config) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Root, dir)
}
