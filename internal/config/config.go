package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/raphi011/docbatch/internal/format"
	"github.com/raphi011/docbatch/internal/storage"
)

// DefaultOutputDir is the root directory generated files are written to.
const DefaultOutputDir = "Created-Files"

// DefaultSheetName names the single sheet of generated workbooks.
const DefaultSheetName = format.DefaultSheetName

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DOCBATCH_"

// ThemeConfig holds UI theme settings
type ThemeConfig struct {
	Name string `toml:"name"` // preset family: none, default, dracula, nord, gruvbox
	Mode string `toml:"mode"` // auto, light or dark
}

// Config holds the docbatch configuration
type Config struct {
	OutputDir string      `toml:"output_dir"`
	SheetName string      `toml:"sheet_name"`
	Theme     ThemeConfig `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		SheetName: DefaultSheetName,
		Theme:     ThemeConfig{Name: "default", Mode: "auto"},
	}
}

// envOverrides lists the settings that can be set from the environment.
type envOverrides struct {
	OutputDir string `env:"OUTPUT_DIR"`
	SheetName string `env:"SHEET_NAME"`
	Theme     string `env:"THEME"`
}

// Path returns the path to the config file:
// $XDG_CONFIG_HOME/docbatch/config.toml, or ~/.config/docbatch/config.toml.
func Path() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "docbatch", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docbatch", "config.toml"), nil
}

// Load reads the config file and applies DOCBATCH_* environment overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path, env.ToMap(os.Environ()))
}

// LoadFrom reads the config at path and applies overrides from environ.
// A nil environ applies no overrides.
func LoadFrom(path string, environ map[string]string) (Config, error) {
	cfg := Default()
	if environ == nil {
		environ = map[string]string{}
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var overrides envOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Default(), fmt.Errorf("failed to read environment: %w", err)
	}
	if overrides.OutputDir != "" {
		cfg.OutputDir = overrides.OutputDir
	}
	if overrides.SheetName != "" {
		cfg.SheetName = overrides.SheetName
	}
	if overrides.Theme != "" {
		cfg.Theme.Name = overrides.Theme
	}

	// Use defaults for empty values
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.SheetName == "" {
		cfg.SheetName = DefaultSheetName
	}
	if cfg.Theme.Mode == "" {
		cfg.Theme.Mode = "auto"
	}

	// Expand ~ in output_dir (shell doesn't expand in config files)
	expanded, err := expandPath(cfg.OutputDir)
	if err != nil {
		return Default(), fmt.Errorf("expand output_dir: %w", err)
	}
	cfg.OutputDir = expanded

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Init writes the commented default config to path.
// If force is false, an existing file is left untouched and an error is returned.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}
	return storage.WriteFile(path, []byte(DefaultConfigFile))
}

// DefaultConfigFile is the content written by Init.
const DefaultConfigFile = `# docbatch configuration

# Root directory for generated files. Each format gets its own
# subdirectory (md, xlsx, csv, docx, pptx, yaml).
# Relative paths are resolved against the current directory.
# Override with DOCBATCH_OUTPUT_DIR or --output-dir.
output_dir = "Created-Files"

# Name of the single sheet in generated Excel workbooks (max 31 characters).
# Override with DOCBATCH_SHEET_NAME.
sheet_name = "Sheet1"

[theme]
# Color preset: none, default, dracula, nord, gruvbox
# Override with DOCBATCH_THEME.
name = "default"
# auto detects the terminal background; light or dark force a variant
mode = "auto"
`

type ctxKey struct{}

// WithConfig returns a new context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored in ctx, or Default() if none is set.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}
