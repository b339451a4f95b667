// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mtoledo/credtrack/internal/domain"
)

// ConfigFileName is the name of the per-directory override file.
const ConfigFileName = "credtrack.toml"

// Config is the application configuration.
// Seed overrides use pointers so "not set" and zero are distinct.
type Config struct {
	DataFile string        `toml:"data_file"` // Snapshot file path
	Log      LogConfig     `toml:"log"`       // [log] settings
	Project  ProjectConfig `toml:"project"`   // [project] seed overrides
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// ProjectConfig holds seed-project overrides from the [project]
// section. They only apply when no snapshot exists yet.
type ProjectConfig struct {
	Name       *string  `toml:"name"`
	Credits    *float64 `toml:"credits"`
	HourlyRate *float64 `toml:"hourly_rate"`
}

// Seed returns the built-in seed project with any configured
// overrides applied.
func (c *Config) Seed() domain.Project {
	seed := domain.SeedProject()
	if c.Project.Name != nil {
		seed.Name = *c.Project.Name
	}
	if c.Project.Credits != nil {
		seed.Credits = *c.Project.Credits
	}
	if c.Project.HourlyRate != nil {
		seed.HourlyRate = *c.Project.HourlyRate
	}
	return seed
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DataFile: defaultDataFile(),
		Log:      LogConfig{Level: "info"},
	}
}

// defaultDataFile returns the XDG data path for the snapshot file.
func defaultDataFile() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "credtrack.json"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "credtrack", "project.json")
}

// Loader loads configuration from TOML files.
type Loader struct {
	globalConfDir string // e.g. ~/.config/credtrack
	localDir      string // working directory holding an override file
}

// NewLoader creates a new Loader rooted at the given working
// directory.
func NewLoader(localDir string) *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
		localDir:      localDir,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global
// config directory. This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
		localDir:      localDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "credtrack")
}

// Load returns the merged configuration: defaults, then the global
// file, then the local override, later sources taking precedence.
func (l *Loader) Load() (*Config, error) {
	base := DefaultConfig()

	if l.globalConfDir != "" {
		global, err := loadFile(filepath.Join(l.globalConfDir, "config.toml"))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			merge(base, global)
		}
	}

	local, err := loadFile(filepath.Join(l.localDir, ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if local != nil {
		merge(base, local)
	}

	return base, nil
}

// loadFile parses a single TOML config file.
func loadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// merge overlays set fields of src onto dst.
func merge(dst, src *Config) {
	if src.DataFile != "" {
		dst.DataFile = src.DataFile
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Project.Name != nil {
		dst.Project.Name = src.Project.Name
	}
	if src.Project.Credits != nil {
		dst.Project.Credits = src.Project.Credits
	}
	if src.Project.HourlyRate != nil {
		dst.Project.HourlyRate = src.Project.HourlyRate
	}
}
