package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level sift configuration.
type Config struct {
	Color  *bool        `toml:"color,omitempty"`
	Picker PickerConfig `toml:"picker"`
	Search SearchConfig `toml:"search"`
}

// PickerConfig controls the interactive picker.
type PickerConfig struct {
	Height int    `toml:"height"`
	Prompt string `toml:"prompt"`
}

// SearchConfig controls matching behavior.
type SearchConfig struct {
	// Heteronym controls whether every reading of a polyphonic character
	// is matchable, or only the most common one.
	// Defaults to true when not set in config.
	Heteronym *bool `toml:"heteronym,omitempty"`
}

// ColorEnabled returns whether colored output is allowed by config.
// Treats nil (missing from config) as true.
func (c *Config) ColorEnabled() bool {
	if c.Color == nil {
		return true
	}
	return *c.Color
}

// HeteronymEnabled returns whether all readings of polyphonic characters
// are matchable. Treats nil as true.
func (s SearchConfig) HeteronymEnabled() bool {
	if s.Heteronym == nil {
		return true
	}
	return *s.Heteronym
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	siftConfig := filepath.Join(configDir, "sift")
	siftData := filepath.Join(dataDir, "sift")

	return Paths{
		ConfigDir:  siftConfig,
		DataDir:    siftData,
		ConfigFile: filepath.Join(siftConfig, "config.toml"),
		DBFile:     filepath.Join(siftData, "sift.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.ConfigDir, p.DataDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := &Config{}

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if a config file exists.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills zero-value fields that have non-zero defaults.
func applyDefaults(cfg *Config) {
	if cfg.Picker.Height == 0 {
		cfg.Picker.Height = 10
	}
	if cfg.Picker.Prompt == "" {
		cfg.Picker.Prompt = "> "
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
