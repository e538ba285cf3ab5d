// Package config loads iconcat configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Project config file names, in lookup order.
var projectConfigNames = []string{".iconcat.yaml", ".iconcat.yml"}

// Config is the complete iconcat configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog" json:"catalog"`
	Browse  BrowseConfig  `yaml:"browse" json:"browse"`
	Assets  AssetsConfig  `yaml:"assets" json:"assets"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

// CatalogConfig locates the catalog and its asset files.
type CatalogConfig struct {
	// Path is the catalog file (.json, .yaml or .yml).
	Path string `yaml:"path" json:"path"`

	// AssetsRoot holds <set>/<section>/<icon> files. Empty means an
	// "icons" directory next to the catalog file.
	AssetsRoot string `yaml:"assets_root" json:"assets_root"`
}

// BrowseConfig configures the terminal browser.
type BrowseConfig struct {
	// Debounce is the quiet period before a typed query is applied.
	// Default: "300ms"
	Debounce string `yaml:"debounce" json:"debounce"`

	// Theme is "light" or "dark".
	Theme string `yaml:"theme" json:"theme"`

	// NoColor disables styling.
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// AssetsConfig tunes asset lookups.
type AssetsConfig struct {
	// CacheSize is the number of existence probes kept in memory.
	CacheSize int `yaml:"cache_size" json:"cache_size"`

	// PrefetchWorkers bounds concurrent probes when warming the cache.
	PrefetchWorkers int `yaml:"prefetch_workers" json:"prefetch_workers"`

	// Watch drops cached probes when files under the asset root change.
	Watch bool `yaml:"watch" json:"watch"`
}

// LogConfig configures file logging.
type LogConfig struct {
	Level      string `yaml:"level" json:"level"`
	Dir        string `yaml:"dir" json:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "icons.json",
		},
		Browse: BrowseConfig{
			Debounce: "300ms",
			Theme:    ThemeLight,
		},
		Assets: AssetsConfig{
			CacheSize:       4096,
			PrefetchWorkers: 8,
			Watch:           true,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}

// GetUserConfigPath returns the path to the user configuration file:
//   - $XDG_CONFIG_HOME/iconcat/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/iconcat/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "iconcat", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "iconcat", "config.yaml")
	}
	return filepath.Join(home, ".config", "iconcat", "config.yaml")
}

// Load loads configuration for the working directory dir. Sources apply
// in order of increasing precedence:
//  1. Defaults
//  2. User config (GetUserConfigPath)
//  3. Project config (.iconcat.yaml or .iconcat.yml in dir)
//  4. Environment variables (ICONCAT_*)
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if path := GetUserConfigPath(); fileExists(path) {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	for _, name := range projectConfigNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			if err := cfg.loadYAML(path); err != nil {
				return nil, err
			}
			break
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads defaults overlaid with one explicit config file. The file
// must exist. Environment overrides still apply.
func LoadFile(path string) (*Config, error) {
	if !fileExists(path) {
		return nil, icerrors.New(icerrors.ErrCodeConfigNotFound, "config file not found", nil).
			WithDetail("path", path)
	}
	cfg := NewConfig()
	if err := cfg.loadYAML(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAML overlays the values present in a YAML file. Keys missing from
// the file keep their current value.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return icerrors.ConfigError("failed to read config file", err).WithDetail("path", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return icerrors.ConfigError("failed to parse config file", err).WithDetail("path", path)
	}
	return nil
}

// applyEnvOverrides applies ICONCAT_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ICONCAT_CATALOG"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("ICONCAT_ASSETS"); v != "" {
		c.Catalog.AssetsRoot = v
	}
	if v := os.Getenv("ICONCAT_DEBOUNCE"); v != "" {
		c.Browse.Debounce = v
	}
	if v := os.Getenv("ICONCAT_THEME"); v != "" {
		c.Browse.Theme = strings.ToLower(v)
	}
	if v := os.Getenv("ICONCAT_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	// NO_COLOR is the cross-tool convention; any value disables color.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Browse.NoColor = true
	}

	if v := os.Getenv("ICONCAT_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return icerrors.ConfigError("ICONCAT_CACHE_SIZE must be an integer", err)
		}
		c.Assets.CacheSize = n
	}
	if v := os.Getenv("ICONCAT_WATCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return icerrors.ConfigError("ICONCAT_WATCH must be a boolean", err)
		}
		c.Assets.Watch = b
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return icerrors.ConfigError("catalog.path must not be empty", nil)
	}

	if _, err := c.DebounceWindow(); err != nil {
		return err
	}

	switch c.Browse.Theme {
	case ThemeLight, ThemeDark:
	default:
		return icerrors.ConfigError(fmt.Sprintf("browse.theme must be 'light' or 'dark', got %q", c.Browse.Theme), nil)
	}

	if c.Assets.CacheSize <= 0 {
		return icerrors.ConfigError(fmt.Sprintf("assets.cache_size must be positive, got %d", c.Assets.CacheSize), nil)
	}
	if c.Assets.PrefetchWorkers <= 0 {
		return icerrors.ConfigError(fmt.Sprintf("assets.prefetch_workers must be positive, got %d", c.Assets.PrefetchWorkers), nil)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return icerrors.ConfigError(fmt.Sprintf("log.level must be 'debug', 'info', 'warn', or 'error', got %q", c.Log.Level), nil)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return icerrors.ConfigError("log.max_size_mb and log.max_backups must not be negative", nil)
	}
	return nil
}

// DebounceWindow parses Browse.Debounce.
func (c *Config) DebounceWindow() (time.Duration, error) {
	d, err := time.ParseDuration(c.Browse.Debounce)
	if err != nil {
		return 0, icerrors.ConfigError(fmt.Sprintf("browse.debounce is not a duration: %q", c.Browse.Debounce), err)
	}
	if d < 0 {
		return 0, icerrors.ConfigError(fmt.Sprintf("browse.debounce must not be negative, got %s", d), nil)
	}
	return d, nil
}

// DarkTheme reports whether the dark theme is selected.
func (c *Config) DarkTheme() bool {
	return c.Browse.Theme == ThemeDark
}

// AssetsRoot returns the asset root, defaulting to an "icons" directory
// next to the catalog file.
func (c *Config) AssetsRoot() string {
	if c.Catalog.AssetsRoot != "" {
		return c.Catalog.AssetsRoot
	}
	return filepath.Join(filepath.Dir(c.Catalog.Path), "icons")
}

// YAML renders the configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
