package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
)

// isolate points the user config at an empty dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	for _, key := range []string{
		"ICONCAT_CATALOG", "ICONCAT_ASSETS", "ICONCAT_DEBOUNCE", "ICONCAT_THEME",
		"ICONCAT_LOG_LEVEL", "ICONCAT_CACHE_SIZE", "ICONCAT_WATCH", "NO_COLOR",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return xdg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewConfig_ReturnsDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "icons.json", cfg.Catalog.Path)
	assert.Equal(t, "", cfg.Catalog.AssetsRoot)
	assert.Equal(t, "300ms", cfg.Browse.Debounce)
	assert.Equal(t, ThemeLight, cfg.Browse.Theme)
	assert.False(t, cfg.Browse.NoColor)
	assert.Equal(t, 4096, cfg.Assets.CacheSize)
	assert.Equal(t, 8, cfg.Assets.PrefetchWorkers)
	assert.True(t, cfg.Assets.Watch)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFilesUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_Precedence(t *testing.T) {
	// Given: user config, project config and env all set different fields
	xdg := isolate(t)
	writeFile(t, filepath.Join(xdg, "iconcat", "config.yaml"), `
catalog:
  path: /user/icons.json
browse:
  theme: dark
  debounce: 500ms
assets:
  cache_size: 10
`)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".iconcat.yaml"), `
catalog:
  path: project.json
browse:
  debounce: 100ms
`)
	t.Setenv("ICONCAT_DEBOUNCE", "50ms")

	// When: loading
	cfg, err := Load(dir)
	require.NoError(t, err)

	// Then: each layer overrides only what it sets
	assert.Equal(t, "project.json", cfg.Catalog.Path, "project beats user")
	assert.Equal(t, ThemeDark, cfg.Browse.Theme, "user beats default")
	assert.Equal(t, 10, cfg.Assets.CacheSize, "user beats default")
	assert.Equal(t, "50ms", cfg.Browse.Debounce, "env beats project")
	assert.Equal(t, 8, cfg.Assets.PrefetchWorkers, "default kept")
}

func TestLoad_YamlPreferredOverYml(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".iconcat.yaml"), "catalog:\n  path: from-yaml.json\n")
	writeFile(t, filepath.Join(dir, ".iconcat.yml"), "catalog:\n  path: from-yml.json\n")

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "from-yaml.json", cfg.Catalog.Path)
}

func TestLoad_YmlFallback(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".iconcat.yml"), "browse:\n  no_color: true\n")

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.True(t, cfg.Browse.NoColor)
}

func TestLoad_MalformedYAML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".iconcat.yaml"), "browse: [unclosed")

	_, err := Load(dir)

	require.Error(t, err)
	assert.True(t, icerrors.HasCode(err, icerrors.ErrCodeConfigInvalid))
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("ICONCAT_CATALOG", "env.json")
	t.Setenv("ICONCAT_ASSETS", "/assets")
	t.Setenv("ICONCAT_THEME", "DARK")
	t.Setenv("ICONCAT_LOG_LEVEL", "debug")
	t.Setenv("ICONCAT_CACHE_SIZE", "12")
	t.Setenv("ICONCAT_WATCH", "false")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "env.json", cfg.Catalog.Path)
	assert.Equal(t, "/assets", cfg.AssetsRoot())
	assert.True(t, cfg.DarkTheme())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 12, cfg.Assets.CacheSize)
	assert.False(t, cfg.Assets.Watch)
	assert.True(t, cfg.Browse.NoColor)
}

func TestLoad_BadEnvValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"ICONCAT_CACHE_SIZE", "lots"},
		{"ICONCAT_WATCH", "maybe"},
		{"ICONCAT_DEBOUNCE", "soon"},
		{"ICONCAT_THEME", "sepia"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(t.TempDir())

			require.Error(t, err)
			assert.True(t, icerrors.HasCode(err, icerrors.ErrCodeConfigInvalid))
		})
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "catalog:\n  path: custom.json\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.Catalog.Path)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, icerrors.HasCode(err, icerrors.ErrCodeConfigNotFound))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty catalog path", func(c *Config) { c.Catalog.Path = " " }},
		{"bad debounce", func(c *Config) { c.Browse.Debounce = "fast" }},
		{"negative debounce", func(c *Config) { c.Browse.Debounce = "-1s" }},
		{"bad theme", func(c *Config) { c.Browse.Theme = "blue" }},
		{"zero cache", func(c *Config) { c.Assets.CacheSize = 0 }},
		{"zero workers", func(c *Config) { c.Assets.PrefetchWorkers = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"negative backups", func(c *Config) { c.Log.MaxBackups = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDebounceWindow(t *testing.T) {
	cfg := NewConfig()

	d, err := cfg.DebounceWindow()
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, d)

	cfg.Browse.Debounce = "0s"
	d, err = cfg.DebounceWindow()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)
}

func TestAssetsRoot_DefaultsNextToCatalog(t *testing.T) {
	cfg := NewConfig()
	cfg.Catalog.Path = filepath.Join("data", "icons.json")

	assert.Equal(t, filepath.Join("data", "icons"), cfg.AssetsRoot())

	cfg.Catalog.AssetsRoot = "/srv/icons"
	assert.Equal(t, "/srv/icons", cfg.AssetsRoot())
}

func TestGetUserConfigPath_XDG(t *testing.T) {
	xdg := isolate(t)

	assert.Equal(t, filepath.Join(xdg, "iconcat", "config.yaml"), GetUserConfigPath())
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	isolate(t)
	cfg := NewConfig()
	cfg.Browse.Theme = ThemeDark

	data, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: dark")
	assert.Contains(t, string(data), "debounce: 300ms")

	path := filepath.Join(t.TempDir(), "rt.yaml")
	writeFile(t, path, string(data))
	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
