package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG directories at a temp dir and runs from another
// one so the "." search path never finds a stray config.toml.
func isolate(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("ENV", "")
	t.Chdir(t.TempDir())
	return filepath.Join(configHome, appName)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	path := filepath.Join(dir, configName)
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "double", mgr.viper.GetString("layout.border_style"))
	assert.True(t, mgr.viper.GetBool("layout.border_root"))
	assert.Equal(t, "stdio", mgr.viper.GetString("terminal.backend"))
	assert.Equal(t, defaultPollIntervalMs, mgr.viper.GetInt("terminal.poll_interval_ms"))
	assert.Equal(t, "warn", mgr.viper.GetString("logging.level"))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "double", cfg.Layout.BorderStyle)
	assert.Equal(t, BackendStdio, cfg.Terminal.Backend)
	assert.Empty(t, mgr.GetConfigFile())
}

func TestLoad_ReadsFileAndNormalizes(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
[layout]
border_style = " Rounded "
border_root = false

[terminal]
backend = "TCELL"
poll_interval_ms = 250
`)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "rounded", cfg.Layout.BorderStyle)
	assert.False(t, cfg.Layout.BorderRoot)
	assert.True(t, cfg.Layout.BorderSplits, "unset keys keep their default")
	assert.Equal(t, BackendTcell, cfg.Terminal.Backend)
	assert.Equal(t, 250, cfg.Terminal.PollIntervalMs)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[layout]\nborder_style = \"normal\"\n")
	t.Setenv("TESSERA_LAYOUT_BORDER_STYLE", "thick")
	t.Setenv("TESSERA_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "thick", cfg.Layout.BorderStyle)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[layout]\nborder_style = \"dotted\"\n\n[terminal]\npoll_interval_ms = 1\n")

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.border_style")
	assert.Contains(t, err.Error(), "terminal.poll_interval_ms")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[layout\nborder_style = ")

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestSetConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "[layout]\nborder_style = \"normal\"\n")

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "normal", mgr.Get().Layout.BorderStyle)
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolate(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.BorderStyle = "thick"
	assert.Equal(t, "double", mgr.Get().Layout.BorderStyle)
}

func TestWatch_RequiresConfigFile(t *testing.T) {
	isolate(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.ErrorIs(t, mgr.Watch(), ErrNoConfigFile)
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "[layout]\nborder_style = \"normal\"\n")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changed <- cfg })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second Watch is a no-op")

	require.NoError(t, os.WriteFile(path, []byte("[layout]\nborder_style = \"rounded\"\n"), filePerm))

	select {
	case cfg := <-changed:
		assert.Equal(t, "rounded", cfg.Layout.BorderStyle)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
	assert.Equal(t, "rounded", mgr.Get().Layout.BorderStyle)
}
