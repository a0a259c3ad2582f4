package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 150*time.Millisecond, cfg.SettleDelay())
	assert.Equal(t, 500*time.Millisecond, cfg.ShakeDuration())
	assert.Equal(t, 2*time.Second, cfg.CopyConfirmDuration())
}

func TestLoadJSONOverridesOnlyProvidedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"debug","copy_only":true}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.LogLevel = "debug"
	want.CopyOnly = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "log_level: warn\nlog_path: /tmp/calcpad.log\nsettle_delay_ms: 0\nshake_ms: 250\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/calcpad.log", cfg.LogPath)
	assert.Zero(t, cfg.SettleDelay())
	assert.Equal(t, 250*time.Millisecond, cfg.ShakeDuration())
	assert.Equal(t, 2*time.Second, cfg.CopyConfirmDuration())
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"log_level":`), 0o644))
	_, err := Load(broken)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.yml")
	require.NoError(t, os.WriteFile(negative, []byte("shake_ms: -1\n"), 0o644))
	_, err = Load(negative)
	assert.ErrorContains(t, err, "shake_ms")
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"config.json", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sub", name)
			cfg := DefaultConfig()
			cfg.CopyOnly = true
			cfg.SettleDelayMS = 10

			require.NoError(t, cfg.Save(path))
			loaded, err := Load(path)
			require.NoError(t, err)

			if diff := cmp.Diff(cfg, loaded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogPath, "/var/log/calcpad.log")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/log/calcpad.log", cfg.ResolvedLogPath())
}

func TestResolvedLogPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")

	cfg := DefaultConfig()
	assert.Empty(t, cfg.ResolvedLogPath(), "logging is off by default")

	cfg.LogLevel = "info"
	assert.Equal(t, filepath.Join("/state", "calcpad", "calcpad.log"), cfg.ResolvedLogPath())
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "config.json", filepath.Base(GetConfigPath()))
	assert.Equal(t, "calcpad", filepath.Base(filepath.Dir(GetConfigPath())))
}
