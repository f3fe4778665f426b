package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knightly/knightly/internal/status"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
data:
  dir: /tmp/knightly-test
  missions: /tmp/missions.yaml
status:
  key: presence
ui:
  celebration_seconds: 5
  bar_width: 60
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/knightly-test", cfg.Data.Dir)
	assert.Equal(t, "/tmp/missions.yaml", cfg.Data.Missions)
	assert.Equal(t, "presence", cfg.Status.Key)
	assert.Equal(t, 5*time.Second, cfg.CelebrationDuration())
	assert.Equal(t, 60, cfg.UI.BarWidth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/knightly-test/settings.db", cfg.SettingsPath())
	assert.Equal(t, "/tmp/knightly-test/knightly.log", cfg.LogPath())
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	path := writeConfig(t, `
status:
  key: ""
ui:
  celebration_seconds: 0
  bar_width: -3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.CelebrationDuration())
	assert.Equal(t, defaultBarWidth, cfg.UI.BarWidth)
	assert.Equal(t, status.DefaultKey, cfg.Status.Key)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "ui:\n  bar_width: 20\n")
	t.Setenv("KNIGHTLY_UI_BAR_WIDTH", "33")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 33, cfg.UI.BarWidth)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3*time.Second, cfg.CelebrationDuration())
	assert.Equal(t, status.DefaultKey, cfg.Status.Key)
	assert.NotEmpty(t, cfg.Data.Dir)
}
