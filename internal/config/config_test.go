package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/meson/pkg/meson"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "config")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 50053, cfg.GRPC.Port)
	assert.Equal(t, FormatCompact, cfg.Meson.Format)
	assert.Equal(t, meson.DefaultCGroupPath, cfg.Meson.CGroupPath)
	assert.Equal(t, 1000, cfg.Meson.MaxBatch)
	assert.Empty(t, cfg.Meson.Fingerprint)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := writeConfig(t, `
grpc:
  port: 6001
meson:
  format: formatted
  max_batch: 50
  fingerprint: "0A0B0C0D"
metrics:
  enabled: false
log:
  level: debug
  pretty: true
`)

	cfg, err := LoadFrom(dir, "config")
	require.NoError(t, err)
	assert.Equal(t, 6001, cfg.GRPC.Port)
	assert.Equal(t, FormatFormatted, cfg.Meson.Format)
	assert.Equal(t, 50, cfg.Meson.MaxBatch)
	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Log.Pretty)

	fp, ok, err := cfg.Meson.PinnedFingerprint()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [4]byte{0x0a, 0x0b, 0x0c, 0x0d}, fp)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "7007")
	t.Setenv("MESON_FINGERPRINT", "deadbeef")
	t.Setenv("MESON_MESON_MAX_BATCH", "25")

	cfg, err := LoadFrom(t.TempDir(), "config")
	require.NoError(t, err)
	assert.Equal(t, 7007, cfg.GRPC.Port)
	assert.Equal(t, "deadbeef", cfg.Meson.Fingerprint)
	assert.Equal(t, 25, cfg.Meson.MaxBatch)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"format":      "meson:\n  format: base64\n",
		"batch zero":  "meson:\n  max_batch: 0\n",
		"batch large": "meson:\n  max_batch: 20000\n",
		"fingerprint": "meson:\n  fingerprint: xyz\n",
		"port":        "grpc:\n  port: 70000\n",
		"level":       "log:\n  level: loud\n",
		"path":        "metrics:\n  path: metrics\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, body), "config")
			assert.Error(t, err)
		})
	}
}

func TestPinnedFingerprintUnset(t *testing.T) {
	_, ok, err := MesonConfig{}.PinnedFingerprint()
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = MesonConfig{Fingerprint: "zzzzzzzz"}.PinnedFingerprint()
	assert.Error(t, err)
}
