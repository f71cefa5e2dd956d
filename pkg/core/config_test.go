// pkg/core/config_test.go
package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "version_name: \"2015\"\nplatform: amd64\ndebug: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "2015", cfg.VersionName)
	require.Equal(t, "amd64", cfg.Platform)
	require.True(t, cfg.Debug)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Empty(t, cfg.VersionName)
	require.NotEmpty(t, cfg.Platform)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("platform: [unclosed"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &Config{VersionName: "2017", Platform: "x86_amd64"}

	require.NoError(t, SaveConfig(in, path))

	out, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, in.VersionName, out.VersionName)
	require.Equal(t, in.Platform, out.Platform)
}
