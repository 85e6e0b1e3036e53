package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home := t.TempDir()

	cfg, err := Load("", home)

	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.Interactive)
	assert.Empty(t, cfg.Source)
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeConfig(t, path, "output = \"json\"\nverbose = true\ninteractive = false\n")

	cfg, err := Load(path, t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Interactive)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), t.TempDir())
	assert.Error(t, err)
}

func TestLoadXDGConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	path := filepath.Join(xdg, "pfn", "config.toml")
	writeConfig(t, path, "output = \"yaml\"\n")

	cfg, err := Load("", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadHomeDotfile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home := t.TempDir()
	path := filepath.Join(home, ".pfn.toml")
	writeConfig(t, path, "verbose = true\n")

	cfg, err := Load("", home)

	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadXDGTakesPrecedenceOverDotfile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home := t.TempDir()
	writeConfig(t, filepath.Join(home, ".config", "pfn", "config.toml"), "output = \"json\"\n")
	writeConfig(t, filepath.Join(home, ".pfn.toml"), "output = \"yaml\"\n")

	cfg, err := Load("", home)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "output = \"json\"\nverbose = false\n")
	t.Setenv("PFN_OUTPUT", "yaml")
	t.Setenv("PFN_VERBOSE", "true")

	cfg, err := Load(path, t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.True(t, cfg.Verbose)
}

func TestLoadInvalidOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "output = \"xml\"\n")

	_, err := Load(path, t.TempDir())

	assert.ErrorContains(t, err, "unsupported output format: xml")
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "output = \n")

	_, err := Load(path, t.TempDir())

	assert.Error(t, err)
}

func TestValidateNormalises(t *testing.T) {
	cfg := &Config{Output: " JSON "}
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "json", cfg.Output)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, []string{"/xdg/pfn/config.toml", "/home/me/.pfn.toml"}, DefaultPaths("/home/me"))

	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Equal(t, []string{"/home/me/.config/pfn/config.toml", "/home/me/.pfn.toml"}, DefaultPaths("/home/me"))
	assert.Empty(t, DefaultPaths(""))
}
