// pkg/config/config_test.go
// TEST TYPE: Unit Tests (real filesystem via t.TempDir)
// DEPENDENCIES: None
// PURPOSE: Test layered configuration loading and validation

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/shrinkwrap/pkg/errors"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, "small", cfg.Quality)
	assert.Equal(t, ".", cfg.WorkDir)
	assert.True(t, cfg.ManageGitignore)
	assert.Empty(t, cfg.Input)
	assert.Empty(t, cfg.Blacklist)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "shrinkwrap.toml", `
input = "assets"
output = "backup"
format = "jpeg"
quality = "smallest"
blacklist = ["sprites/**"]
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.Input)
	assert.Equal(t, "backup", cfg.Output)
	assert.Equal(t, "jpeg", cfg.Format)
	assert.Equal(t, "smallest", cfg.Quality)
	assert.Equal(t, []string{"sprites/**"}, cfg.Blacklist)
	// Untouched keys keep their defaults.
	assert.Equal(t, ".", cfg.WorkDir)
}

func TestLoad_HiddenFileWins(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "shrinkwrap.toml", `format = "jpeg"`)
	writeConfig(t, dir, ".shrinkwrap.toml", `format = "png"`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "png", cfg.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "shrinkwrap.toml", `format = "jpeg"`)
	t.Setenv("SHRINKWRAP_FORMAT", "png")
	t.Setenv("SHRINKWRAP_INPUT", "assets")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, "assets", cfg.Input)
}

func TestLoad_BadToml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "shrinkwrap.toml", `input = [unclosed`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestValidate(t *testing.T) {
	baseDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "assets"), 0755))

	valid := Config{Input: "assets", Output: "backup", Format: "webp", Quality: "small"}

	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantCode errors.ErrorCode
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing input", func(c *Config) { c.Input = "" }, errors.ErrConfigValid},
		{"missing output", func(c *Config) { c.Output = "" }, errors.ErrConfigValid},
		{"bad format", func(c *Config) { c.Format = "tiff" }, errors.ErrConfigValid},
		{"bad quality", func(c *Config) { c.Quality = "tiny" }, errors.ErrConfigValid},
		{"input does not exist", func(c *Config) { c.Input = "nope" }, errors.ErrInputMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate(baseDir)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode))
		})
	}
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	_, ok := Path(dir)
	assert.False(t, ok)

	writeConfig(t, dir, "shrinkwrap.toml", "")
	p, ok := Path(dir)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "shrinkwrap.toml"), p)
}

func TestGenerate_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	in := Config{
		Input:           "assets",
		Output:          "backup",
		Format:          "webp",
		Quality:         "small",
		WorkDir:         ".",
		ManageGitignore: true,
	}

	data, err := Generate(&in)
	require.NoError(t, err)
	writeConfig(t, dir, "shrinkwrap.toml", string(data))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, in.Input, cfg.Input)
	assert.Equal(t, in.Output, cfg.Output)
	assert.Equal(t, in.Format, cfg.Format)
	assert.Equal(t, in.Quality, cfg.Quality)
}
