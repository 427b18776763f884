// pkg/discovery/discovery_test.go
// TEST TYPE: Unit Tests (real filesystem via t.TempDir)
// DEPENDENCIES: None
// PURPOSE: Test candidate enumeration, extension matching and blacklisting

package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/shrinkwrap/pkg/errors"
)

func seed(t *testing.T, baseDir string, paths ...string) {
	t.Helper()
	for _, rel := range paths {
		full := filepath.Join(baseDir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0644))
	}
}

func TestCandidates(t *testing.T) {
	baseDir := t.TempDir()
	seed(t, baseDir,
		"assets/logo.png",
		"assets/icons/arrow.gif",
		"assets/photos/me.JPG",
		"assets/readme.md",
		"assets/raw.psd",
		"outside.png",
	)

	got, err := Candidates(Options{BaseDir: baseDir, InputDir: "assets"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"assets/icons/arrow.gif",
		"assets/logo.png",
		"assets/photos/me.JPG",
	}, got)
}

func TestCandidates_Blacklist(t *testing.T) {
	baseDir := t.TempDir()
	seed(t, baseDir,
		"assets/logo.png",
		"assets/sprites/a.png",
		"assets/sprites/b.png",
		"assets/photos/c.jpeg",
	)

	got, err := Candidates(Options{
		BaseDir:   baseDir,
		InputDir:  "assets",
		Blacklist: []string{"sprites/**", "*.jpeg"},
	})
	require.NoError(t, err)

	// Patterns match against the path relative to the input root.
	// "*.jpeg" only covers the top level, so the nested jpeg survives.
	assert.Equal(t, []string{
		"assets/logo.png",
		"assets/photos/c.jpeg",
	}, got)
}

func TestCandidates_CaseInsensitiveExtensions(t *testing.T) {
	baseDir := t.TempDir()
	seed(t, baseDir,
		"assets/shot.PnG",
		"assets/scan.JPEG",
		"assets/readme.TXT",
	)

	got, err := Candidates(Options{BaseDir: baseDir, InputDir: "assets"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"assets/scan.JPEG",
		"assets/shot.PnG",
	}, got)
}

func TestCandidates_CustomExtensions(t *testing.T) {
	baseDir := t.TempDir()
	seed(t, baseDir, "assets/a.png", "assets/b.gif")

	got, err := Candidates(Options{
		BaseDir:    baseDir,
		InputDir:   "assets",
		Extensions: []string{"gif"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/b.gif"}, got)
}

func TestCandidates_MissingInput(t *testing.T) {
	_, err := Candidates(Options{BaseDir: t.TempDir(), InputDir: "assets"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputMissing))
}

func TestCandidates_EmptyInput(t *testing.T) {
	baseDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "assets"), 0755))

	got, err := Candidates(Options{BaseDir: baseDir, InputDir: "assets"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
