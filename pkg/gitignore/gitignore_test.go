// pkg/gitignore/gitignore_test.go
// TEST TYPE: Unit Tests (real filesystem via t.TempDir)
// DEPENDENCIES: None
// PURPOSE: Test .gitignore entry management

package gitignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/shrinkwrap/pkg/filesystem"
)

func gitignoreContent(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	return string(data)
}

func TestEnsure_CreatesFile(t *testing.T) {
	dir := t.TempDir()

	err := Ensure(filesystem.NewOS(), dir, []string{"shrinkwrap-lock.json", "backup/"})
	require.NoError(t, err)

	assert.Equal(t, "shrinkwrap-lock.json\nbackup/\n", gitignoreContent(t, dir))
}

func TestEnsure_AppendsOnlyMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("node_modules/\nbackup/\n"), 0644))

	err := Ensure(filesystem.NewOS(), dir, []string{"shrinkwrap-lock.json", "backup/"})
	require.NoError(t, err)

	assert.Equal(t, "node_modules/\nbackup/\nshrinkwrap-lock.json\n", gitignoreContent(t, dir))
}

func TestEnsure_NoopWhenAllPresent(t *testing.T) {
	dir := t.TempDir()
	original := "shrinkwrap-lock.json\nbackup/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(original), 0644))

	err := Ensure(filesystem.NewOS(), dir, []string{"shrinkwrap-lock.json", "backup/"})
	require.NoError(t, err)

	assert.Equal(t, original, gitignoreContent(t, dir))
}
