// pkg/commands/status/status_test.go
// TEST TYPE: Integration Tests (real temp tree)
// PURPOSE: Test the read-only classification view

package status_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/shrinkwrap/pkg/commands/status"
	"github.com/arthur-debert/shrinkwrap/pkg/config"
	"github.com/arthur-debert/shrinkwrap/pkg/filesystem"
	"github.com/arthur-debert/shrinkwrap/pkg/lockfile"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

func seed(t *testing.T, baseDir, rel string) {
	t.Helper()
	full := filepath.Join(baseDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte("x"), 0644))
}

func testConfig() *config.Config {
	return &config.Config{
		Input:   "assets",
		Output:  "backup",
		Format:  "webp",
		Quality: "small",
		WorkDir: ".",
	}
}

func TestRun_Classifies(t *testing.T) {
	baseDir := t.TempDir()
	seed(t, baseDir, "assets/new.png")
	seed(t, baseDir, "assets/done.png")
	seed(t, baseDir, "assets/done.webp")

	store := lockfile.NewStore(filesystem.NewOS(), filepath.Join(baseDir, lockfile.DefaultName))
	lock := lockfile.NewLock()
	lock.Set("assets/done.png", "assets/done.webp")
	require.NoError(t, store.Save(lock))

	result, err := status.Run(status.Options{WorkDir: baseDir, Config: testConfig()})
	require.NoError(t, err)

	assert.Equal(t, 1, result.LockEntries)
	assert.Empty(t, result.MissingTargets)

	byCandidate := make(map[string]types.Disposition)
	for _, d := range result.Decisions {
		byCandidate[d.Candidate] = d.Disposition
	}
	assert.Equal(t, types.ConvertNow, byCandidate["assets/new.png"])
	assert.Equal(t, types.SkipAlreadyConverted, byCandidate["assets/done.png"])
	assert.Equal(t, types.SkipGeneratedArtifact, byCandidate["assets/done.webp"])
}

func TestRun_ReportsMissingTargets(t *testing.T) {
	baseDir := t.TempDir()
	seed(t, baseDir, "assets/done.png")

	store := lockfile.NewStore(filesystem.NewOS(), filepath.Join(baseDir, lockfile.DefaultName))
	lock := lockfile.NewLock()
	lock.Set("assets/done.png", "assets/done.webp")
	require.NoError(t, store.Save(lock))

	result, err := status.Run(status.Options{WorkDir: baseDir, Config: testConfig()})
	require.NoError(t, err)

	assert.Equal(t, []string{"assets/done.png"}, result.MissingTargets)
}

func TestRun_DoesNotPersistRepairs(t *testing.T) {
	// Backup and converted file exist without a lock entry. Status
	// reports the repair but must not write it to disk.
	baseDir := t.TempDir()
	seed(t, baseDir, "assets/logo.png")
	seed(t, baseDir, "assets/logo.webp")
	seed(t, baseDir, "backup/logo.png")

	result, err := status.Run(status.Options{WorkDir: baseDir, Config: testConfig()})
	require.NoError(t, err)

	var repaired bool
	for _, d := range result.Decisions {
		if d.Disposition == types.SkipBackupExists {
			repaired = true
		}
	}
	assert.True(t, repaired)

	_, statErr := os.Stat(filepath.Join(baseDir, lockfile.DefaultName))
	assert.True(t, os.IsNotExist(statErr))
}
