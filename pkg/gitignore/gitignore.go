// Package gitignore keeps generated artifacts out of version control.
package gitignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/shrinkwrap/pkg/logging"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// Ensure appends the given entries to dir's .gitignore when they are not
// already listed. The file is created if missing. Failures are the caller's
// to log; they are never fatal to a run.
func Ensure(fsys types.FS, dir string, entries []string) error {
	logger := logging.GetLogger("gitignore")
	path := filepath.Join(dir, ".gitignore")

	var lines []string
	data, err := fsys.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err == nil {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	present := make(map[string]bool, len(lines))
	for _, line := range lines {
		present[strings.TrimSpace(line)] = true
	}

	added := 0
	for _, entry := range entries {
		if entry == "" || present[entry] {
			continue
		}
		lines = append(lines, entry)
		present[entry] = true
		added++
	}
	if added == 0 {
		return nil
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}

	logger.Debug().Int("added", added).Str("path", path).Msg("Updated .gitignore")
	return nil
}
