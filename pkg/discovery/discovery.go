// Package discovery enumerates conversion candidates under the input root.
package discovery

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/shrinkwrap/pkg/errors"
	"github.com/arthur-debert/shrinkwrap/pkg/logging"
)

// DefaultExtensions lists the source image types eligible for conversion.
var DefaultExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}

// Options configures one discovery pass.
type Options struct {
	// BaseDir is the run's working directory. Candidate paths are returned
	// relative to it.
	BaseDir string

	// InputDir is the input root, relative to BaseDir.
	InputDir string

	// Extensions are matched case-insensitively, without dots. Nil means
	// DefaultExtensions.
	Extensions []string

	// Blacklist holds doublestar glob patterns matched against each
	// candidate's path relative to the input root. A match excludes the
	// candidate.
	Blacklist []string
}

// Candidates returns the sorted, slash-separated candidate paths relative to
// BaseDir.
func Candidates(opts Options) ([]string, error) {
	logger := logging.GetLogger("discovery")

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	root := filepath.Join(opts.BaseDir, opts.InputDir)
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrInputMissing, "input directory %s does not exist", opts.InputDir)
	}

	// Extensions match case-insensitively (logo.PNG is a candidate), which
	// the glob syntax cannot express, so the walk matches every file and
	// the extension check happens here.
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[strings.ToLower(ext)] = true
	}

	matches, err := doublestar.Glob(os.DirFS(root), "**/*", doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "failed to walk %s", opts.InputDir)
	}

	inputDir := path.Clean(filepath.ToSlash(opts.InputDir))
	candidates := make([]string, 0, len(matches))
	for _, rel := range matches {
		ext := strings.TrimPrefix(strings.ToLower(path.Ext(rel)), ".")
		if !wanted[ext] {
			continue
		}
		if excluded(rel, opts.Blacklist) {
			logger.Debug().Str("path", rel).Msg("Candidate excluded by blacklist")
			continue
		}
		candidates = append(candidates, path.Join(inputDir, rel))
	}
	sort.Strings(candidates)

	logger.Debug().
		Int("candidates", len(candidates)).
		Str("input", opts.InputDir).
		Msg("Discovery completed")
	return candidates, nil
}

func excluded(rel string, blacklist []string) bool {
	for _, pattern := range blacklist {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
