package rewrite

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/shrinkwrap/pkg/lockfile"
	"github.com/arthur-debert/shrinkwrap/pkg/logging"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// TextExtensions is the allow-list of file types the rewriter touches.
var TextExtensions = map[string]bool{
	".html": true,
	".js":   true,
	".jsx":  true,
	".ts":   true,
	".tsx":  true,
	".css":  true,
	".scss": true,
	".json": true,
	".md":   true,
}

// excludedDirs are never descended into: version-control metadata and
// dependency/build output.
var excludedDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

// Rewriter applies a replacement table across a working directory.
type Rewriter struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewRewriter creates a rewriter using fsys for all file access.
func NewRewriter(fsys types.FS) *Rewriter {
	return &Rewriter{fs: fsys, logger: logging.GetLogger("rewrite")}
}

type compiledRule struct {
	rule    types.ReplacementRule
	pattern *regexp.Regexp
}

// Apply rewrites every qualifying occurrence of each rule's old path across
// the text files under workDir and returns the number of files changed.
//
// Rules are applied longest old path first, so a rule whose old path is a
// substring of another's never pre-empts the longer, more specific match.
// Read or write failures are logged per file and do not abort the remaining
// files.
func (r *Rewriter) Apply(workDir string, rules []types.ReplacementRule) int {
	if len(rules) == 0 {
		return 0
	}

	compiled := compileRules(rules)
	changed := 0

	for _, file := range r.collectFiles(workDir) {
		rewritten, err := r.rewriteFile(file, compiled)
		if err != nil {
			r.logger.Warn().Err(err).Str("file", file).Msg("Skipping file")
			continue
		}
		if rewritten {
			changed++
		}
	}

	r.logger.Info().Int("changed", changed).Str("workdir", workDir).Msg("Reference rewrite completed")
	return changed
}

func compileRules(rules []types.ReplacementRule) []compiledRule {
	ordered := make([]types.ReplacementRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i].Old) != len(ordered[j].Old) {
			return len(ordered[i].Old) > len(ordered[j].Old)
		}
		return ordered[i].Old < ordered[j].Old
	})

	compiled := make([]compiledRule, len(ordered))
	for i, rule := range ordered {
		compiled[i] = compiledRule{rule: rule, pattern: Pattern(rule.Old)}
	}
	return compiled
}

func (r *Rewriter) rewriteFile(file string, rules []compiledRule) (bool, error) {
	data, err := r.fs.ReadFile(file)
	if err != nil {
		return false, err
	}

	content := string(data)
	total := 0
	for _, cr := range rules {
		var n int
		content, n = replaceAllPattern(content, cr.pattern, cr.rule.New)
		total += n
	}
	if total == 0 {
		return false, nil
	}

	perm := fs.FileMode(0644)
	if info, err := r.fs.Stat(file); err == nil {
		perm = info.Mode() & fs.ModePerm
	}
	if err := r.fs.WriteFile(file, []byte(content), perm); err != nil {
		return false, err
	}

	r.logger.Debug().Str("file", file).Int("replacements", total).Msg("References rewritten")
	return true, nil
}

// collectFiles walks workDir, skipping excluded directories, and returns the
// text files matching the extension allow-list in deterministic order.
//
// The lock file is skipped even though it is JSON: its keys are the original
// paths the self-healing rule depends on, and it is rewritten from the
// in-memory state at the end of the run anyway. Symlinks are skipped so a
// link into an excluded tree cannot smuggle a file back in.
func (r *Rewriter) collectFiles(dir string) []string {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		r.logger.Warn().Err(err).Str("dir", dir).Msg("Failed to read directory")
		return nil
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)
		if entry.IsDir() {
			if excludedDirs[name] {
				continue
			}
			files = append(files, r.collectFiles(full)...)
			continue
		}
		if name == lockfile.DefaultName {
			continue
		}
		if !TextExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		if info, err := r.fs.Lstat(full); err != nil || info.Mode()&fs.ModeSymlink != 0 {
			continue
		}
		files = append(files, full)
	}
	return files
}
