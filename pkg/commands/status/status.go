// Package status implements the read-only classification view: what the next
// convert run would do, plus lock entries whose targets have vanished.
package status

import (
	"path/filepath"

	"github.com/arthur-debert/shrinkwrap/pkg/codec"
	"github.com/arthur-debert/shrinkwrap/pkg/config"
	"github.com/arthur-debert/shrinkwrap/pkg/conversion"
	"github.com/arthur-debert/shrinkwrap/pkg/discovery"
	"github.com/arthur-debert/shrinkwrap/pkg/filesystem"
	"github.com/arthur-debert/shrinkwrap/pkg/lockfile"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// Options holds options for the status command
type Options struct {
	WorkDir    string
	Config     *config.Config
	FileSystem types.FS
}

// Result is the classification report. Nothing on disk is mutated: lock
// repairs happen in memory only and are discarded.
type Result struct {
	Decisions []types.Decision

	// LockEntries is the number of recorded conversions.
	LockEntries int

	// MissingTargets lists originals whose recorded converted file no longer
	// exists on disk; the next run reconverts them.
	MissingTargets []string
}

// Run classifies every candidate without mutating the filesystem or the
// persisted lock.
func Run(opts Options) (*Result, error) {
	baseDir := opts.WorkDir
	if baseDir == "" {
		baseDir = "."
	}
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(baseDir)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.Validate(baseDir); err != nil {
		return nil, err
	}
	format, _ := codec.ParseFormat(cfg.Format)

	store := lockfile.NewStore(fsys, filepath.Join(baseDir, lockfile.DefaultName))
	lock := store.Load()

	candidates, err := discovery.Candidates(discovery.Options{
		BaseDir:   baseDir,
		InputDir:  cfg.Input,
		Blacklist: cfg.Blacklist,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{LockEntries: lock.Len()}

	for _, original := range lock.Originals() {
		target, _ := lock.Get(original)
		if _, err := fsys.Stat(filepath.Join(baseDir, filepath.FromSlash(target))); err != nil {
			result.MissingTargets = append(result.MissingTargets, original)
		}
	}

	engine := conversion.NewEngine(fsys, lock, baseDir, cfg.Input, cfg.Output, format)
	for _, candidate := range candidates {
		result.Decisions = append(result.Decisions, engine.Decide(candidate))
	}

	return result, nil
}
