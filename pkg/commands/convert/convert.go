// Package convert orchestrates the full conversion pipeline: discovery,
// classification, execution, replacement-table rebuild, reference rewriting,
// and lock persistence.
package convert

import (
	"path/filepath"

	"github.com/arthur-debert/shrinkwrap/pkg/codec"
	"github.com/arthur-debert/shrinkwrap/pkg/config"
	"github.com/arthur-debert/shrinkwrap/pkg/conversion"
	"github.com/arthur-debert/shrinkwrap/pkg/discovery"
	"github.com/arthur-debert/shrinkwrap/pkg/filesystem"
	"github.com/arthur-debert/shrinkwrap/pkg/gitignore"
	"github.com/arthur-debert/shrinkwrap/pkg/lockfile"
	"github.com/arthur-debert/shrinkwrap/pkg/logging"
	"github.com/arthur-debert/shrinkwrap/pkg/rewrite"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// Options holds options for the convert command
type Options struct {
	// WorkDir is the run's base directory; empty means the current
	// directory. All configured paths resolve against it.
	WorkDir string

	// Config overrides loading the layered configuration from WorkDir.
	Config *config.Config

	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS

	// Encoder allows injecting an image codec for testing.
	Encoder codec.Encoder

	// DryRun classifies and reports without mutating anything.
	DryRun bool
}

// Result is the run summary reported to the user.
type Result struct {
	Converted        int
	Failed           int
	AlreadyConverted int
	Generated        int
	Repaired         int
	FilesRewritten   int
	LockSaved        bool
	DryRun           bool
	Decisions        []types.Decision
}

// Run executes the pipeline. Only setup errors (configuration, missing input
// directory) are returned; per-candidate and per-file failures are recovered,
// logged, and counted in the Result.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.convert")
	defer logging.LogOperationStart(logger, "convert")()

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

	// Validated above.
	format, _ := codec.ParseFormat(cfg.Format)
	tier, _ := codec.ParseTier(cfg.Quality)

	encoder := opts.Encoder
	if encoder == nil {
		encoder = codec.New()
	}

	logger.Info().
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Str("format", string(format)).
		Str("quality", string(tier)).
		Bool("dry_run", opts.DryRun).
		Msg("Starting conversion run")

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

	engine := conversion.NewEngine(fsys, lock, baseDir, cfg.Input, cfg.Output, format)
	executor := conversion.NewExecutor(fsys, encoder, lock, baseDir, format, tier.Quality())

	result := &Result{DryRun: opts.DryRun}
	for _, candidate := range candidates {
		decision := engine.Decide(candidate)
		result.Decisions = append(result.Decisions, decision)

		switch decision.Disposition {
		case types.SkipAlreadyConverted:
			result.AlreadyConverted++
		case types.SkipGeneratedArtifact:
			result.Generated++
		case types.SkipBackupExists:
			result.Repaired++
		case types.ConvertNow:
			if opts.DryRun {
				result.Converted++
				continue
			}
			if err := executor.Convert(decision); err != nil {
				logger.Error().Err(err).Str("candidate", candidate).Msg("Conversion failed")
				result.Failed++
				continue
			}
			result.Converted++
		}
	}

	// The table is rebuilt from the lock in its final form, not from this
	// run's decisions, so entries from earlier runs are covered too.
	table := rewrite.BuildTable(lock, cfg.Input)

	if !opts.DryRun {
		if cfg.WorkDir != "" {
			rewriter := rewrite.NewRewriter(fsys)
			result.FilesRewritten = rewriter.Apply(filepath.Join(baseDir, cfg.WorkDir), table)
		}

		if cfg.ManageGitignore {
			entries := []string{lockfile.DefaultName, cfg.Output + "/"}
			if err := gitignore.Ensure(fsys, baseDir, entries); err != nil {
				logger.Warn().Err(err).Msg("Failed to update .gitignore")
			}
		}

		// Saved unconditionally, even after individual failures, so partial
		// progress survives the next run.
		result.LockSaved = store.Save(lock) == nil
	}

	logger.Info().
		Int("converted", result.Converted).
		Int("failed", result.Failed).
		Int("already_converted", result.AlreadyConverted).
		Int("repaired", result.Repaired).
		Int("files_rewritten", result.FilesRewritten).
		Msg("Conversion run completed")
	return result, nil
}
