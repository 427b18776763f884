// Package conversion holds the conversion state machine: the decision engine
// that classifies each discovered candidate and the executor that performs
// the backup-then-rename transition for candidates needing conversion.
package conversion

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/shrinkwrap/pkg/codec"
	"github.com/arthur-debert/shrinkwrap/pkg/lockfile"
	"github.com/arthur-debert/shrinkwrap/pkg/logging"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// Engine classifies candidates into dispositions using the lock state and
// filesystem existence checks. It owns no goroutines and assumes a single
// sequential run; the lock is mutated in place only to repair entries lost by
// a prior run (the self-healing rule).
type Engine struct {
	fs        types.FS
	lock      *lockfile.Lock
	baseDir   string
	inputDir  string
	outputDir string
	format    codec.Format
	logger    zerolog.Logger
}

// NewEngine creates a decision engine for one run. All relative paths are
// resolved against baseDir.
func NewEngine(fsys types.FS, lock *lockfile.Lock, baseDir, inputDir, outputDir string, format codec.Format) *Engine {
	return &Engine{
		fs:        fsys,
		lock:      lock,
		baseDir:   baseDir,
		inputDir:  inputDir,
		outputDir: outputDir,
		format:    format,
		logger:    logging.GetLogger("conversion.engine"),
	}
}

// Decide classifies one candidate. The precedence order is part of the
// idempotency contract:
//
//  1. A lock entry whose target still exists wins: the candidate was
//     converted before and must only contribute a replacement rule.
//  2. A candidate that is itself a recorded conversion target is a generated
//     artifact and is never touched.
//  3. Backup and final file both on disk without a lock entry means a prior
//     run's entry was lost; the entry is repaired instead of reconverting.
//  4. Everything else converts now.
//
// A lock entry whose target has vanished falls through to steps 2-4, which
// reconverts the asset and records a fresh entry.
func (e *Engine) Decide(candidate string) types.Decision {
	decision := types.Decision{
		Candidate:  candidate,
		BackupPath: BackupPath(candidate, e.inputDir, e.outputDir),
		FinalPath:  FinalPath(candidate, e.format),
	}

	if target, ok := e.lock.Get(candidate); ok && e.exists(target) {
		decision.Disposition = types.SkipAlreadyConverted
		decision.Target = target
		e.logger.Debug().Str("candidate", candidate).Str("target", target).Msg("Already converted")
		return decision
	}

	if e.lock.HasTarget(candidate) {
		decision.Disposition = types.SkipGeneratedArtifact
		e.logger.Debug().Str("candidate", candidate).Msg("Generated artifact, not reprocessing")
		return decision
	}

	if e.exists(decision.BackupPath) && e.exists(decision.FinalPath) {
		decision.Disposition = types.SkipBackupExists
		decision.Target = decision.FinalPath
		e.lock.Set(candidate, decision.FinalPath)
		e.logger.Info().
			Str("candidate", candidate).
			Str("backup", decision.BackupPath).
			Msg("Backup and target exist, repaired missing lock entry")
		return decision
	}

	decision.Disposition = types.ConvertNow
	decision.Target = decision.FinalPath
	return decision
}

func (e *Engine) exists(rel string) bool {
	_, err := e.fs.Stat(filepath.Join(e.baseDir, filepath.FromSlash(rel)))
	return err == nil
}
