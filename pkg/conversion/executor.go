package conversion

import (
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/shrinkwrap/pkg/codec"
	"github.com/arthur-debert/shrinkwrap/pkg/errors"
	"github.com/arthur-debert/shrinkwrap/pkg/lockfile"
	"github.com/arthur-debert/shrinkwrap/pkg/logging"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// Executor performs the conversion transition for ConvertNow candidates.
// Each candidate is a three-step sequence whose order is load-bearing:
//
//  1. Encode to a temp file beside the original. A failure here leaves the
//     original untouched.
//  2. Move the original into the backup path, creating directories and
//     overwriting any stale backup.
//  3. Rename the temp file to the final path, overwriting any stale file.
//
// A failure at any step aborts that candidate only; the lock is updated only
// after step 3 succeeds. If step 2 succeeds and step 3 fails, the original
// lives only at the backup path and the temp file is left on disk for the
// next run's encode to overwrite. That window is a known gap: os.Rename is
// as atomic as the platform allows, and no undocumented recovery is
// attempted.
type Executor struct {
	fs      types.FS
	encoder codec.Encoder
	lock    *lockfile.Lock
	baseDir string
	format  codec.Format
	quality int
	logger  zerolog.Logger
}

// NewExecutor creates an executor for one run.
func NewExecutor(fsys types.FS, encoder codec.Encoder, lock *lockfile.Lock, baseDir string, format codec.Format, quality int) *Executor {
	return &Executor{
		fs:      fsys,
		encoder: encoder,
		lock:    lock,
		baseDir: baseDir,
		format:  format,
		quality: quality,
		logger:  logging.GetLogger("conversion.executor"),
	}
}

// Convert runs the three-step transition for one ConvertNow decision and
// records the conversion in the lock on success.
func (x *Executor) Convert(d types.Decision) error {
	temp := TempPath(d.Candidate)

	if err := x.encoder.Encode(x.abs(d.Candidate), x.format, x.quality, x.abs(temp)); err != nil {
		return errors.Wrapf(err, errors.ErrEncode, "failed to encode %s", d.Candidate)
	}

	if err := x.fs.MkdirAll(filepath.Dir(x.abs(d.BackupPath)), 0755); err != nil {
		x.discardTemp(temp)
		return errors.Wrapf(err, errors.ErrBackupMove, "failed to create backup directory for %s", d.Candidate)
	}
	if err := x.moveFile(x.abs(d.Candidate), x.abs(d.BackupPath)); err != nil {
		x.discardTemp(temp)
		return errors.Wrapf(err, errors.ErrBackupMove, "failed to move %s to %s", d.Candidate, d.BackupPath)
	}

	if err := x.fs.Rename(x.abs(temp), x.abs(d.FinalPath)); err != nil {
		x.logger.Error().
			Str("candidate", d.Candidate).
			Str("backup", d.BackupPath).
			Str("temp", temp).
			Msg("Original is backed up but the encoded file could not be renamed; temp file left in place")
		return errors.Wrapf(err, errors.ErrRename, "failed to rename %s to %s", temp, d.FinalPath)
	}

	x.lock.Set(d.Candidate, d.FinalPath)
	x.logger.Info().
		Str("original", d.Candidate).
		Str("converted", d.FinalPath).
		Str("backup", d.BackupPath).
		Msg("Converted")
	return nil
}

// moveFile renames src to dest, falling back to copy-and-remove when the
// rename crosses filesystems.
func (x *Executor) moveFile(src, dest string) error {
	if err := x.fs.Rename(src, dest); err == nil {
		return nil
	}

	info, err := x.fs.Stat(src)
	if err != nil {
		return err
	}
	data, err := x.fs.ReadFile(src)
	if err != nil {
		return err
	}
	perm := info.Mode() & fs.ModePerm
	if err := x.fs.WriteFile(dest, data, perm); err != nil {
		return err
	}
	return x.fs.Remove(src)
}

func (x *Executor) discardTemp(temp string) {
	if err := x.fs.Remove(x.abs(temp)); err != nil {
		x.logger.Warn().Err(err).Str("temp", temp).Msg("Failed to remove temp file")
	}
}

func (x *Executor) abs(rel string) string {
	return filepath.Join(x.baseDir, filepath.FromSlash(rel))
}
