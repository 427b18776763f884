// Package initialize writes a starter configuration file.
package initialize

import (
	"path/filepath"

	"github.com/arthur-debert/shrinkwrap/pkg/config"
	"github.com/arthur-debert/shrinkwrap/pkg/errors"
	"github.com/arthur-debert/shrinkwrap/pkg/filesystem"
	"github.com/arthur-debert/shrinkwrap/pkg/logging"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// Options holds options for the init command
type Options struct {
	// WorkDir is where the config file is written; empty means the current
	// directory.
	WorkDir string

	// Config holds the settings to write.
	Config config.Config

	// Force overwrites an existing config file.
	Force bool

	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// Result reports the written file.
type Result struct {
	Path string
}

// Run writes the starter config. It refuses to clobber an existing config
// file unless Force is set.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.init")

	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if existing, ok := config.Path(dir); ok && !opts.Force {
		return nil, errors.Newf(errors.ErrInvalidInput, "config file already exists: %s (use --force to overwrite)", existing)
	}

	data, err := config.Generate(&opts.Config)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, config.FileNames[1])
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	logger.Info().Str("path", path).Msg("Wrote starter config")
	return &Result{Path: path}, nil
}
