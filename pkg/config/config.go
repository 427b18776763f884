// Package config loads and validates the run configuration.
//
// Configuration is layered: embedded defaults, then shrinkwrap.toml (or
// .shrinkwrap.toml) in the working directory, then SHRINKWRAP_* environment
// variables. The core treats the result as already-validated, immutable
// input for the run.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/shrinkwrap/pkg/codec"
	"github.com/arthur-debert/shrinkwrap/pkg/errors"
)

// FileNames are the config file names probed in the working directory, in
// order of preference.
var FileNames = []string{".shrinkwrap.toml", "shrinkwrap.toml"}

const envPrefix = "SHRINKWRAP_"

// Config is the validated, immutable input for one run.
type Config struct {
	// Input is the directory scanned for image assets, relative to the
	// working directory.
	Input string `koanf:"input" toml:"input"`

	// Output is the backup root that mirrors Input's structure for the
	// untouched originals.
	Output string `koanf:"output" toml:"output"`

	// Format is the target image format: png, jpeg, jpg, or webp.
	Format string `koanf:"format" toml:"format"`

	// Quality is the named quality tier: small (80) or smallest (60).
	Quality string `koanf:"quality" toml:"quality"`

	// Blacklist holds glob patterns excluding paths under Input from
	// discovery.
	Blacklist []string `koanf:"blacklist" toml:"blacklist"`

	// WorkDir is the directory whose text files get their references
	// rewritten after conversion.
	WorkDir string `koanf:"workdir" toml:"workdir"`

	// ManageGitignore keeps the lock file and backup root listed in the
	// working directory's .gitignore.
	ManageGitignore bool `koanf:"manage_gitignore" toml:"manage_gitignore"`
}

// Path returns the config file found in dir, if any.
func Path(dir string) (string, bool) {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// Load builds the layered configuration for the given working directory.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file, when present
	if path, ok := Path(dir); ok {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
	}

	// 3. Environment overrides (flat keys, e.g. SHRINKWRAP_FORMAT=jpeg)
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// Validate checks the required fields and the input directory's existence.
// Any error returned here is a fatal setup error: the run aborts before any
// mutation.
func (c *Config) Validate(baseDir string) error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.New(errors.ErrConfigValid, "input directory is required")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New(errors.ErrConfigValid, "output directory is required")
	}
	if _, err := codec.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := codec.ParseTier(c.Quality); err != nil {
		return err
	}

	inputPath := filepath.Join(baseDir, c.Input)
	if info, err := os.Stat(inputPath); err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrInputMissing, "input directory %s does not exist", c.Input)
	}
	return nil
}
