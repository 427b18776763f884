// Package lockfile persists the original→converted path mapping that makes
// conversion runs idempotent.
//
// The lock file is a plain JSON object in the working tree, keyed by the
// original relative path with the converted relative path as the value. It is
// human-readable and safe to delete: losing it only costs re-detection via
// the backup-exists rule, never re-encoding of assets whose backup and target
// still exist.
package lockfile

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/arthur-debert/shrinkwrap/pkg/logging"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// DefaultName is the lock file's fixed name in the working tree.
const DefaultName = "shrinkwrap-lock.json"

// Lock is the in-memory lock state: original relative path → converted
// relative path. It is the single source of truth for what has been
// converted. A single Lock is loaded at the start of a run, mutated in place,
// and saved once at the end.
type Lock struct {
	entries map[string]string
}

// NewLock returns an empty lock state.
func NewLock() *Lock {
	return &Lock{entries: make(map[string]string)}
}

// Get returns the converted path recorded for original, if any.
func (l *Lock) Get(original string) (string, bool) {
	converted, ok := l.entries[original]
	return converted, ok
}

// Set records (or repairs) the conversion of original to converted.
func (l *Lock) Set(original, converted string) {
	l.entries[original] = converted
}

// HasTarget reports whether path appears as a converted path anywhere in the
// lock. Such a file is a generated artifact and must never be reconverted.
func (l *Lock) HasTarget(path string) bool {
	for _, converted := range l.entries {
		if converted == path {
			return true
		}
	}
	return false
}

// Len returns the number of recorded conversions.
func (l *Lock) Len() int {
	return len(l.entries)
}

// Originals returns the recorded original paths in sorted order.
func (l *Lock) Originals() []string {
	keys := make([]string, 0, len(l.entries))
	for k := range l.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Store loads and persists a Lock at a fixed path.
type Store struct {
	fs   types.FS
	path string
}

// NewStore creates a store persisting to path on fsys.
func NewStore(fsys types.FS, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// Path returns the lock file path the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the lock file. It never fails the run: a missing, unreadable,
// or unparsable file yields an empty lock state and a log line.
func (s *Store) Load() *Lock {
	logger := logging.GetLogger("lockfile")

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", s.path).Msg("No lock file found, starting with empty state")
		} else {
			logger.Warn().Err(err).Str("path", s.path).Msg("Failed to read lock file, starting with empty state")
		}
		return NewLock()
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn().Err(err).Str("path", s.path).Msg("Failed to parse lock file, starting with empty state")
		return NewLock()
	}

	logger.Debug().Int("entries", len(entries)).Str("path", s.path).Msg("Lock file loaded")
	return &Lock{entries: entries}
}

// Save persists the full lock state. A write failure is logged and returned
// but is not fatal to the run: the in-memory results are still reported.
func (s *Store) Save(l *Lock) error {
	logger := logging.GetLogger("lockfile")

	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode lock state")
		return err
	}
	data = append(data, '\n')

	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		logger.Error().Err(err).Str("path", s.path).Msg("Failed to write lock file")
		return err
	}

	logger.Debug().Int("entries", l.Len()).Str("path", s.path).Msg("Lock file saved")
	return nil
}
