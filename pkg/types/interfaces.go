package types

import "io/fs"

// FS abstracts filesystem operations for testability
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Move/remove operations
	Rename(oldpath, newpath string) error
	Remove(name string) error

	// Lstat can fall back to Stat in test implementations
	Lstat(name string) (fs.FileInfo, error)
}
