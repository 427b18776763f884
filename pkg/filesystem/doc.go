// Package filesystem provides the OS-backed implementation of types.FS.
//
// Core packages take a types.FS so tests can inject fault-injecting or
// in-memory implementations; production code always uses NewOS().
package filesystem
