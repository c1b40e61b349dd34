// Package filesystem provides filesystem implementations for themer.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem and an afero-backed one used by tests, plus the
// atomic write used when a managed block is substituted into a target file.
package filesystem
