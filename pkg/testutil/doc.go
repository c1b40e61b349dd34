// Package testutil provides utilities for testing themer components.
//
// Key components:
//   - TestEnvironment: isolated home, XDG directories and filesystem per test
//   - FailingFS: wraps a filesystem and injects errors for chosen paths
//   - SampleConfig: a small configuration with one single-block and one
//     multi-block file entry
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; it runs on an afero MemMapFs
//   - Use EnvIsolated only where a real file is needed (reload, logging)
//   - All test data should be defined inline, not in external files
package testutil
