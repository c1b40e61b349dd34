// pkg/testutil/environment.go
// DEPENDENCIES: afero
// PURPOSE: Orchestrate test environments with isolated home and XDG dirs

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/themer/pkg/filesystem"
	"github.com/arthur-debert/themer/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a filesystem and an isolated home directory
type TestEnvironment struct {
	HomeDir   string
	ConfigDir string
	StateDir  string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. HOME and the XDG
// directories point inside the environment for the duration of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{Type: envType, t: t}

	switch envType {
	case EnvIsolated:
		env.HomeDir = filepath.Join(t.TempDir(), "home")
		env.FS = filesystem.NewOS()
	default:
		env.HomeDir = "/virtual/home"
		env.FS = filesystem.NewMemory()
	}
	env.ConfigDir = filepath.Join(env.HomeDir, ".config")
	env.StateDir = filepath.Join(env.HomeDir, ".local", "state")

	for _, dir := range []string{env.HomeDir, env.ConfigDir, env.StateDir} {
		require.NoError(t, env.FS.MkdirAll(dir, 0755))
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("THEMER_CONFIG", "")
	t.Setenv("THEMER_STATE_DIR", "")

	return env
}

// Path joins elements onto the environment's home directory
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, elem...)...)
}

// WriteFile creates path with content, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) string {
	env.t.Helper()
	WriteFile(env.t, env.FS, path, content)
	return path
}

// ReadFile returns the content of path, failing the test if it is missing
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	return ReadFile(env.t, env.FS, path)
}

// WriteFile creates path with content on fsys, creating parent directories
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the content of path on fsys
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
