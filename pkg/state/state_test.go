// pkg/state/state_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero memory filesystem
// PURPOSE: Test reading and writing the current theme record

package state

import (
	"testing"
	"time"

	"github.com/arthur-debert/themer/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	fsys := filesystem.NewMemory()
	store := NewAt(fsys, "/state/themer/current")
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	require.NoError(t, store.Write("dark", now))

	record, err := store.Read()
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "dark", record.Theme)
	assert.True(t, now.Equal(record.AppliedAt))
	assert.Equal(t, "dark", store.Current())

	data, err := fsys.ReadFile("/state/themer/current")
	require.NoError(t, err)
	assert.Equal(t, "dark|2026-10-16T09:30:00Z\n", string(data))
}

func TestStore_Missing(t *testing.T) {
	store := NewAt(filesystem.NewMemory(), "/nowhere/current")

	record, err := store.Read()
	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.Equal(t, "", store.Current())
}

func TestStore_BareThemeName(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/s", 0755))
	require.NoError(t, fsys.WriteFile("/s/current", []byte("light\n"), 0644))

	record, err := NewAt(fsys, "/s/current").Read()
	require.NoError(t, err)
	assert.Equal(t, "light", record.Theme)
	assert.True(t, record.AppliedAt.IsZero())
}

func TestNew_UsesStateDir(t *testing.T) {
	t.Setenv("THEMER_STATE_DIR", "/custom/state")
	assert.Equal(t, "/custom/state/current", New(filesystem.NewMemory()).Path())
}
