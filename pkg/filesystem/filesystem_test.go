package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/themer/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))

	renamed := filepath.Join(tmpDir, "renamed.txt")
	require.NoError(t, fs.Rename(testFile, renamed))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.Remove(renamed))
}

func TestAferoFS_ReadFileRejectsDirectories(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/etc/kitty", 0755))

	_, err := fs.ReadFile("/etc/kitty")
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("replaces_content_and_keeps_mode", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "kitty.conf")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0600))

		require.NoError(t, WriteFileAtomic(NewOS(), target, []byte("new")))

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file must not be left behind")
	})

	t.Run("writes_through_symlink", func(t *testing.T) {
		tmpDir := t.TempDir()
		realPath := filepath.Join(tmpDir, "dotfiles", "kitty.conf")
		link := filepath.Join(tmpDir, "kitty.conf")
		require.NoError(t, os.MkdirAll(filepath.Dir(realPath), 0755))
		require.NoError(t, os.WriteFile(realPath, []byte("old"), 0600))
		require.NoError(t, os.Symlink(filepath.Join("dotfiles", "kitty.conf"), link))

		for _, fsys := range []types.FS{NewOS(), NewAferoFS(afero.NewOsFs())} {
			require.NoError(t, WriteFileAtomic(fsys, link, []byte("new")))

			info, err := os.Lstat(link)
			require.NoError(t, err)
			assert.NotZero(t, info.Mode()&os.ModeSymlink, "link must stay a symlink")

			content, err := os.ReadFile(realPath)
			require.NoError(t, err)
			assert.Equal(t, "new", string(content))

			info, err = os.Stat(realPath)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			require.NoError(t, os.WriteFile(realPath, []byte("old"), 0600))
		}
	})

	t.Run("creates_missing_target_in_memory", func(t *testing.T) {
		fs := NewMemory()
		require.NoError(t, fs.MkdirAll("/home/user", 0755))

		require.NoError(t, WriteFileAtomic(fs, "/home/user/colors.conf", []byte("bg = #000")))

		content, err := fs.ReadFile("/home/user/colors.conf")
		require.NoError(t, err)
		assert.Equal(t, "bg = #000", string(content))
	})
}

func TestResolveLinks(t *testing.T) {
	tmpDir := t.TempDir()
	realPath := filepath.Join(tmpDir, "realPath.conf")
	first := filepath.Join(tmpDir, "first.conf")
	second := filepath.Join(tmpDir, "second.conf")
	require.NoError(t, os.WriteFile(realPath, []byte("x"), 0644))
	require.NoError(t, os.Symlink(realPath, first))
	require.NoError(t, os.Symlink("first.conf", second))

	fsys := NewOS()

	got, err := ResolveLinks(fsys, second)
	require.NoError(t, err)
	assert.Equal(t, realPath, got)

	got, err = ResolveLinks(fsys, realPath)
	require.NoError(t, err)
	assert.Equal(t, realPath, got)

	missing := filepath.Join(tmpDir, "missing.conf")
	got, err = ResolveLinks(fsys, missing)
	require.NoError(t, err)
	assert.Equal(t, missing, got)

	loop := filepath.Join(tmpDir, "loop.conf")
	require.NoError(t, os.Symlink("loop.conf", loop))
	_, err = ResolveLinks(fsys, loop)
	assert.Error(t, err)
}
