package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/themer/pkg/types"
)

// DefaultFileMode is used when the target does not exist yet
const DefaultFileMode fs.FileMode = 0644

// maxLinkHops bounds symlink resolution, matching the usual kernel limit
const maxLinkHops = 40

// ResolveLinks follows name through any chain of symlinks and returns the
// path of the file they point to. A path that does not exist yet is
// returned unchanged.
func ResolveLinks(fsys types.FS, name string) (string, error) {
	for hop := 0; hop < maxLinkHops; hop++ {
		info, err := fsys.Lstat(name)
		if err != nil || info.Mode()&fs.ModeSymlink == 0 {
			return name, nil
		}

		target, err := fsys.Readlink(name)
		if err != nil {
			return "", fmt.Errorf("failed to read link %s: %w", name, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(name), target)
		}
		name = target
	}
	return "", fmt.Errorf("too many levels of symbolic links: %s", name)
}

// WriteFileAtomic replaces name with data by writing a sibling temporary file
// and renaming it over the target. Symlinks are followed, so the file a link
// points to is updated and the link itself stays in place. The target's
// permission bits are kept.
func WriteFileAtomic(fsys types.FS, name string, data []byte) error {
	name, err := ResolveLinks(fsys, name)
	if err != nil {
		return err
	}

	mode := DefaultFileMode
	if info, err := fsys.Stat(name); err == nil {
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(name)
	tempFile := filepath.Join(dir, fmt.Sprintf(".%s.themer-%d.tmp", base, os.Getpid()))

	if err := fsys.WriteFile(tempFile, data, mode); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Rename to actual file (atomic on most systems)
	if err := fsys.Rename(tempFile, name); err != nil {
		_ = fsys.Remove(tempFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
