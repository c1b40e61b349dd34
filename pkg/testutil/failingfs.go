package testutil

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/arthur-debert/themer/pkg/types"
)

// ErrInjected is returned by FailingFS for every injected failure
var ErrInjected = errors.New("injected failure")

// Op names a filesystem operation FailingFS can fail
type Op string

const (
	OpRead   Op = "read"
	OpWrite  Op = "write"
	OpRename Op = "rename"
)

// FailingFS wraps a filesystem and fails chosen operations on chosen paths
type FailingFS struct {
	types.FS

	mu       sync.Mutex
	failures map[Op]map[string]bool
	writes   int
}

// NewFailingFS wraps fsys
func NewFailingFS(fsys types.FS) *FailingFS {
	return &FailingFS{FS: fsys, failures: make(map[Op]map[string]bool)}
}

// Fail makes op fail for path
func (f *FailingFS) Fail(op Op, path string) *FailingFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures[op] == nil {
		f.failures[op] = make(map[string]bool)
	}
	f.failures[op][path] = true
	return f
}

// Writes returns how many successful writes went through
func (f *FailingFS) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *FailingFS) fails(op Op, path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failures[op][path]
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	if f.fails(OpRead, name) {
		return nil, &fs.PathError{Op: string(OpRead), Path: name, Err: ErrInjected}
	}
	return f.FS.ReadFile(name)
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.fails(OpWrite, name) {
		return &fs.PathError{Op: string(OpWrite), Path: name, Err: ErrInjected}
	}
	if err := f.FS.WriteFile(name, data, perm); err != nil {
		return err
	}
	f.mu.Lock()
	f.writes++
	f.mu.Unlock()
	return nil
}

func (f *FailingFS) Rename(oldpath, newpath string) error {
	if f.fails(OpRename, newpath) {
		return &fs.PathError{Op: string(OpRename), Path: newpath, Err: ErrInjected}
	}
	return f.FS.Rename(oldpath, newpath)
}
