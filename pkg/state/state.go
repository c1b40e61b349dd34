// Package state records which theme was applied last.
//
// The record lives in the themer state directory as a single line:
//
//	<theme>|<RFC 3339 timestamp>
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/filesystem"
	"github.com/arthur-debert/themer/pkg/logging"
	"github.com/arthur-debert/themer/pkg/paths"
	"github.com/arthur-debert/themer/pkg/types"
)

// Record is the last applied theme
type Record struct {
	Theme     string
	AppliedAt time.Time
}

// Store reads and writes the record at a fixed path
type Store struct {
	fs   types.FS
	path string
}

// New creates a store at the default location
func New(fsys types.FS) *Store {
	return NewAt(fsys, paths.CurrentThemePath())
}

// NewAt creates a store at path
func NewAt(fsys types.FS, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// Path returns where the record is kept
func (s *Store) Path() string {
	return s.path
}

// Write records theme as applied at now
func (s *Store) Write(theme string, now time.Time) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create state directory %s", filepath.Dir(s.path))
	}

	content := fmt.Sprintf("%s|%s\n", theme, now.UTC().Format(time.RFC3339))
	if err := filesystem.WriteFileAtomic(s.fs, s.path, []byte(content)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to record current theme").
			WithDetail("path", s.path)
	}
	return nil
}

// Read returns the recorded theme. A missing record yields (nil, nil).
func (s *Store) Read() (*Record, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileUnreadable, "failed to read current theme").
			WithDetail("path", s.path)
	}

	line := strings.TrimSpace(string(data))
	theme, stamp, _ := strings.Cut(line, "|")
	if theme == "" {
		return nil, nil
	}

	record := &Record{Theme: theme}
	if at, err := time.Parse(time.RFC3339, stamp); err == nil {
		record.AppliedAt = at
	}
	return record, nil
}

// Current returns the recorded theme name, or "" when there is none or it
// cannot be read.
func (s *Store) Current() string {
	record, err := s.Read()
	if err != nil {
		logger := logging.GetLogger("state")
		logger.Debug().Err(err).Msg("Ignoring unreadable theme record")
		return ""
	}
	if record == nil {
		return ""
	}
	return record.Theme
}
