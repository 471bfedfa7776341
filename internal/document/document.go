// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads and writes whole text documents and takes sibling
// backup snapshots before an in-place rewrite.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// defaultMode is used when writing a file that does not exist yet.
const defaultMode os.FileMode = 0o644

// ErrNotText is returned by Read when the file is not valid UTF-8.
var ErrNotText = errors.New("document is not valid UTF-8 text")

// Store provides whole-file document access on a filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store backed by fs. Use afero.NewOsFs() for the real
// filesystem.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Read returns the full contents of path as text.
func (s *Store) Read(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading %s: %w", path, ErrNotText)
	}
	return string(data), nil
}

// Write replaces the contents of path with text. An existing file keeps its
// permissions.
func (s *Store) Write(path, text string) error {
	if err := afero.WriteFile(s.fs, path, []byte(text), s.mode(path)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Backup writes text, the contents already read from path, to
// BackupPath(path, suffix) and returns the backup path. path is not read
// again. An existing backup is overwritten.
func (s *Store) Backup(path, suffix, text string) (string, error) {
	dst := BackupPath(path, suffix)
	if err := afero.WriteFile(s.fs, dst, []byte(text), s.mode(path)); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", dst, err)
	}
	return dst, nil
}

func (s *Store) mode(path string) os.FileMode {
	info, err := s.fs.Stat(path)
	if err != nil {
		return defaultMode
	}
	return info.Mode().Perm()
}

// BackupPath returns the sibling backup name for path: the suffix goes
// between the base name and the extension (main.tex -> main_backup.tex).
func BackupPath(path, suffix string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(filepath.Dir(path), base+suffix+ext)
}
