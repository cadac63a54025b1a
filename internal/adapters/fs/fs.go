// Package fs provides the file system adapter used by the build pipeline.
package fs

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/unicode"
)

// FileSystem implements ports.FileSystem on the host file system.
type FileSystem struct{}

// New creates a FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// ModTime returns the last modification time of path.
func (f *FileSystem) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, domain.ErrSourceStatFailed.Error()), "path", path)
	}
	return info.ModTime(), nil
}

// ReadFile reads the whole file at path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // paths come from the watched workspace
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}

// WriteFile writes data to path, creating parent directories as needed.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}

// WriteText writes text to path as UTF-8 preceded by a byte-order mark.
func (f *FileSystem) WriteText(path, text string) error {
	encoded, err := unicode.UTF8BOM.NewEncoder().String(text)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return f.WriteFile(path, []byte(encoded))
}
