package ports

import "time"

// FileSystem abstracts the file operations of the build pipeline.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ModTime returns the last modification time of path.
	ModTime(path string) (time.Time, error)

	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating parent directories as needed.
	WriteFile(path string, data []byte) error

	// WriteText writes text to path as UTF-8 preceded by a byte-order mark.
	WriteText(path, text string) error
}
