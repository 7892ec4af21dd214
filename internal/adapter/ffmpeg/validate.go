package ffmpeg

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyPath is returned when an input or output path is empty.
	ErrEmptyPath = errors.New("path is empty")
	// ErrInvalidPath is returned when a path contains null bytes.
	ErrInvalidPath = errors.New("path contains invalid characters")
)

// validatePath rejects paths that cannot be passed safely to an external
// process.
func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}
