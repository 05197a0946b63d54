package localfs

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for directory-open failures. Callers match with errors.Is
// to distinguish a missing path from a permission problem; anything else is
// a plain I/O failure.
var (
	ErrNotFound   = errors.New("path not found")
	ErrPermission = errors.New("permission denied")
)

// classifyOpenError wraps a directory-open failure with the matching
// sentinel so callers can branch without inspecting syscall errnos.
func classifyOpenError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %v", ErrPermission, path, err)
	default:
		return fmt.Errorf("reading directory %s: %w", path, err)
	}
}
