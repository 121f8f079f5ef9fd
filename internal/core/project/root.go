package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveTargetDir returns the absolute directory files are written into.
// An empty dir means the current working directory. The directory must
// already exist; nixinit never creates it.
func ResolveTargetDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %q: %v", ErrInvalidRoot, dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, abs)
	}
	return abs, nil
}
