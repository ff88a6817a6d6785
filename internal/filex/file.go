// Package filex provides small filesystem helpers shared by the storage layer.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir makes sure the directory at path exists, creating it (and any
// parents) when missing. The absolute form of the path is returned.
func EnsureDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
