// Package filex holds small filesystem helpers for writing payloads.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path, relative to the
// working directory when path is relative.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// WriteFile writes data to path, creating missing parent directories. The
// file is readable by the owner only since payloads carry password digests.
func WriteFile(path string, data []byte) error {
	if _, err := EnsureParentDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
