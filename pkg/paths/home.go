// Package paths expands user-facing paths from configuration files.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/seanlgirgis/folio/pkg/errors"
)

// HomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func HomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv("HOME")
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrInternal, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands a leading ~ to the user's home directory.
// Returns an error if home directory cannot be determined.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return HomeDirectory()
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := HomeDirectory()
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand ~ in %s", path)
		}
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}

// Resolve expands ~ and makes a relative path absolute against root.
// Paths whose ~ cannot be expanded are resolved as written.
func Resolve(root, path string) string {
	if path == "" {
		return path
	}
	if expanded, err := ExpandHome(path); err == nil {
		path = expanded
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
