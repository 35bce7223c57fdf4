package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilePerms is used when a file has to be created from scratch.
const DefaultFilePerms = 0o644

// ExpandPath expands a leading ~ to the home directory and environment variables.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

// IsPathWithin reports whether target is base or lives below it.
func IsPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// RelOrAbs returns target relative to base, or target itself when it lies outside base.
func RelOrAbs(base, target string) string {
	if !IsPathWithin(base, target) {
		return target
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return rel
}
