// Package pathutil provides the filesystem helpers used when laying out
// pipeline working areas: idempotent directory-hierarchy creation that
// reports what was actually new, symlink setup, and path validation for
// flag values.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates path and every missing ancestor with the given
// permissions, and reports the shallowest component that did not exist
// before the call. If path already exists (as any kind of entry) nothing
// is done and the empty string is returned. Permissions are subject to
// the process umask. Filesystem errors are returned unchanged; a chain
// partially created before a failure is left in place.
func EnsureDir(path string, mode os.FileMode) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(abs); err == nil {
		return "", nil
	}

	var first string
	for _, ancestor := range SplitPath(abs) {
		if _, err := os.Stat(ancestor); err != nil {
			first = ancestor
			break
		}
	}

	if err := os.MkdirAll(abs, mode); err != nil {
		return "", err
	}

	return first, nil
}

// SplitPath returns the ancestor chain of path: every absolute path from
// the filesystem root down to and including path itself, shallowest
// first. Relative paths are resolved against the working directory. On
// platforms with multiple roots the walk stops at the volume root.
func SplitPath(path string) []string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	var chain []string
	for p := abs; ; p = filepath.Dir(p) {
		chain = append(chain, p)
		if p == filepath.Dir(p) {
			break
		}
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

// Symlink creates link pointing at target. With overwrite set, an
// existing link entry is removed first; the check uses lstat so dangling
// symlinks are replaced too. Errors from the OS are returned unchanged.
func Symlink(target, link string, overwrite bool) error {
	if overwrite {
		if _, err := os.Lstat(link); err == nil {
			if err := os.Remove(link); err != nil {
				return err
			}
		}
	}

	return os.Symlink(target, link)
}

// FileCheck validates file paths supplied on the command line.
type FileCheck struct {
	RequireExists   bool
	RequireReadable bool
}

// Validate returns an error describing why path is not acceptable, or
// nil when all enabled checks pass.
func (c FileCheck) Validate(path string) error {
	if c.RequireExists {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return fmt.Errorf("%s is not a valid file", path)
		}
	}

	if c.RequireReadable {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%s is not a readable file (%v)", path, err)
		}
		file.Close()
	}

	return nil
}
