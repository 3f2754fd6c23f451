// Package fs provides snapshot discovery and result-file writing.
package fs

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
)

// Discover walks root recursively and returns the paths of all HTML files,
// in lexical directory-traversal order. The order is deterministic, which
// keeps repeated runs over an unchanged tree byte-identical downstream.
// Access errors propagate; a missing root is reported as ENOTFOUND.
func Discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".html") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, linkedin.Errorf(linkedin.ENOTFOUND, "directory %q does not exist", root)
		}
		return nil, err
	}
	return paths, nil
}
