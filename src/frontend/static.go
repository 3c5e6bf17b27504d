// Package frontend holds the web UI page template and static assets.
package frontend

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// safeFileSystem wraps a directory and refuses paths that escape it.
type safeFileSystem struct {
	root string
}

// Open implements http.FileSystem with path traversal protection.
func (fs safeFileSystem) Open(name string) (http.File, error) {
	cleanPath := filepath.Clean("/" + name)
	fullPath := filepath.Join(fs.root, cleanPath)

	absRoot, err := filepath.Abs(fs.root)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return nil, os.ErrNotExist
	}

	return os.Open(absPath)
}

// NewSafeFileSystem serves files from root, rejecting anything outside it.
func NewSafeFileSystem(root string) http.FileSystem {
	return safeFileSystem{root: root}
}
