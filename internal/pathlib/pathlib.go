package pathlib

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lumen-web/lumen/http/status"
)

// Resolver maps request URIs onto filesystem paths strictly confined to
// a single root. Constructed once at startup and read-only afterwards,
// so it is shared across connections without synchronization.
type Resolver struct {
	root string
}

// NewResolver canonicalizes root (absolute, symlinks and dot segments
// resolved) and fails if it doesn't exist.
func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}

	return &Resolver{root: canonical}, nil
}

func (r *Resolver) Root() string {
	return r.root
}

// Resolve canonicalizes uri under the root and classifies the result.
// Traversal outside the root and paths that cannot be canonicalized
// (typically, nonexistent ones) both come back as status.ErrNotFound:
// the caller learns nothing about the actual cause.
func (r *Resolver) Resolve(uri string) (path string, isDir bool, err error) {
	uri = strings.TrimPrefix(uri, "/")

	path, err = filepath.EvalSymlinks(filepath.Join(r.root, uri))
	if err != nil {
		return "", false, status.ErrNotFound
	}

	if !r.contains(path) {
		return "", false, status.ErrNotFound
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", false, status.ErrNotFound
	}

	return path, info.IsDir(), nil
}

// contains reports whether path is the root itself or a descendant of
// it. The separator is appended before comparing, so a sibling sharing
// the root's name as a prefix doesn't slip through.
func (r *Resolver) contains(path string) bool {
	if path == r.root {
		return true
	}

	return strings.HasPrefix(path, r.root+string(filepath.Separator))
}
