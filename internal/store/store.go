package store

import (
	"path/filepath"
)

// alertsSubdir is the single subdirectory of record files under the root.
const alertsSubdir = "alerts"

// Store reads and writes alert records under a root directory.
//
// Construction never touches the filesystem; the directory is created on
// first write. This keeps read-only invocations (list, count) from
// leaving empty directories behind.
type Store struct {
	root string
}

// New creates a store rooted at the given directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the configured root directory.
func (s *Store) Root() string {
	return s.root
}

// dir returns the directory that holds record files.
func (s *Store) dir() string {
	return filepath.Join(s.root, alertsSubdir)
}

// path returns the file path for a record id.
func (s *Store) path(id string) string {
	return filepath.Join(s.dir(), id+".json")
}
