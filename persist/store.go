// Package persist: the hierarchical named resource store.
package persist

import (
	"io"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// Store is a named resource store rooted at one directory of an afero
// filesystem. Sub derives a child store; resource names inside one scope never
// collide with another scope's.
//
// Store implements both transform.ResourceSink and transform.ResourceSource.
type Store struct {
	fs   afero.Fs
	root string
}

// NewStore returns a Store rooted at root on fs. The root directory is created
// lazily on the first Create.
func NewStore(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

// NewMemStore returns a Store over a fresh in-memory filesystem; the natural
// choice for tests and for building throwaway artifacts.
func NewMemStore() *Store {
	return NewStore(afero.NewMemMapFs(), "")
}

// Sub returns the child store scoped under name.
func (s *Store) Sub(name string) *Store {
	return &Store{fs: s.fs, root: filepath.Join(s.root, name)}
}

// Create opens a named resource for writing, truncating previous content and
// creating parent directories as needed.
func (s *Store) Create(name string) (io.WriteCloser, error) {
	path := filepath.Join(s.root, name)
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "persist: mkdir for %q", path)
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "persist: create %q", path)
	}
	return f, nil
}

// Open opens a named resource for reading.
//
// Errors:
//   - ErrMissingResource when the resource does not exist.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	path := filepath.Join(s.root, name)
	ok, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "persist: stat %q", path)
	}
	if !ok {
		return nil, errors.Wrapf(ErrMissingResource, "resource %q", path)
	}
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "persist: open %q", path)
	}
	return f, nil
}

// Has reports whether a named resource exists.
func (s *Store) Has(name string) bool {
	ok, err := afero.Exists(s.fs, filepath.Join(s.root, name))
	return err == nil && ok
}
