// Package persist: sentinel errors.
package persist

import "github.com/cockroachdb/errors"

// ErrUnsupportedVersion indicates an artifact declaring a format version the
// running engine does not support; the wrap carries declared vs supported.
var ErrUnsupportedVersion = errors.New("persist: unsupported artifact version")

// ErrMissingResource indicates a named resource absent from the store.
var ErrMissingResource = errors.New("persist: missing resource")

// ErrBadArtifact indicates a structurally unreadable artifact manifest.
var ErrBadArtifact = errors.New("persist: bad artifact manifest")
