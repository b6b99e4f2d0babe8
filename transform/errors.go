// Package transform: sentinel errors.
//
// Error policy (module-wide): only package-level sentinels are exposed; callers
// branch with errors.Is; implementations attach context by wrapping, never by
// reformatting the sentinel itself.
package transform

import "github.com/cockroachdb/errors"

// ErrDuplicateStage indicates a Registry already holds a transform under the
// requested stage name.
var ErrDuplicateStage = errors.New("transform: duplicate stage name")

// ErrEmptyStageName indicates an empty stage name was passed to Register.
var ErrEmptyStageName = errors.New("transform: empty stage name")

// ErrUnknownClass indicates a Catalog lookup for an unregistered class
// identifier.
var ErrUnknownClass = errors.New("transform: unknown transform class")

// ErrBadInput indicates an Apply input value had an unexpected concrete type
// or an invalid shape for the transform.
var ErrBadInput = errors.New("transform: bad input value")

// ErrBadConfig indicates a Factory received a config value it cannot
// interpret (wrong type, missing required key, out-of-range value).
var ErrBadConfig = errors.New("transform: bad transform config")

// ErrNotFrozen indicates Prune was invoked on an unfrozen terminable
// transform.
var ErrNotFrozen = errors.New("transform: transform not frozen")
