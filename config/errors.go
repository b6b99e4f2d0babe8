// Package config: sentinel errors.
//
// Error policy: package-level sentinels only; callers branch with errors.Is;
// context is attached by wrapping at the failure site.
package config

import "github.com/cockroachdb/errors"

// ErrBadConfig indicates an unparseable document or an invalid field value
// (empty name, missing class, malformed version).
var ErrBadConfig = errors.New("config: invalid pipeline configuration")

// ErrDuplicateName indicates a repeated transform or pipeline entry name.
var ErrDuplicateName = errors.New("config: duplicate name")

// ErrReservedName indicates a reserved stage name used where it may not be:
// "$document" declared, or a transform named like a pseudo-stage.
var ErrReservedName = errors.New("config: reserved stage name misused")

// ErrMissingOutput indicates a pipeline list without the required "$output"
// entry.
var ErrMissingOutput = errors.New("config: missing $output entry")

// ErrUnmatchedStage indicates a transform declaration without a pipeline
// entry, or a non-sink pipeline entry without a transform declaration.
var ErrUnmatchedStage = errors.New("config: transform and pipeline lists disagree")
