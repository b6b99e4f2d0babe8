// Package featgraph: sentinel errors for binding and evaluation.
package featgraph

import "github.com/cockroachdb/errors"

// ErrMissingOutputStage indicates the entry set lacks a "$output" entry, or a
// sink input resolves to no declared stage.
var ErrMissingOutputStage = errors.New("featgraph: missing or unresolved output stage")

// ErrUnknownTransform indicates a stage name with no registered transform.
var ErrUnknownTransform = errors.New("featgraph: unknown transform")

// ErrUnsupportedCurrying indicates a transform declaring curried application;
// the engine supplies all inputs in one invocation and cannot model partial
// application.
var ErrUnsupportedCurrying = errors.New("featgraph: curried transforms unsupported")

// ErrArityMismatch indicates a stage bound with an input count incompatible
// with its transform's signature.
var ErrArityMismatch = errors.New("featgraph: input arity mismatch")

// ErrUnreachableStage indicates a stage that never, transitively, consumes the
// reserved document input.
var ErrUnreachableStage = errors.New("featgraph: stage unreachable from document input")

// ErrStageFailed wraps a transform's Apply error with its stage name during
// evaluation.
var ErrStageFailed = errors.New("featgraph: stage evaluation failed")
