// Package pipeline: sentinel errors for the lifecycle manager.
package pipeline

import "github.com/cockroachdb/errors"

// ErrNotPrimed indicates Apply, an index lookup, or Prune was invoked on an
// unprimed pipeline. Programmer-contract violation, not recoverable.
var ErrNotPrimed = errors.New("pipeline: pipeline not primed")

// ErrAlreadyPrimed indicates Prime was invoked on a frozen pipeline; a frozen
// instance is never re-primed.
var ErrAlreadyPrimed = errors.New("pipeline: pipeline already primed")

// ErrDimensionMismatch indicates a transform emitted a vector whose length no
// longer matches its frozen dimension count. Detected per Apply call, never at
// bind time, because dimensions are corpus-dependent.
var ErrDimensionMismatch = errors.New("pipeline: output dimension mismatch")

// ErrNotVector indicates an output-list value that is not a numeric vector at
// apply time — the runtime surfacing of the non-fatal bind diagnostic.
var ErrNotVector = errors.New("pipeline: output value is not a vector")

// ErrUnsortedIndices indicates a FeaturesBySortedIndices input that is not
// strictly increasing.
var ErrUnsortedIndices = errors.New("pipeline: indices not strictly increasing")

// ErrUnprimedTransform indicates an artifact restore found a terminable
// transform without a frozen dimension count.
var ErrUnprimedTransform = errors.New("pipeline: terminable transform not frozen")
