// Package transform: core value and capability types.
//
// This file declares Document, Value, Vector, the Signature model, the Transform
// interface and its optional capabilities (Terminable, Persistable), the resource
// sink/source contracts used by persistable transforms, and the engine Context.
package transform

import (
	"io"

	"go.uber.org/zap"
)

// Document is the raw structured input fed into a pipeline under the reserved
// "$document" name. Keys are caller-defined field names.
type Document map[string]any

// Value is one intermediate stage output. Concrete types flow between stages
// unchanged; the engine never inspects them beyond the coercions in values.go.
type Value any

// Vector is the numeric value type produced by vector-kind transforms and
// concatenated by the pipeline into the final feature vector.
type Vector []float64

// SignatureKind is the closed set of callable shapes a Transform may declare.
type SignatureKind int

const (
	// Fixed declares a callable accepting exactly Signature.Arity inputs.
	Fixed SignatureKind = iota

	// Variadic declares a callable accepting any count >= Signature.MinInputs
	// of same-typed inputs.
	Variadic

	// Curried declares a callable expecting its inputs across more than one
	// sequential application. The engine supplies all inputs atomically and
	// therefore rejects curried transforms at bind time.
	Curried
)

// OutputKind classifies the value a Transform produces, declared up front so the
// binder can diagnose a non-vector terminal stage without invoking anything.
type OutputKind int

const (
	// KindVector marks a Vector output.
	KindVector OutputKind = iota

	// KindTokens marks a []string output.
	KindTokens

	// KindScalar marks a float64 output.
	KindScalar

	// KindOpaque marks any other output type.
	KindOpaque
)

// Signature describes a Transform's callable shape; inspected once at bind time.
//
// Fields:
//   - Kind      — Fixed, Variadic, or Curried.
//   - Arity     — exact input count when Kind == Fixed.
//   - MinInputs — minimum input count when Kind == Variadic.
//   - Output    — declared output kind.
type Signature struct {
	Kind      SignatureKind
	Arity     int
	MinInputs int
	Output    OutputKind
}

// Transform is one named unit of computation in a feature graph.
//
// Apply consumes the bound upstream values in declaration order and returns one
// output value. Apply must be deterministic for deterministic inputs; the engine
// provides no retry or cancellation around it.
type Transform interface {
	// Class returns the stable class identifier used by Catalog and the
	// persistence codec (e.g. "dict_vectorizer").
	Class() string

	// Signature reports the callable shape; constant for the instance lifetime.
	Signature() Signature

	// Apply executes the transform on one set of inputs.
	Apply(inputs []Value) (Value, error)
}

// Terminable is the optional capability of transforms whose output dimensionality
// is learned from a corpus.
//
// Lifecycle: while unfrozen, Apply may grow internal state (assign indices to
// previously unseen identifiers) and Dimensions reports ok=false. Freeze fixes
// the count; afterwards Apply must emit exactly Dimensions() values and unseen
// identifiers are ignored. Freeze is one-way. Prune removes dimensions in place
// and is irreversible; idempotence is implementation-specific and not guaranteed
// by the engine.
type Terminable interface {
	Transform

	// Dimensions reports the fixed output dimension count; ok is false until
	// the transform has been frozen.
	Dimensions() (n int, ok bool)

	// Freeze locks the dimension count at its current value.
	Freeze()

	// FeatureAt resolves a local dimension index to its feature identifier.
	// ok is false when the index is out of range or carries no identifier.
	FeatureAt(local int) (id string, ok bool)

	// Prune drops every local dimension for which keep returns false,
	// reindexing survivors contiguously. Frozen-only; mutates in place.
	Prune(keep func(local int) bool) error
}

// ResourceSink is the write half of a hierarchically scoped resource store,
// handed to a Persistable so it can emit named binary resources.
type ResourceSink interface {
	// Create opens a named resource for writing, truncating any previous
	// content. The caller must Close the returned writer.
	Create(name string) (io.WriteCloser, error)
}

// ResourceSource is the read half of a resource store, handed to a Factory when
// reconstructing a persisted transform.
type ResourceSource interface {
	// Open opens a named resource for reading.
	Open(name string) (io.ReadCloser, error)

	// Has reports whether a named resource exists.
	Has(name string) bool
}

// Persistable is the optional capability of transforms that serialize internal
// state. Save emits an optional structured config value (nil when the transform
// needs none) plus any binary resources written to sink; the matching Factory
// reconstructs the instance from the same pair.
type Persistable interface {
	Transform

	Save(sink ResourceSink) (cfg map[string]any, err error)
}

// Context is the engine context handed to factories and binders. It replaces
// any process-global state; one Context scopes one family of pipelines.
type Context struct {
	// Logger receives engine diagnostics; nil resolves to a no-op logger.
	Logger *zap.SugaredLogger
}

// Log returns the context logger, never nil.
func (c Context) Log() *zap.SugaredLogger {
	if c.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return c.Logger
}

// Factory reconstructs a Transform of one class from an engine context, an
// optional resource source (nil when no persisted resources exist), and an
// optional structured config value.
type Factory func(ctx Context, src ResourceSource, cfg map[string]any) (Transform, error)
