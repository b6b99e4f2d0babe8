// Package pipeline wraps a compiled feature graph with the two-phase
// unprimed → primed/frozen lifecycle: corpus priming, dimension freezing,
// global index partitioning, reverse feature lookup, and irreversible pruning.
//
// # Lifecycle
//
// New returns an unprimed Pipeline: Apply and every index operation are
// forbidden (ErrNotPrimed) because learned dimensions are unknown. Prime folds
// the corpus through the graph once, sequentially and in the supplied order,
// so identifier-index assignment is deterministic; it then freezes every
// terminable transform, reads the per-output-stage dimension counts, and
// partitions a global index space into contiguous non-overlapping ranges in
// output-list order. Prime returns a NEW frozen Pipeline; the receiver stays
// unprimed. Freezing is one-way.
//
// Note that transform instances are shared between the unprimed receiver and
// the frozen result: priming mutates terminable transform internals, and Prune
// mutates them further in place. The pipeline owns its transforms exclusively
// after binding; no external reference to a transform instance may be retained
// once bound.
//
// # Concurrency contract
//
// A frozen Pipeline supports concurrent Apply and lookup calls. Prune is a
// writer: callers must serialize Prune against every concurrent Apply/lookup
// on the same instance (single-writer, multiple-reader discipline). The engine
// does not enforce this internally.
package pipeline
