// Package featgraph compiles a declarative stage-entry set into an executable,
// leveled feature graph and evaluates documents through it.
//
// # Binding
//
// Bind validates the entry set against a transform Registry and produces a
// Graph — an ordered sequence of levels terminating at the reserved "$output"
// sink. All structural defects are caught here, fatally and exactly once:
//
//	ErrMissingOutputStage  - no "$output" entry, or a sink input resolving to no stage.
//	ErrUnknownTransform    - a stage name with no registered transform.
//	ErrUnsupportedCurrying - a transform expecting multi-step partial application;
//	                         the engine supplies all inputs atomically.
//	ErrArityMismatch       - bound input count incompatible with the signature.
//	ErrUnreachableStage    - a stage that never (transitively) consumes "$document".
//
// Sorting defects (toposort.ErrUnknownStage, toposort.ErrCyclicDependency)
// pass through unchanged. Binding is order-independent: the compiled plan
// depends only on the entry set, never on declaration order.
//
// One deliberate asymmetry: when a stage feeding "$output" declares a
// non-vector output kind, binding still succeeds and only logs a warning; the
// defect surfaces as a runtime type failure when the pipeline is applied.
//
// # Evaluation
//
// Graph.Evaluate runs one document through the plan: a scratch mapping is
// seeded with the document under "$document", each level's stages fetch their
// bound inputs, invoke their transform, and store the result under the stage
// name; the sink's inputs are returned as the ordered output list (one value
// per output stage, not yet concatenated — concatenation is an ordinary
// transform when a graph wants it inline).
//
// Evaluation is synchronous, single-threaded per document, and deterministic
// for deterministic transforms. There are no suspension points.
package featgraph
