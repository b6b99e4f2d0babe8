// Package transform defines the unit of computation executed at every stage of a
// feature graph, the capability model that the binder inspects, and the explicit
// registration tables (Registry, Catalog) that replace any global factory state.
//
// A Transform is a named computation consuming zero or more upstream values and
// producing exactly one value. Its Signature is a closed, tagged description of the
// callable shape — fixed arity, variadic with a minimum, or curried — inspected once
// at bind time; there is no runtime reflection.
//
// Two optional capabilities refine a Transform:
//
//   - Terminable: the transform's output dimensionality is learned from data.
//     While unfrozen, Apply may grow internal state (e.g. assign indices to unseen
//     feature identifiers); Freeze fixes the dimension count; FeatureAt resolves a
//     local index back to an identifier; Prune irreversibly drops dimensions.
//   - Persistable: the transform can serialize itself to a structured config value
//     plus optional named binary resources, and be reconstructed by its Factory
//     from the same pair.
//
// Stock transforms (Tokenize, StripPunct, NGram, DictVectorizer, NumberField,
// Scale, Concat) cover the common text-to-vector path and exercise every
// capability; BuiltinCatalog lists them by class identifier.
//
// Concurrency: a Transform bound into a pipeline is owned exclusively by that
// pipeline; callers must not retain or share transform instances across
// independently bound pipelines.
package transform
