// Package persist serializes a primed pipeline into a self-describing,
// versioned artifact and restores it — already frozen — from the same layout.
//
// # Artifact layout
//
// An artifact is a hierarchical named resource store (Store, backed by any
// afero filesystem — the OS for real artifacts, memory in tests):
//
//	pipeline.yaml      - format version, artifact id, feature metadata, the
//	                     ordered (name, class, config?) transform triples, and
//	                     the pipeline entry edge list.
//	stages/<name>/...  - each persistable transform's binary resources, scoped
//	                     by its stage name so paths never collide.
//
// A transform's config key is omitted entirely when its Save returns nil,
// keeping the artifact minimal; non-persistable transforms contribute neither
// config nor resources.
//
// # Versioning
//
// The artifact carries FormatVersion as a semantic version. Load accepts any
// artifact sharing the supported major version and fails with
// ErrUnsupportedVersion otherwise, reporting declared vs supported for
// diagnosing format skew.
//
// # Restoring frozen state
//
// Load rebuilds the transform registry by instantiating every class through
// the caller's Catalog with (context, scoped resource source, config value),
// rebinds the graph through featgraph.Bind, and assembles the pipeline via
// pipeline.Restore. No dimension counts are stored for terminable transforms:
// they are implicit in the restored per-transform indices. Plain output
// stages' observed dimensions travel in the feature metadata.
package persist
