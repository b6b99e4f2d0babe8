// Package record implements the binary record codec shared by persisted
// pipeline resources and the model components consuming them.
//
// Wire conventions (stable, part of the artifact format):
//   - counts and indices: unsigned varints,
//   - weights: fixed-width little-endian float64,
//   - strings: varint byte length followed by raw UTF-8 bytes,
//   - collections: always length-prefixed, never sentinel-terminated.
//
// Writer and Reader are thin stateful wrappers over io.Writer/io.Reader; they
// carry the first error encountered so call sites can chain writes and check
// once at the end.
package record
