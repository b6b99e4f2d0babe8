// Package toposort orders pipeline entries into dependency levels.
//
// # Layered topological sort
//
// Given a set of Entry records (stage name plus its ordered input names), Sort
// repeatedly extracts the subset of not-yet-placed entries whose inputs are all
// already placed or equal to the reserved "$document" input, and emits them as
// the next level. Leaves come first; a stage's inputs always live in a strictly
// earlier level.
//
// Steps:
//  1. Validate: every referenced input must name another entry or "$document"
//     (else ErrUnknownStage).
//  2. Peel levels: while entries remain, collect all entries whose inputs are
//     satisfied; if none can be placed, the remainder contains a cycle
//     (ErrCyclicDependency).
//  3. Emit: each level's membership is deterministic; members are returned in
//     lexical order because intra-level order carries no meaning.
//
// The "$document" pseudo-stage never appears as a level member; the "$output"
// sink sorts like any other entry and lands in the last level of a well-formed
// pipeline.
//
// Time complexity: O(V·L + E) with L = number of levels (≤ V).
// Memory usage:    O(V + E).
package toposort
