// Package toposort: Entry type, reserved names, sentinel errors, and Sort.
package toposort

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// DocumentStage is the reserved pseudo-stage representing the raw input
// document. It may be referenced as an input but never declared as an entry.
const DocumentStage = "$document"

// OutputStage is the reserved sink pseudo-stage. Its inputs are the pipeline's
// ordered final output list. For sorting purposes it is an ordinary entry.
const OutputStage = "$output"

// Sentinel errors for dependency sorting.
var (
	// ErrUnknownStage indicates an input name that matches no entry and is not
	// the reserved document input.
	ErrUnknownStage = errors.New("toposort: unknown stage reference")

	// ErrCyclicDependency indicates a non-empty remainder with no placeable
	// entry, i.e. a dependency cycle.
	ErrCyclicDependency = errors.New("toposort: cyclic dependency")

	// ErrDuplicateEntry indicates two entries declared under the same name.
	ErrDuplicateEntry = errors.New("toposort: duplicate entry name")

	// ErrReservedName indicates an entry declared under the reserved document
	// name.
	ErrReservedName = errors.New("toposort: reserved stage name")
)

// Entry declares one stage and the ordered names it consumes.
type Entry struct {
	// Name uniquely identifies the stage within one pipeline.
	Name string

	// Inputs are the upstream stage names, order-significant.
	Inputs []string
}

// Sort orders entries into dependency levels, leaves first.
//
// Each level holds every entry whose inputs are all satisfied by earlier
// levels (or by the reserved document input). Level membership is fully
// determined by the entry set; member order within a level is lexical purely
// for reproducibility — semantically a level is an unordered, parallel-safe
// set.
//
// Errors:
//   - ErrReservedName when an entry is named "$document".
//   - ErrDuplicateEntry on a repeated entry name.
//   - ErrUnknownStage when an input resolves to no entry.
//   - ErrCyclicDependency when placement stalls with entries remaining.
//
// Edge case: an empty entry set yields an empty level sequence, no error.
//
// Complexity: O(V·L + E) time, O(V + E) memory.
func Sort(entries []Entry) ([][]string, error) {
	if len(entries) == 0 {
		return [][]string{}, nil
	}

	declared := make(map[string][]string, len(entries))
	for _, e := range entries {
		if e.Name == DocumentStage {
			return nil, errors.Wrapf(ErrReservedName, "entry %q", e.Name)
		}
		if _, dup := declared[e.Name]; dup {
			return nil, errors.Wrapf(ErrDuplicateEntry, "entry %q", e.Name)
		}
		declared[e.Name] = e.Inputs
	}

	// Validate references before placement so dangling inputs surface as
	// ErrUnknownStage rather than a misleading cycle.
	for name, inputs := range declared {
		for _, in := range inputs {
			if in == DocumentStage {
				continue
			}
			if _, ok := declared[in]; !ok {
				return nil, errors.Wrapf(ErrUnknownStage, "stage %q references %q", name, in)
			}
		}
	}

	placed := make(map[string]bool, len(entries))
	levels := make([][]string, 0)
	remaining := len(entries)

	for remaining > 0 {
		level := make([]string, 0)
		for name, inputs := range declared {
			if placed[name] {
				continue
			}
			ready := true
			for _, in := range inputs {
				if in != DocumentStage && !placed[in] {
					ready = false
					break
				}
			}
			if ready {
				level = append(level, name)
			}
		}
		if len(level) == 0 {
			return nil, errors.Wrapf(ErrCyclicDependency, "%d stage(s) unplaceable", remaining)
		}
		sort.Strings(level)
		for _, name := range level {
			placed[name] = true
		}
		remaining -= len(level)
		levels = append(levels, level)
	}

	return levels, nil
}
