// Package featgraph: the binder.
package featgraph

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/featpipe/toposort"
	"github.com/katalvlaran/featpipe/transform"
)

// Bind compiles entries against reg into an executable Graph.
//
// Validation order (first failure wins):
//  1. sink presence and resolvable sink inputs (ErrMissingOutputStage);
//  2. transform registration per non-sink stage (ErrUnknownTransform);
//  3. layered sort (toposort.ErrUnknownStage / toposort.ErrCyclicDependency);
//  4. reachability from "$document" (ErrUnreachableStage);
//  5. signature check per stage (ErrUnsupportedCurrying / ErrArityMismatch).
//
// A non-vector output kind on a sink input is logged through ctx and does not
// fail binding; the defect surfaces at apply time.
//
// The compiled plan depends only on the entry set: shuffling entries or the
// registry yields an identical Graph.
//
// Complexity: O(V·L + E) time dominated by the sort, O(V + E) memory.
func Bind(ctx transform.Context, reg *transform.Registry, entries []Entry) (*Graph, error) {
	declared := make(map[string]Entry, len(entries))
	for _, e := range entries {
		declared[e.Name] = e
	}

	// 1. Sink contract.
	sink, ok := declared[OutputStage]
	if !ok {
		return nil, errors.Wrap(ErrMissingOutputStage, "no $output entry")
	}
	for _, in := range sink.Inputs {
		if _, ok = declared[in]; !ok {
			return nil, errors.Wrapf(ErrMissingOutputStage, "$output references %q", in)
		}
	}

	// 2. Every non-sink stage needs a registered transform.
	stages := make(map[string]transform.Transform, len(entries)-1)
	for _, e := range entries {
		if e.Name == OutputStage {
			continue
		}
		t, found := reg.Lookup(e.Name)
		if !found {
			return nil, errors.Wrapf(ErrUnknownTransform, "stage %q", e.Name)
		}
		stages[e.Name] = t
	}

	// 3. Layered sort; sorter errors pass through for errors.Is.
	levels, err := toposort.Sort(entries)
	if err != nil {
		return nil, err
	}

	// 4. Reachability: a stage is grounded once any of its inputs is the
	// document or another grounded stage. Walking in level order visits
	// dependencies first, so one pass suffices.
	reachable := map[string]bool{DocumentStage: true}
	for _, level := range levels {
		for _, name := range level {
			for _, in := range declared[name].Inputs {
				if reachable[in] {
					reachable[name] = true
					break
				}
			}
		}
	}
	for _, e := range entries {
		if e.Name == OutputStage {
			continue
		}
		if !reachable[e.Name] {
			return nil, errors.Wrapf(ErrUnreachableStage, "stage %q", e.Name)
		}
	}

	// 5. Signature checks and plan assembly.
	bound := make([][]boundStage, 0, len(levels))
	for _, level := range levels {
		row := make([]boundStage, 0, len(level))
		for _, name := range level {
			if name == OutputStage {
				continue
			}
			t := stages[name]
			if err = checkSignature(name, t.Signature(), len(declared[name].Inputs)); err != nil {
				return nil, err
			}
			row = append(row, boundStage{name: name, t: t, inputs: declared[name].Inputs})
		}
		if len(row) > 0 {
			bound = append(bound, row)
		}
	}

	// Non-fatal diagnostic: a sink input whose transform declares a non-vector
	// output will fail at apply time, not here.
	log := ctx.Log().Named("featgraph")
	for _, in := range sink.Inputs {
		if sig := stages[in].Signature(); sig.Output != transform.KindVector {
			log.Warnw("output stage does not declare a vector output; apply will fail on it",
				"stage", in, "class", stages[in].Class())
		}
	}

	return &Graph{
		levels:  bound,
		outputs: append([]string(nil), sink.Inputs...),
		entries: append([]Entry(nil), entries...),
		stages:  stages,
	}, nil
}

// checkSignature validates one stage's bound input count against its
// transform's declared shape.
func checkSignature(name string, sig transform.Signature, n int) error {
	switch sig.Kind {
	case transform.Curried:
		return errors.Wrapf(ErrUnsupportedCurrying, "stage %q", name)
	case transform.Variadic:
		if n < sig.MinInputs {
			return errors.Wrapf(ErrArityMismatch, "stage %q: %d input(s), need >= %d", name, n, sig.MinInputs)
		}
	case transform.Fixed:
		if n != sig.Arity {
			return errors.Wrapf(ErrArityMismatch, "stage %q: %d input(s), want exactly %d", name, n, sig.Arity)
		}
	default:
		return errors.Wrapf(ErrArityMismatch, "stage %q: unknown signature kind %d", name, sig.Kind)
	}
	return nil
}
