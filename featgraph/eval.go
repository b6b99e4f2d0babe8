// Package featgraph: the evaluation engine.
package featgraph

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/featpipe/transform"
)

// Evaluate runs one document through the compiled plan and returns the sink's
// inputs as an ordered value list, one per output stage.
//
// The scratch mapping is seeded with doc under "$document"; each level's
// stages fetch their bound inputs, invoke their transform, and store the
// result under the stage name. Single-threaded, no suspension points,
// deterministic for deterministic transforms.
//
// Errors:
//   - ErrStageFailed wrapping the transform's error, tagged with the stage name.
//
// Complexity: O(V + E) map operations plus the transforms' own work.
func (g *Graph) Evaluate(doc transform.Document) ([]transform.Value, error) {
	scratch := make(map[string]transform.Value, len(g.stages)+1)
	scratch[DocumentStage] = doc

	for _, level := range g.levels {
		for _, s := range level {
			inputs := make([]transform.Value, len(s.inputs))
			for i, in := range s.inputs {
				inputs[i] = scratch[in]
			}
			out, err := s.t.Apply(inputs)
			if err != nil {
				// Mark keeps the transform's own sentinel reachable via
				// errors.Is while tagging the failure as ErrStageFailed.
				return nil, errors.Mark(errors.Wrapf(err, "stage %q", s.name), ErrStageFailed)
			}
			scratch[s.name] = out
		}
	}

	outs := make([]transform.Value, len(g.outputs))
	for i, name := range g.outputs {
		outs[i] = scratch[name]
	}
	return outs, nil
}
