// Package featgraph: Graph and bound-stage types, reserved-name re-exports.
package featgraph

import (
	"sort"

	"github.com/katalvlaran/featpipe/toposort"
	"github.com/katalvlaran/featpipe/transform"
)

// DocumentStage is the reserved external input name (see toposort).
const DocumentStage = toposort.DocumentStage

// OutputStage is the reserved sink name (see toposort).
const OutputStage = toposort.OutputStage

// Entry re-exports toposort.Entry; the binder and the sorter share one
// declaration shape.
type Entry = toposort.Entry

// boundStage is one directly callable node of the compiled plan: the stage
// name, its transform, and the resolved input names in declaration order.
type boundStage struct {
	name   string
	t      transform.Transform
	inputs []string
}

// Graph is a compiled, leveled execution plan. Immutable after Bind; safe for
// concurrent Evaluate calls as long as its transforms are (the stock
// terminable transforms mutate while unfrozen, so concurrent priming is not).
type Graph struct {
	levels  [][]boundStage
	outputs []string
	entries []Entry
	stages  map[string]transform.Transform
}

// Outputs returns the sink's input names, i.e. the pipeline's ordered final
// output list. The returned slice is a copy.
func (g *Graph) Outputs() []string {
	return append([]string(nil), g.outputs...)
}

// Entries returns the entry set the graph was bound from (sink included), for
// persistence. The returned slice is a copy.
func (g *Graph) Entries() []Entry {
	return append([]Entry(nil), g.entries...)
}

// Stage returns the transform bound under name.
func (g *Graph) Stage(name string) (transform.Transform, bool) {
	t, ok := g.stages[name]
	return t, ok
}

// StageNames returns every bound stage name (sink excluded) in lexical order.
func (g *Graph) StageNames() []string {
	names := make([]string, 0, len(g.stages))
	for name := range g.stages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Levels returns the level membership of the plan (stage names only, sink
// excluded), mirroring toposort.Sort output for diagnostics and tests.
func (g *Graph) Levels() [][]string {
	out := make([][]string, len(g.levels))
	for i, level := range g.levels {
		names := make([]string, len(level))
		for j, s := range level {
			names[j] = s.name
		}
		out[i] = names
	}
	return out
}
