// Package pipeline: Pipeline type, priming, freezing, application.
package pipeline

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/featpipe/featgraph"
	"github.com/katalvlaran/featpipe/transform"
)

// Range is one output stage's contiguous slice of the global index space.
type Range struct {
	// Stage is the owning output stage name.
	Stage string

	// Start is the first global index of the range.
	Start int

	// Len is the range length (the stage's frozen dimension count).
	Len int
}

// Pipeline is a feature graph plus per-output-stage dimension bookkeeping.
//
// States: unprimed (zero Pipeline from New) and frozen (result of Prime or an
// artifact restore). The zero bookkeeping is never mutated in place; Prime
// returns a fresh frozen instance.
type Pipeline struct {
	ctx    transform.Context
	graph  *featgraph.Graph
	frozen bool
	ranges []Range
	total  int
}

// New wraps a bound graph into an unprimed Pipeline.
func New(ctx transform.Context, g *featgraph.Graph) *Pipeline {
	return &Pipeline{ctx: ctx, graph: g}
}

// Graph returns the underlying compiled graph.
func (p *Pipeline) Graph() *featgraph.Graph { return p.graph }

// Frozen reports whether the pipeline has been primed.
func (p *Pipeline) Frozen() bool { return p.frozen }

// TotalDimensions reports the frozen total output dimension; ok is false on an
// unprimed pipeline.
func (p *Pipeline) TotalDimensions() (int, bool) { return p.total, p.frozen }

// Ranges returns a copy of the global index partition in output-list order;
// nil on an unprimed pipeline.
func (p *Pipeline) Ranges() []Range {
	if !p.frozen {
		return nil
	}
	return append([]Range(nil), p.ranges...)
}

// Prime folds corpus through the graph once, in the supplied order, letting
// every terminable transform observe all values; it then freezes the
// terminable transforms, fixes per-output-stage dimensions (terminable stages
// report their own count, plain stages contribute their observed vector
// length) and partitions the global index space in output-list order.
//
// Priming is deliberately sequential: assignment order affects resulting index
// values, and a parallel variant would need a deterministic merge step.
//
// Returns a NEW frozen Pipeline; the receiver stays unprimed. Transform
// instances are shared with the receiver and have been mutated by the pass.
//
// Errors:
//   - ErrAlreadyPrimed on a frozen receiver.
//   - featgraph.ErrStageFailed when a corpus document fails evaluation.
//
// Complexity: O(corpus × graph) evaluations plus O(outputs) bookkeeping.
func (p *Pipeline) Prime(corpus []transform.Document) (*Pipeline, error) {
	if p.frozen {
		return nil, ErrAlreadyPrimed
	}

	log := p.ctx.Log().Named("pipeline")
	observed := make(map[string]int, len(p.graph.Outputs()))

	for i, doc := range corpus {
		outs, err := p.graph.Evaluate(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "priming document %d", i)
		}
		for j, name := range p.graph.Outputs() {
			if vec, vecErr := transform.AsVector(outs[j]); vecErr == nil {
				observed[name] = len(vec)
			}
		}
	}

	// Freeze every terminable stage, output-contributing or not.
	for _, name := range p.graph.StageNames() {
		t, _ := p.graph.Stage(name)
		if term, ok := t.(transform.Terminable); ok {
			term.Freeze()
		}
	}

	ranges, total, err := partition(p.graph, observed)
	if err != nil {
		return nil, err
	}
	log.Debugw("pipeline primed", "documents", len(corpus), "dimensions", total, "outputs", len(ranges))

	return &Pipeline{
		ctx:    p.ctx,
		graph:  p.graph,
		frozen: true,
		ranges: ranges,
		total:  total,
	}, nil
}

// Apply evaluates one document and concatenates the output-list vectors in
// declared order into one fixed-length numeric vector.
//
// Errors:
//   - ErrNotPrimed on an unprimed pipeline.
//   - featgraph.ErrStageFailed when evaluation fails.
//   - ErrNotVector when an output value is not a numeric vector.
//   - ErrDimensionMismatch when an emitted length deviates from the frozen
//     count. Engine state is never partially mutated by a failed Apply.
func (p *Pipeline) Apply(doc transform.Document) (transform.Vector, error) {
	if !p.frozen {
		return nil, ErrNotPrimed
	}

	outs, err := p.graph.Evaluate(doc)
	if err != nil {
		return nil, err
	}

	vec := make(transform.Vector, 0, p.total)
	for i, r := range p.ranges {
		part, vecErr := transform.AsVector(outs[i])
		if vecErr != nil {
			return nil, errors.Wrapf(ErrNotVector, "stage %q: %v", r.Stage, vecErr)
		}
		if len(part) != r.Len {
			return nil, errors.Wrapf(ErrDimensionMismatch,
				"stage %q emitted %d dims, frozen at %d", r.Stage, len(part), r.Len)
		}
		vec = append(vec, part...)
	}
	return vec, nil
}

// partition computes the contiguous global index ranges for the graph's
// output stages. Terminable stages must be frozen; plain stages take their
// observed dimension (zero when never observed).
func partition(g *featgraph.Graph, observed map[string]int) ([]Range, int, error) {
	outputs := g.Outputs()
	ranges := make([]Range, 0, len(outputs))
	total := 0

	for _, name := range outputs {
		t, _ := g.Stage(name)
		dims := observed[name]
		if term, ok := t.(transform.Terminable); ok {
			n, frozen := term.Dimensions()
			if !frozen {
				return nil, 0, errors.Wrapf(ErrUnprimedTransform, "stage %q", name)
			}
			dims = n
		}
		ranges = append(ranges, Range{Stage: name, Start: total, Len: dims})
		total += dims
	}
	return ranges, total, nil
}

// Restore assembles an already-frozen Pipeline from a rebound graph whose
// terminable transforms carry persisted (frozen) state. observed supplies the
// dimension counts of plain output stages, as recorded in the artifact's
// feature metadata. Used by the persistence codec; not part of the training
// path.
//
// Errors:
//   - ErrUnprimedTransform when a terminable output stage is not frozen.
func Restore(ctx transform.Context, g *featgraph.Graph, observed map[string]int) (*Pipeline, error) {
	ranges, total, err := partition(g, observed)
	if err != nil {
		return nil, err
	}
	return &Pipeline{ctx: ctx, graph: g, frozen: true, ranges: ranges, total: total}, nil
}
