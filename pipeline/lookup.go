// Package pipeline: global-index to feature-identifier resolution.
package pipeline

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/featpipe/transform"
)

// FeatureRef is one reverse-lookup result. OK is false when the index is out
// of range, falls into a non-terminable stage's range, or the owning transform
// declares no identifier for the local offset.
type FeatureRef struct {
	ID string
	OK bool
}

// FeatureByIndex resolves one global index to its feature identifier by
// finding the owning range and delegating to that transform's local lookup,
// offset by the range start.
//
// Errors:
//   - ErrNotPrimed on an unprimed pipeline.
//
// Complexity: O(ranges).
func (p *Pipeline) FeatureByIndex(global int) (string, bool, error) {
	if !p.frozen {
		return "", false, ErrNotPrimed
	}
	for _, r := range p.ranges {
		if global >= r.Start && global < r.Start+r.Len {
			ref := p.localLookup(r, global-r.Start)
			return ref.ID, ref.OK, nil
		}
	}
	return "", false, nil
}

// FeaturesBySortedIndices resolves a strictly increasing index sequence in one
// linear co-walk across the range partition and the index list, yielding one
// FeatureRef per input index.
//
// Errors:
//   - ErrNotPrimed on an unprimed pipeline.
//   - ErrUnsortedIndices on any non-increasing step (e.g. [1,0]).
//
// Edge case: empty input yields empty output.
//
// Complexity: O(ranges + indices), not O(ranges × indices).
func (p *Pipeline) FeaturesBySortedIndices(indices []int) ([]FeatureRef, error) {
	if !p.frozen {
		return nil, ErrNotPrimed
	}

	out := make([]FeatureRef, 0, len(indices))
	prev := 0
	cursor := 0

	for i, global := range indices {
		if i > 0 && global <= prev {
			return nil, errors.Wrapf(ErrUnsortedIndices, "index %d after %d at position %d", global, prev, i)
		}
		prev = global

		for cursor < len(p.ranges) && global >= p.ranges[cursor].Start+p.ranges[cursor].Len {
			cursor++
		}
		if global < 0 || cursor == len(p.ranges) {
			out = append(out, FeatureRef{})
			continue
		}
		out = append(out, p.localLookup(p.ranges[cursor], global-p.ranges[cursor].Start))
	}
	return out, nil
}

// localLookup delegates to the range's transform when it supports reverse
// lookup; plain stages own anonymous dimensions.
func (p *Pipeline) localLookup(r Range, local int) FeatureRef {
	t, _ := p.graph.Stage(r.Stage)
	term, ok := t.(transform.Terminable)
	if !ok {
		return FeatureRef{}
	}
	id, ok := term.FeatureAt(local)
	return FeatureRef{ID: id, OK: ok}
}
