// Package pipeline: dimension pruning.
package pipeline

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/featpipe/transform"
)

// Prune drops every global dimension for which keep returns false by remapping
// the predicate onto each terminable output stage's local range
// (keep(local + rangeStart)) and invoking that transform's own pruning.
// Non-terminable stages own fixed dimensions and are left untouched.
//
// Pruning mutates the shared transform instances in place and is irreversible;
// the global index partition and total dimension are recomputed afterwards so
// Apply and lookups stay consistent. Idempotence is only as good as the
// transforms' own pruning — callers must not prune twice expecting a no-op
// unless the transform documents that guarantee. Serialize Prune against
// concurrent Apply/lookup calls (writer lock is the caller's job).
//
// Errors:
//   - ErrNotPrimed on an unprimed pipeline.
//   - any error from a transform's local pruning (partial progress possible;
//     ranges are recomputed only on full success).
func (p *Pipeline) Prune(keep func(global int) bool) error {
	if !p.frozen {
		return ErrNotPrimed
	}

	observed := make(map[string]int, len(p.ranges))
	for _, r := range p.ranges {
		t, _ := p.graph.Stage(r.Stage)
		term, ok := t.(transform.Terminable)
		if !ok {
			observed[r.Stage] = r.Len
			continue
		}
		start := r.Start
		if err := term.Prune(func(local int) bool { return keep(local + start) }); err != nil {
			return errors.Wrapf(err, "pruning stage %q", r.Stage)
		}
	}

	ranges, total, err := partition(p.graph, observed)
	if err != nil {
		return err
	}
	p.ranges = ranges
	p.total = total

	p.ctx.Log().Named("pipeline").Debugw("pipeline pruned", "dimensions", total)
	return nil
}
