// impl_ngram.go — NGram: sliding-window token composition.
package transform

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ClassNGram is the catalog identifier of NGram.
const ClassNGram = "ngram"

// ngramJoiner glues the member tokens of one n-gram.
const ngramJoiner = "_"

// NGram emits every contiguous window of N input tokens joined with "_".
// N == 1 passes tokens through unchanged; fewer than N input tokens yield an
// empty token list. Fixed arity 1, tokens in, tokens out.
type NGram struct {
	// N is the window size; must be >= 1.
	N int
}

// NewNGram returns an NGram of window size n.
//
// Errors:
//   - ErrBadConfig when n < 1.
func NewNGram(n int) (*NGram, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrBadConfig, "ngram size %d < 1", n)
	}
	return &NGram{N: n}, nil
}

// Class implements Transform.
func (g *NGram) Class() string { return ClassNGram }

// Signature implements Transform: fixed arity 1, token output.
func (g *NGram) Signature() Signature {
	return Signature{Kind: Fixed, Arity: 1, Output: KindTokens}
}

// Apply implements Transform. Complexity: O(tokens × N).
func (g *NGram) Apply(inputs []Value) (Value, error) {
	tokens, err := AsTokens(inputs[0])
	if err != nil {
		return nil, err
	}
	if len(tokens) < g.N {
		return []string{}, nil
	}
	out := make([]string, 0, len(tokens)-g.N+1)
	for i := 0; i+g.N <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+g.N], ngramJoiner))
	}
	return out, nil
}

// Save implements Persistable; NGram has no binary state, only config.
func (g *NGram) Save(ResourceSink) (map[string]any, error) {
	return map[string]any{"n": g.N}, nil
}
