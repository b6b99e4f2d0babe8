// impl_tokenize.go — Tokenize and StripPunct: the document-to-tokens front of
// the stock text path.
package transform

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// ClassTokenize is the catalog identifier of Tokenize.
const ClassTokenize = "tokenize"

// ClassStripPunct is the catalog identifier of StripPunct.
const ClassStripPunct = "strip_punct"

// Tokenize splits one string field of the document into lowercase
// whitespace-separated tokens. Fixed arity 1 (the document), tokens out.
type Tokenize struct {
	// Field is the document key holding the text to tokenize.
	Field string
}

// NewTokenize returns a Tokenize over the given document field.
func NewTokenize(field string) *Tokenize { return &Tokenize{Field: field} }

// Class implements Transform.
func (t *Tokenize) Class() string { return ClassTokenize }

// Signature implements Transform: fixed arity 1, token output.
func (t *Tokenize) Signature() Signature {
	return Signature{Kind: Fixed, Arity: 1, Output: KindTokens}
}

// Apply implements Transform. Missing fields yield an empty token list rather
// than an error, so sparse documents survive evaluation.
func (t *Tokenize) Apply(inputs []Value) (Value, error) {
	doc, err := AsDocument(inputs[0])
	if err != nil {
		return nil, err
	}
	raw, ok := doc[t.Field]
	if !ok {
		return []string{}, nil
	}
	text, ok := raw.(string)
	if !ok {
		return nil, errors.Wrapf(ErrBadInput, "field %q: want string, got %T", t.Field, raw)
	}
	return strings.Fields(strings.ToLower(text)), nil
}

// Save implements Persistable; Tokenize has no binary state, only config.
func (t *Tokenize) Save(ResourceSink) (map[string]any, error) {
	return map[string]any{"field": t.Field}, nil
}

// StripPunct drops leading/trailing punctuation from every token and discards
// tokens that were punctuation-only. Fixed arity 1, tokens in, tokens out.
type StripPunct struct{}

// Class implements Transform.
func (StripPunct) Class() string { return ClassStripPunct }

// Signature implements Transform: fixed arity 1, token output.
func (StripPunct) Signature() Signature {
	return Signature{Kind: Fixed, Arity: 1, Output: KindTokens}
}

// Apply implements Transform.
func (StripPunct) Apply(inputs []Value) (Value, error) {
	tokens, err := AsTokens(inputs[0])
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		trimmed := strings.TrimFunc(tok, unicode.IsPunct)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}
