// impl_dict.go — DictVectorizer: the terminable, persistable heart of the
// stock path. Learns a stable term→index table while unfrozen, emits term-count
// vectors, supports pruning and reverse lookup, and persists its table through
// the record codec.
package transform

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/featpipe/record"
)

// ClassDictVectorizer is the catalog identifier of DictVectorizer.
const ClassDictVectorizer = "dict_vectorizer"

// dictTermsResource names the persisted term table inside the transform's
// scoped resource store.
const dictTermsResource = "terms.bin"

// DictVectorizer counts token occurrences against a learned vocabulary.
//
// Lifecycle: while unfrozen, every previously unseen token is assigned the next
// free index in first-seen order, so priming over a corpus in a fixed order
// yields a deterministic table. After Freeze the vocabulary is fixed and unseen
// tokens are ignored. Fixed arity 1, tokens in, vector out.
type DictVectorizer struct {
	index  map[string]int
	terms  []string
	frozen bool
}

// NewDictVectorizer returns an empty, unfrozen DictVectorizer.
func NewDictVectorizer() *DictVectorizer {
	return &DictVectorizer{index: make(map[string]int)}
}

// Class implements Transform.
func (d *DictVectorizer) Class() string { return ClassDictVectorizer }

// Signature implements Transform: fixed arity 1, vector output.
func (d *DictVectorizer) Signature() Signature {
	return Signature{Kind: Fixed, Arity: 1, Output: KindVector}
}

// Apply implements Transform. While unfrozen the vocabulary (and hence the
// output length) may grow; frozen output length is exactly Dimensions().
// Complexity: O(tokens + dimensions).
func (d *DictVectorizer) Apply(inputs []Value) (Value, error) {
	tokens, err := AsTokens(inputs[0])
	if err != nil {
		return nil, err
	}
	if !d.frozen {
		for _, tok := range tokens {
			if _, seen := d.index[tok]; !seen {
				d.index[tok] = len(d.terms)
				d.terms = append(d.terms, tok)
			}
		}
	}
	vec := make(Vector, len(d.terms))
	for _, tok := range tokens {
		if i, ok := d.index[tok]; ok {
			vec[i]++
		}
	}
	return vec, nil
}

// Dimensions implements Terminable.
func (d *DictVectorizer) Dimensions() (int, bool) {
	return len(d.terms), d.frozen
}

// Freeze implements Terminable; one-way.
func (d *DictVectorizer) Freeze() { d.frozen = true }

// FeatureAt implements Terminable: local index -> term.
func (d *DictVectorizer) FeatureAt(local int) (string, bool) {
	if local < 0 || local >= len(d.terms) {
		return "", false
	}
	return d.terms[local], true
}

// Prune implements Terminable. Survivors are reindexed contiguously in their
// existing order; dropped terms are gone for good (not idempotent across calls
// because local indices shift).
//
// Errors:
//   - ErrNotFrozen when invoked before Freeze.
func (d *DictVectorizer) Prune(keep func(local int) bool) error {
	if !d.frozen {
		return ErrNotFrozen
	}
	kept := make([]string, 0, len(d.terms))
	index := make(map[string]int, len(d.terms))
	for i, term := range d.terms {
		if keep(i) {
			index[term] = len(kept)
			kept = append(kept, term)
		}
	}
	d.terms = kept
	d.index = index
	return nil
}

// Save implements Persistable: the term table goes into terms.bin as a
// length-prefixed string collection; no structured config is needed.
func (d *DictVectorizer) Save(sink ResourceSink) (map[string]any, error) {
	wc, err := sink.Create(dictTermsResource)
	if err != nil {
		return nil, errors.Wrap(err, "dict_vectorizer: create terms resource")
	}
	w := record.NewWriter(wc)
	w.Strings(d.terms)
	if err = w.Flush(); err != nil {
		_ = wc.Close()
		return nil, errors.Wrap(err, "dict_vectorizer: write terms")
	}
	if err = wc.Close(); err != nil {
		return nil, errors.Wrap(err, "dict_vectorizer: close terms resource")
	}
	return nil, nil
}

// loadDictVectorizer restores a DictVectorizer from its scoped resource store.
// A persisted vectorizer comes back frozen; absent resources yield a fresh,
// unfrozen instance (the not-yet-primed case).
func loadDictVectorizer(src ResourceSource) (*DictVectorizer, error) {
	d := NewDictVectorizer()
	if src == nil || !src.Has(dictTermsResource) {
		return d, nil
	}
	rc, err := src.Open(dictTermsResource)
	if err != nil {
		return nil, errors.Wrap(err, "dict_vectorizer: open terms resource")
	}
	defer rc.Close()

	r := record.NewReader(rc)
	terms := r.Strings()
	if err = r.Err(); err != nil {
		return nil, errors.Wrap(err, "dict_vectorizer: read terms")
	}
	for i, term := range terms {
		d.index[term] = i
	}
	d.terms = terms
	d.frozen = true
	return d, nil
}
