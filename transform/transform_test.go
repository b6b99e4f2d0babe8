package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/featpipe/persist"
	"github.com/katalvlaran/featpipe/transform"
)

// TestRegistry_Contract covers registration rules and deterministic listing.
func TestRegistry_Contract(t *testing.T) {
	reg := transform.NewRegistry()
	require.NoError(t, reg.Register("b", transform.StripPunct{}))
	require.NoError(t, reg.Register("a", transform.Concat{}))

	assert.ErrorIs(t, reg.Register("", transform.Concat{}), transform.ErrEmptyStageName)
	assert.ErrorIs(t, reg.Register("a", transform.Concat{}), transform.ErrDuplicateStage)

	assert.Equal(t, []string{"a", "b"}, reg.Names(), "names list lexically regardless of insertion order")
	assert.Equal(t, 2, reg.Len())

	_, ok := reg.Lookup("a")
	assert.True(t, ok)
	_, ok = reg.Lookup("ghost")
	assert.False(t, ok)
}

// TestCatalog_NewAndMerge covers class resolution and overlay semantics.
func TestCatalog_NewAndMerge(t *testing.T) {
	cat := transform.BuiltinCatalog()

	_, err := cat.New("mystery", transform.Context{}, nil, nil)
	assert.ErrorIs(t, err, transform.ErrUnknownClass)

	_, err = cat.New(transform.ClassTokenize, transform.Context{}, nil, nil)
	assert.ErrorIs(t, err, transform.ErrBadConfig, "tokenize requires a field key")

	tok, err := cat.New(transform.ClassTokenize, transform.Context{}, nil, map[string]any{"field": "text"})
	require.NoError(t, err)
	assert.Equal(t, transform.ClassTokenize, tok.Class())

	// Merge overlays; the receiver is untouched.
	custom := cat.Merge(transform.Catalog{
		transform.ClassTokenize: func(transform.Context, transform.ResourceSource, map[string]any) (transform.Transform, error) {
			return transform.StripPunct{}, nil
		},
	})
	overlaid, err := custom.New(transform.ClassTokenize, transform.Context{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, transform.ClassStripPunct, overlaid.Class())

	orig, err := cat.New(transform.ClassTokenize, transform.Context{}, nil, map[string]any{"field": "text"})
	require.NoError(t, err)
	assert.Equal(t, transform.ClassTokenize, orig.Class())
}

// TestTokenize covers field extraction, lowercasing, and missing/mistyped
// fields.
func TestTokenize(t *testing.T) {
	tok := transform.NewTokenize("text")

	out, err := tok.Apply([]transform.Value{transform.Document{"text": "Great Movie indeed"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"great", "movie", "indeed"}, out)

	out, err = tok.Apply([]transform.Value{transform.Document{}})
	require.NoError(t, err)
	assert.Empty(t, out, "missing field reads as no tokens")

	_, err = tok.Apply([]transform.Value{transform.Document{"text": 7}})
	assert.ErrorIs(t, err, transform.ErrBadInput)

	_, err = tok.Apply([]transform.Value{"not a document"})
	assert.ErrorIs(t, err, transform.ErrBadInput)
}

// TestStripPunct covers trimming and dropping punctuation-only tokens.
func TestStripPunct(t *testing.T) {
	out, err := transform.StripPunct{}.Apply([]transform.Value{[]string{"good,", "movie!", "--", "a.b"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"good", "movie", "a.b"}, out, "interior punctuation survives")
}

// TestNGram covers construction bounds and windowing.
func TestNGram(t *testing.T) {
	_, err := transform.NewNGram(0)
	assert.ErrorIs(t, err, transform.ErrBadConfig)

	bi, err := transform.NewNGram(2)
	require.NoError(t, err)

	out, err := bi.Apply([]transform.Value{[]string{"a", "b", "c"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a_b", "b_c"}, out)

	out, err = bi.Apply([]transform.Value{[]string{"solo"}})
	require.NoError(t, err)
	assert.Empty(t, out, "fewer tokens than the window yields nothing")

	uni, err := transform.NewNGram(1)
	require.NoError(t, err)
	out, err = uni.Apply([]transform.Value{[]string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out)
}

// TestDictVectorizer_Lifecycle covers learning, freezing, unseen-token
// handling, reverse lookup, and pruning.
func TestDictVectorizer_Lifecycle(t *testing.T) {
	d := transform.NewDictVectorizer()

	_, frozen := d.Dimensions()
	assert.False(t, frozen)

	out, err := d.Apply([]transform.Value{[]string{"a", "b", "a"}})
	require.NoError(t, err)
	assert.Equal(t, transform.Vector{2, 1}, out, "first-seen order assigns indices")

	assert.ErrorIs(t, d.Prune(func(int) bool { return true }), transform.ErrNotFrozen)

	d.Freeze()
	n, frozen := d.Dimensions()
	assert.True(t, frozen)
	assert.Equal(t, 2, n)

	out, err = d.Apply([]transform.Value{[]string{"b", "zzz"}})
	require.NoError(t, err)
	assert.Equal(t, transform.Vector{0, 1}, out, "unseen tokens are ignored once frozen")

	id, ok := d.FeatureAt(1)
	assert.True(t, ok)
	assert.Equal(t, "b", id)
	_, ok = d.FeatureAt(2)
	assert.False(t, ok)

	require.NoError(t, d.Prune(func(local int) bool { return local == 1 }))
	n, _ = d.Dimensions()
	assert.Equal(t, 1, n)
	id, ok = d.FeatureAt(0)
	assert.True(t, ok)
	assert.Equal(t, "b", id, "survivors reindex contiguously")
}

// TestDictVectorizer_PersistRoundTrip saves the term table to a memory store
// and restores a frozen, identically behaving instance through the catalog.
func TestDictVectorizer_PersistRoundTrip(t *testing.T) {
	d := transform.NewDictVectorizer()
	_, err := d.Apply([]transform.Value{[]string{"x", "y", "z"}})
	require.NoError(t, err)
	d.Freeze()

	store := persist.NewMemStore()
	cfg, err := d.Save(store)
	require.NoError(t, err)
	assert.Nil(t, cfg, "dict vectorizer carries no structured config")

	restored, err := transform.BuiltinCatalog().New(
		transform.ClassDictVectorizer, transform.Context{}, store, nil)
	require.NoError(t, err)

	term, ok := restored.(transform.Terminable)
	require.True(t, ok)
	n, frozen := term.Dimensions()
	assert.True(t, frozen, "a persisted vectorizer restores frozen")
	assert.Equal(t, 3, n)

	out, err := restored.Apply([]transform.Value{[]string{"z", "z", "q"}})
	require.NoError(t, err)
	assert.Equal(t, transform.Vector{0, 0, 2}, out)
}

// TestNumberField covers extraction, widening, and the zero default.
func TestNumberField(t *testing.T) {
	nf := transform.NewNumberField("stars")

	out, err := nf.Apply([]transform.Value{transform.Document{"stars": 4}})
	require.NoError(t, err)
	assert.Equal(t, transform.Vector{4}, out, "integers widen")

	out, err = nf.Apply([]transform.Value{transform.Document{}})
	require.NoError(t, err)
	assert.Equal(t, transform.Vector{0}, out, "missing field reads as zero")

	_, err = nf.Apply([]transform.Value{transform.Document{"stars": "five"}})
	assert.ErrorIs(t, err, transform.ErrBadInput)
}

// TestScaleAndConcat covers the numeric plumbing.
func TestScaleAndConcat(t *testing.T) {
	out, err := transform.NewScale(0.5).Apply([]transform.Value{transform.Vector{2, 4}})
	require.NoError(t, err)
	assert.Equal(t, transform.Vector{1, 2}, out)

	out, err = transform.Concat{}.Apply([]transform.Value{
		transform.Vector{1},
		[]float64{2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, transform.Vector{1, 2, 3}, out)

	_, err = transform.Concat{}.Apply([]transform.Value{transform.Vector{1}, "nope"})
	assert.ErrorIs(t, err, transform.ErrBadInput)
}

// TestSignatures pins the declared shapes the binder depends on.
func TestSignatures(t *testing.T) {
	ng, err := transform.NewNGram(2)
	require.NoError(t, err)

	assert.Equal(t,
		transform.Signature{Kind: transform.Fixed, Arity: 1, Output: transform.KindTokens},
		transform.NewTokenize("text").Signature())
	assert.Equal(t,
		transform.Signature{Kind: transform.Fixed, Arity: 1, Output: transform.KindTokens},
		ng.Signature())
	assert.Equal(t,
		transform.Signature{Kind: transform.Fixed, Arity: 1, Output: transform.KindVector},
		transform.NewDictVectorizer().Signature())
	assert.Equal(t,
		transform.Signature{Kind: transform.Variadic, MinInputs: 1, Output: transform.KindVector},
		transform.Concat{}.Signature())
}
