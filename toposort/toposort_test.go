package toposort_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/featpipe/toposort"
)

// diamondEntries is the two-branch text pipeline used across the suite:
// tokenizer feeds stripPunct → ngram → wordVectors, a sibling metadata stage
// reads the document directly, and $output collects both ends.
func diamondEntries() []toposort.Entry {
	return []toposort.Entry{
		{Name: "tokenizer", Inputs: []string{toposort.DocumentStage}},
		{Name: "stripPunct", Inputs: []string{"tokenizer"}},
		{Name: "ngram", Inputs: []string{"stripPunct"}},
		{Name: "wordVectors", Inputs: []string{"ngram"}},
		{Name: "metadata", Inputs: []string{toposort.DocumentStage}},
		{Name: toposort.OutputStage, Inputs: []string{"wordVectors", "metadata"}},
	}
}

// TestSort_Diamond verifies the canonical leveling of the two-branch pipeline:
// [metadata tokenizer], [stripPunct], [ngram], [wordVectors], [$output].
func TestSort_Diamond(t *testing.T) {
	levels, err := toposort.Sort(diamondEntries())
	require.NoError(t, err, "acyclic resolvable entries must sort")

	want := [][]string{
		{"metadata", "tokenizer"},
		{"stripPunct"},
		{"ngram"},
		{"wordVectors"},
		{toposort.OutputStage},
	}
	assert.Equal(t, want, levels, "diamond must level exactly as declared dependencies dictate")
}

// TestSort_InputsStrictlyEarlier checks the core invariant: every stage's
// inputs belong to a strictly earlier level and $document is never a member.
func TestSort_InputsStrictlyEarlier(t *testing.T) {
	entries := diamondEntries()
	levels, err := toposort.Sort(entries)
	require.NoError(t, err)

	levelOf := make(map[string]int)
	for i, level := range levels {
		for _, name := range level {
			assert.NotEqual(t, toposort.DocumentStage, name, "$document must never appear as a level member")
			levelOf[name] = i
		}
	}
	for _, e := range entries {
		for _, in := range e.Inputs {
			if in == toposort.DocumentStage {
				continue
			}
			assert.Less(t, levelOf[in], levelOf[e.Name],
				"input %q of %q must be placed strictly earlier", in, e.Name)
		}
	}
}

// TestSort_ShuffleInvariant asserts that shuffling the entry order changes
// neither the levels nor the outcome.
func TestSort_ShuffleInvariant(t *testing.T) {
	want, err := toposort.Sort(diamondEntries())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		entries := diamondEntries()
		rng.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })

		got, errSort := toposort.Sort(entries)
		require.NoError(t, errSort, "trial %d", trial)
		assert.Equal(t, want, got, "trial %d: levels must not depend on entry order", trial)
	}
}

// TestSort_Empty verifies that an empty entry set yields empty levels.
func TestSort_Empty(t *testing.T) {
	levels, err := toposort.Sort(nil)
	require.NoError(t, err, "empty entry set is not an error")
	assert.Empty(t, levels, "empty entry set must yield an empty level sequence")
}

// TestSort_Errors exercises the structural error taxonomy.
func TestSort_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []toposort.Entry
		want    error
	}{
		{
			name: "dangling input",
			entries: []toposort.Entry{
				{Name: "a", Inputs: []string{"ghost"}},
			},
			want: toposort.ErrUnknownStage,
		},
		{
			name: "self reference",
			entries: []toposort.Entry{
				{Name: "a", Inputs: []string{"a"}},
			},
			want: toposort.ErrCyclicDependency,
		},
		{
			name: "mutual cycle",
			entries: []toposort.Entry{
				{Name: "a", Inputs: []string{"b"}},
				{Name: "b", Inputs: []string{"a"}},
			},
			want: toposort.ErrCyclicDependency,
		},
		{
			name: "duplicate entry",
			entries: []toposort.Entry{
				{Name: "a", Inputs: []string{toposort.DocumentStage}},
				{Name: "a", Inputs: []string{toposort.DocumentStage}},
			},
			want: toposort.ErrDuplicateEntry,
		},
		{
			name: "reserved name declared",
			entries: []toposort.Entry{
				{Name: toposort.DocumentStage, Inputs: nil},
			},
			want: toposort.ErrReservedName,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := toposort.Sort(tc.entries)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSort_CycleShuffleInvariant asserts that a cyclic entry set fails with
// ErrCyclicDependency regardless of input ordering.
func TestSort_CycleShuffleInvariant(t *testing.T) {
	base := []toposort.Entry{
		{Name: "a", Inputs: []string{"c"}},
		{Name: "b", Inputs: []string{"a"}},
		{Name: "c", Inputs: []string{"b"}},
		{Name: "root", Inputs: []string{toposort.DocumentStage}},
	}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		entries := append([]toposort.Entry(nil), base...)
		rng.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })

		_, err := toposort.Sort(entries)
		assert.ErrorIs(t, err, toposort.ErrCyclicDependency, "trial %d", trial)
	}
}
