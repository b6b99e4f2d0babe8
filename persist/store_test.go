package persist_test

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/featpipe/persist"
)

// TestStore_SubScopesIsolate asserts that equally named resources in sibling
// scopes never collide.
func TestStore_SubScopesIsolate(t *testing.T) {
	store := persist.NewMemStore()
	writeResource(t, store.Sub("a"), "blob", "left")
	writeResource(t, store.Sub("b"), "blob", "right")

	assert.Equal(t, "left", readResource(t, store.Sub("a"), "blob"))
	assert.Equal(t, "right", readResource(t, store.Sub("b"), "blob"))
	assert.False(t, store.Has("blob"), "parent scope must not see child resources under the bare name")
}

// TestStore_OpenMissing asserts ErrMissingResource for absent names.
func TestStore_OpenMissing(t *testing.T) {
	store := persist.NewMemStore()
	_, err := store.Open("nope")
	assert.ErrorIs(t, err, persist.ErrMissingResource)
	assert.False(t, store.Has("nope"))
}

// TestStore_CreateTruncates asserts Create replaces previous content.
func TestStore_CreateTruncates(t *testing.T) {
	store := persist.NewMemStore()
	writeResource(t, store, "blob", "a longer first value")
	writeResource(t, store, "blob", "short")
	assert.Equal(t, "short", readResource(t, store, "blob"))
}

// TestStore_OsBacked exercises the same contract over a real directory.
func TestStore_OsBacked(t *testing.T) {
	store := persist.NewStore(afero.NewOsFs(), t.TempDir())
	writeResource(t, store.Sub("stage"), "terms.bin", "payload")

	rc, err := store.Sub("stage").Open("terms.bin")
	require.NoError(t, err)
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(raw))
}
