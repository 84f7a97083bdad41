package census

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniaodigital/learnhub/internal/logging"
	"github.com/uniaodigital/learnhub/internal/store"
)

func newCensus(t *testing.T) *Census {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locations.json")
	return New(store.New[Document](path, logging.NewDiscardLogger()), logging.NewDiscardLogger())
}

func TestIncrement_NewAndExistingKeys(t *testing.T) {
	ctx := context.Background()
	c := newCensus(t)

	require.NoError(t, c.Increment(ctx, "SP"))
	require.NoError(t, c.Increment(ctx, "SP"))
	require.NoError(t, c.Increment(ctx, "RJ"))

	all, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, Document{"SP": 2, "RJ": 1}, all)
}

func TestIncrement_NullDocumentStartsFresh(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "locations.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o660))

	c := New(store.New[Document](path, logging.NewDiscardLogger()), logging.NewDiscardLogger())

	require.NoError(t, c.Increment(ctx, "SP"))

	all, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, Document{"SP": 1}, all)
}

func TestAll_EmptyOnFirstUse(t *testing.T) {
	ctx := context.Background()
	c := newCensus(t)

	all, err := c.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
