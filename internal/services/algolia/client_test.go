package algolia

import (
	"context"
	"testing"

	"algowoo/internal/indexer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient("", "key")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = Factory("app", "  ")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	c, err := Factory("app", "key")
	require.NoError(t, err)
	assert.Implements(t, (*indexer.IndexClient)(nil), c)
}

func TestSaveObjects_EmptyBatchIsNoop(t *testing.T) {
	c, err := NewClient("app", "key")
	require.NoError(t, err)

	assert.NoError(t, c.SaveObjects(context.Background(), "products", nil))
}

func TestSaveObjects_RejectsDocumentsWithoutObjectID(t *testing.T) {
	c, err := NewClient("app", "key")
	require.NoError(t, err)

	err = c.SaveObjects(context.Background(), "products", []indexer.Document{{"product_name": "Fern"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "objectID")
}
