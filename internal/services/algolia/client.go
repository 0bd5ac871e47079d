package algolia

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"algowoo/internal/indexer"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"
)

var ErrMissingCredentials = errors.New("algolia application id and api key are required")

// Client saves documents through the Algolia search API.
type Client struct {
	search *search.Client
}

func NewClient(applicationID, apiKey string) (*Client, error) {
	applicationID = strings.TrimSpace(applicationID)
	apiKey = strings.TrimSpace(apiKey)
	if applicationID == "" || apiKey == "" {
		return nil, ErrMissingCredentials
	}
	return &Client{
		search: search.NewClient(applicationID, apiKey),
	}, nil
}

// Factory adapts NewClient to indexer.ClientFactory.
func Factory(applicationID, apiKey string) (indexer.IndexClient, error) {
	return NewClient(applicationID, apiKey)
}

// SaveObjects adds or replaces docs in indexName and waits until Algolia
// has applied every batch. The index is created on first write.
func (c *Client) SaveObjects(ctx context.Context, indexName string, docs []indexer.Document) error {
	if len(docs) == 0 {
		return nil
	}

	objects := make([]map[string]interface{}, len(docs))
	for i, d := range docs {
		if d.ObjectID() == "" {
			return fmt.Errorf("document %d has no %s", i, indexer.ObjectIDKey)
		}
		objects[i] = d
	}

	index := c.search.InitIndex(indexName)
	res, err := index.SaveObjects(objects, ctx)
	if err != nil {
		return fmt.Errorf("failed to save objects to index %s: %w", indexName, err)
	}
	if err := res.Wait(ctx); err != nil {
		return fmt.Errorf("failed waiting for index %s: %w", indexName, err)
	}
	return nil
}
