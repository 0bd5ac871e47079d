// Package indexer maps catalog products to search documents and sends them
// to a remote search index.
package indexer

import (
	"context"
	"errors"
)

// ObjectIDKey is the document key the search index uses as primary key.
const ObjectIDKey = "objectID"

// AttributesKey holds the filtered product attributes.
const AttributesKey = "attributes"

// Document is the flat record submitted to the index for one product.
type Document map[string]interface{}

// ObjectID returns the document's primary key.
func (d Document) ObjectID() string {
	id, _ := d[ObjectIDKey].(string)
	return id
}

// IndexClient saves documents into a named index. Implementations are
// expected to wait until the batch is accepted.
type IndexClient interface {
	SaveObjects(ctx context.Context, indexName string, docs []Document) error
}

var (
	ErrNotConfigured    = errors.New("algolia credentials or index name are not configured")
	ErrNotEligible      = errors.New("product is not published")
	ErrAutoSendDisabled = errors.New("automatic indexing of new products is disabled")
)
