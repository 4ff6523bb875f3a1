package ingest

import (
	"context"

	"github.com/lavkatech/suggest/internal/domain/product"
)

// CatalogRepository manages the indexed product catalog.
type CatalogRepository interface {
	EnsureIndex(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	BulkUpsert(ctx context.Context, products []product.Product) error
}

// Source yields the full product feed.
type Source interface {
	Load() ([]product.Product, error)
}
