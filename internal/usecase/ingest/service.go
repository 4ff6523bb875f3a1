// Package ingest seeds the search index from the catalog feed.
package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lavkatech/suggest/internal/domain"
)

// Batch size for pipelined hash writes.
const upsertBatchSize = 500

// Service loads the catalog into the index.
type Service struct {
	repo   CatalogRepository
	source Source
	log    *zap.Logger
}

// New creates an ingest service.
func New(repo CatalogRepository, source Source, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, source: source, log: log}
}

// EnsureCatalog creates the index if needed and loads the feed when the
// catalog is empty. An already-populated catalog is left untouched so
// restarts do not rewrite every document.
func (s *Service) EnsureCatalog(ctx context.Context) error {
	if err := s.repo.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	if n > 0 {
		s.log.Info("catalog already populated", zap.Int("products", n))
		return nil
	}

	return s.Reload(ctx)
}

// Reload loads the full feed and upserts every product in batches.
func (s *Service) Reload(ctx context.Context) error {
	products, err := s.source.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	for start := 0; start < len(products); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(products) {
			end = len(products)
		}
		if err := s.repo.BulkUpsert(ctx, products[start:end]); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
		}
	}

	s.log.Info("catalog loaded", zap.Int("products", len(products)))
	return nil
}
