package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports the number of indexed products.
type CatalogChecker interface {
	Count(ctx context.Context) (int, error)
}
