package search

import (
	"context"

	"github.com/lavkatech/suggest/internal/domain/query/numeric"
	"github.com/lavkatech/suggest/internal/domain/search/candidate"
)

// Repository defines the index contract for candidate retrieval.
type Repository interface {
	SearchPrefix(
		ctx context.Context, tokens []string, filter *numeric.Filter, limit int,
	) ([]candidate.Candidate, error)
}
