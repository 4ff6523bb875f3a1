package domain

import "errors"

var (
	// ErrInvalidQuery signals a request rejected by input validation
	// before the pipeline runs.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrIndexUnavailable signals that the search index is unreachable
	// or returned a malformed response.
	ErrIndexUnavailable = errors.New("search index unavailable")
	// ErrCatalogUnavailable signals that the catalog source could not be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
