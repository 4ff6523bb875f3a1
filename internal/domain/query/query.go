// Package query defines the validated inbound search query.
package query

import (
	"fmt"
	"strings"

	"github.com/lavkatech/suggest/internal/domain"
)

// Query parameter limits.
const (
	// MaxQueryLength is the maximum allowed raw query length.
	MaxQueryLength = 512
	DefaultTopK    = 5
	MaxTopK        = 50
)

// Query is a validated raw search query. It is created per request,
// immutable, and discarded after the response is assembled.
type Query struct {
	text string
	topK int
}

// New validates the raw query parameters. topK == 0 selects the default;
// out-of-range values are rejected, not clamped.
func New(text string, topK int) (Query, error) {
	if strings.TrimSpace(text) == "" {
		return Query{}, fmt.Errorf("%w: q is required", domain.ErrInvalidQuery)
	}
	if len(text) > MaxQueryLength {
		return Query{}, fmt.Errorf("%w: q too long (max %d bytes)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if topK == 0 {
		topK = DefaultTopK
	}
	if topK < 1 || topK > MaxTopK {
		return Query{}, fmt.Errorf("%w: top_k must be between 1 and %d", domain.ErrInvalidQuery, MaxTopK)
	}
	return Query{text: text, topK: topK}, nil
}

// Text returns the raw query text.
func (q Query) Text() string { return q.text }

// TopK returns the requested result count.
func (q Query) TopK() int { return q.topK }
