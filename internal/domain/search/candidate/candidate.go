// Package candidate defines a single hit retrieved from the search index.
package candidate

import "github.com/lavkatech/suggest/internal/domain/product"

// Candidate is a (document, relevance score, engine rank) tuple. Rank is the
// zero-based position assigned by the index engine and is the stable
// tie-break after re-ranking.
type Candidate struct {
	product product.Product
	score   float64
	rank    int
}

// New creates a candidate.
func New(p product.Product, score float64, rank int) Candidate {
	return Candidate{product: p, score: score, rank: rank}
}

// Product returns the catalog document.
func (c Candidate) Product() product.Product { return c.product }

// Score returns the current relevance score.
func (c Candidate) Score() float64 { return c.score }

// Rank returns the original engine rank.
func (c Candidate) Rank() int { return c.rank }

// Category returns the document category.
func (c Candidate) Category() string { return c.product.Category() }

// WithScore returns a copy with a replaced score; rank is preserved.
func (c Candidate) WithScore(score float64) Candidate {
	c.score = score
	return c
}
