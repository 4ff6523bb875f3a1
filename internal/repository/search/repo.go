// Package search retrieves scored product candidates from the search index.
package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lavkatech/suggest/internal/db"
	"github.com/lavkatech/suggest/internal/domain/product"
	"github.com/lavkatech/suggest/internal/domain/query/numeric"
	"github.com/lavkatech/suggest/internal/domain/search/candidate"
)

// store is the database capability this repository needs.
type store interface {
	Search(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Fields matched by prefix clauses, in score-relevant order.
var prefixFields = []string{"name", "brand", "keywords"}

// Fields loaded for each hit.
var returnFields = []string{
	"name", "category", "brand", "price",
	"weight_value", "weight_unit", "package_size", "image_url",
}

// Repo queries the product index.
type Repo struct {
	store     store
	indexName string
	keyPrefix string
}

// New creates a search repository.
func New(store store, indexName, keyPrefix string) *Repo {
	return &Repo{store: store, indexName: indexName, keyPrefix: keyPrefix}
}

// SearchPrefix runs a prefix search for the given tokens, optionally narrowed
// by a quantity filter, and returns up to limit candidates in engine order.
// With no tokens the filter alone selects candidates; with neither, the
// result is empty without touching the index.
func (r *Repo) SearchPrefix(ctx context.Context, tokens []string, filter *numeric.Filter, limit int) ([]candidate.Candidate, error) {
	if len(tokens) == 0 && filter == nil {
		return nil, nil
	}

	q := &db.TextQuery{
		IndexName:    r.indexName,
		Tokens:       tokens,
		TextFields:   prefixFields,
		Limit:        limit,
		ReturnFields: returnFields,
	}
	if filter != nil {
		q.TagEquals = map[string]string{"weight_unit": string(filter.Unit())}
		q.NumericEquals = map[string]float64{"weight_value": filter.Quantity()}
	}

	res, err := r.store.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	candidates := make([]candidate.Candidate, 0, len(res.Entries))
	for _, entry := range res.Entries {
		p, err := r.entryToProduct(&entry)
		if err != nil {
			// Malformed documents are skipped, not fatal.
			continue
		}
		candidates = append(candidates, candidate.New(p, entry.Score, len(candidates)))
	}
	return candidates, nil
}

// entryToProduct rebuilds a product from a hit's stored fields. The document
// ID is the key with the storage prefix stripped.
func (r *Repo) entryToProduct(entry *db.SearchEntry) (product.Product, error) {
	id := strings.TrimPrefix(entry.Key, r.keyPrefix)

	p, err := product.New(id, entry.Fields["name"], entry.Fields["category"], entry.Fields["brand"])
	if err != nil {
		return product.Product{}, err
	}

	if raw := entry.Fields["price"]; raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			p = p.WithPrice(price)
		}
	}
	if unit := entry.Fields["weight_unit"]; unit != "" {
		if value, err := strconv.ParseFloat(entry.Fields["weight_value"], 64); err == nil {
			p = p.WithWeight(value, unit)
		}
	}
	if raw := entry.Fields["package_size"]; raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			p = p.WithPackageSize(n)
		}
	}
	if u := entry.Fields["image_url"]; u != "" {
		p = p.WithImageURL(u)
	}
	return p, nil
}
