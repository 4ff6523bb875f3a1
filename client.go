// Package suggest provides an embedded client for the product prefix-search
// pipeline: connect it to Redis and query the catalog in-process, without the
// HTTP server.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lavkatech/suggest/internal/catalog"
	"github.com/lavkatech/suggest/internal/db"
	dbRedis "github.com/lavkatech/suggest/internal/db/redis"
	"github.com/lavkatech/suggest/internal/domain/product"
	"github.com/lavkatech/suggest/internal/domain/query"
	catalogrepo "github.com/lavkatech/suggest/internal/repository/catalog"
	searchrepo "github.com/lavkatech/suggest/internal/repository/search"
	ingestuc "github.com/lavkatech/suggest/internal/usecase/ingest"
	searchuc "github.com/lavkatech/suggest/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultIndexName        = "suggest:product:idx"
	defaultKeyPrefix        = "suggest:product:"
)

// Client is the suggest SDK entry point.
type Client struct {
	store     db.Store
	searchSvc *searchuc.Service
	catRepo   *catalogrepo.Repo
}

// New creates a suggest Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		indexName: defaultIndexName,
		keyPrefix: defaultKeyPrefix,
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("suggest: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest: create redis store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("suggest: database not ready: %w", err)
	}

	catRepo := catalogrepo.New(store, cfg.indexName, cfg.keyPrefix)
	searchRepo := searchrepo.New(store, cfg.indexName, cfg.keyPrefix)

	searchSvc := searchuc.New(searchRepo).WithTuning(
		cfg.overfetchMultiplier, cfg.purityWindow, cfg.purityPenalty,
	)

	c := &Client{store: store, searchSvc: searchSvc, catRepo: catRepo}

	if err := catRepo.EnsureIndex(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("suggest: ensure index: %w", err)
	}
	if cfg.catalogPath != "" {
		ingestSvc := ingestuc.New(catRepo, catalog.NewFileSource(cfg.catalogPath), nil)
		if err := ingestSvc.EnsureCatalog(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("suggest: seed catalog: %w", err)
		}
	}

	return c, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search runs the query pipeline and returns up to topK results.
// topK 0 selects the default.
func (c *Client) Search(ctx context.Context, q string, topK int) (*SearchResult, error) {
	req, err := query.New(q, topK)
	if err != nil {
		return nil, err
	}

	resp, err := c.searchSvc.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	return searchResultFromResponse(resp), nil
}

// ErrItemNotFound is returned by Item and DeleteItem for unknown IDs.
var ErrItemNotFound = errors.New("suggest: item not found")

// Item fetches a single catalog item by ID.
func (c *Client) Item(ctx context.Context, id string) (*Item, error) {
	p, err := c.catRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	item := itemFromProduct(p, 0)
	return &item, nil
}

// UpsertItem stores or replaces a single catalog item. ID and Name are
// required; the Score field is ignored.
func (c *Client) UpsertItem(ctx context.Context, item Item) error {
	p, err := product.New(item.ID, item.Name, item.Category, item.Brand)
	if err != nil {
		return fmt.Errorf("suggest: %w", err)
	}
	p = p.WithPrice(item.Price).
		WithWeight(item.WeightValue, item.WeightUnit).
		WithPackageSize(item.PackageSize).
		WithImageURL(item.ImageURL)

	if err := c.catRepo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// DeleteItem removes a catalog item by ID.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	if err := c.catRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// LoadCatalog replaces the indexed catalog with the feed at path.
func (c *Client) LoadCatalog(ctx context.Context, path string) error {
	ingestSvc := ingestuc.New(c.catRepo, catalog.NewFileSource(path), nil)
	return ingestSvc.Reload(ctx)
}

// SearchResult is the public result of a pipeline run.
type SearchResult struct {
	Query            string
	LayoutFixedQuery string
	NormalizedQuery  string
	NumericFilter    *NumericFilter
	Items            []Item
}

// NumericFilter describes an extracted quantity constraint.
type NumericFilter struct {
	Quantity float64
	Unit     string // dimension: "weight" or "volume"
	Suffix   string // canonical unit suffix: kg, g, l, ml
}

// Item is a single ranked product.
type Item struct {
	ID          string
	Name        string
	Category    string
	Brand       string
	Price       float64
	WeightValue float64
	WeightUnit  string
	PackageSize int
	ImageURL    string
	Score       float64
}

func searchResultFromResponse(resp *searchuc.Response) *SearchResult {
	out := &SearchResult{
		Query:            resp.Query,
		LayoutFixedQuery: resp.LayoutFixedQuery,
		NormalizedQuery:  resp.NormalizedQuery,
		Items:            make([]Item, 0, len(resp.Results)),
	}
	if f := resp.Filter; f != nil {
		out.NumericFilter = &NumericFilter{
			Quantity: f.Quantity(),
			Unit:     string(f.Unit().Dimension()),
			Suffix:   string(f.Unit()),
		}
	}
	for i := range resp.Results {
		c := &resp.Results[i]
		out.Items = append(out.Items, itemFromProduct(c.Product(), c.Score()))
	}
	return out
}

func itemFromProduct(p product.Product, score float64) Item {
	return Item{
		ID:          p.ID(),
		Name:        p.Name(),
		Category:    p.Category(),
		Brand:       p.Brand(),
		Price:       p.Price(),
		WeightValue: p.WeightValue(),
		WeightUnit:  p.WeightUnit(),
		PackageSize: p.PackageSize(),
		ImageURL:    p.ImageURL(),
		Score:       score,
	}
}
