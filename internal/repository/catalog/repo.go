// Package catalog persists products as index-backed hashes.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/lavkatech/suggest/internal/db"
	"github.com/lavkatech/suggest/internal/domain/product"
)

// store is the database capability this repository needs.
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo manages the product catalog and its search index.
type Repo struct {
	store     store
	indexName string
	keyPrefix string
}

// New creates a catalog repository.
func New(store store, indexName, keyPrefix string) *Repo {
	return &Repo{store: store, indexName: indexName, keyPrefix: keyPrefix}
}

// EnsureIndex creates the product index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def := &db.IndexDefinition{
		Name:        r.indexName,
		StorageType: db.StorageHash,
		Prefixes:    []string{r.keyPrefix},
		Fields: []db.IndexField{
			{Name: "name", Type: db.IndexFieldText, TextWeight: 2},
			{Name: "brand", Type: db.IndexFieldText},
			{Name: "keywords", Type: db.IndexFieldText},
			{Name: "description", Type: db.IndexFieldText, TextWeight: 0.5},
			{Name: "category", Type: db.IndexFieldTag},
			{Name: "weight_unit", Type: db.IndexFieldTag},
			{Name: "weight_value", Type: db.IndexFieldNumeric},
			{Name: "price", Type: db.IndexFieldNumeric},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create catalog index: %w", err)
	}
	return nil
}

// Count returns the number of indexed products.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, r.indexName, "*")
	if err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	return n, nil
}

// BulkUpsert stores products as hashes in one pipelined round-trip.
func (r *Repo) BulkUpsert(ctx context.Context, products []product.Product) error {
	if len(products) == 0 {
		return nil
	}

	items := make([]db.HashSetItem, len(products))
	for i := range products {
		p := &products[i]
		items[i] = db.HashSetItem{
			Key:    r.keyPrefix + p.ID(),
			Fields: productFields(p),
		}
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("upsert catalog: %w", err)
	}
	return nil
}

// Get loads a single product by ID. Returns db.ErrKeyNotFound when the
// product is not stored.
func (r *Repo) Get(ctx context.Context, id string) (product.Product, error) {
	fields, err := r.store.HGetAll(ctx, r.keyPrefix+id)
	if err != nil {
		return product.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	// HGETALL reports a missing key as an empty hash.
	if len(fields) == 0 {
		return product.Product{}, fmt.Errorf("get product %s: %w", id, db.ErrKeyNotFound)
	}
	return productFromFields(id, fields)
}

// Upsert stores or replaces a single product.
func (r *Repo) Upsert(ctx context.Context, p product.Product) error {
	if err := r.store.HSet(ctx, r.keyPrefix+p.ID(), productFields(&p)); err != nil {
		return fmt.Errorf("upsert product %s: %w", p.ID(), err)
	}
	return nil
}

// Delete removes a product. Returns db.ErrKeyNotFound when absent.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.keyPrefix + id

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("delete product %s: %w", id, db.ErrKeyNotFound)
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// productFields flattens a product into hash fields. Absent optional
// attributes are omitted so TAG filters never match empty strings.
func productFields(p *product.Product) map[string]string {
	fields := map[string]string{
		"name":     p.Name(),
		"category": p.Category(),
	}
	if p.Brand() != "" {
		fields["brand"] = p.Brand()
	}
	if p.Price() > 0 {
		fields["price"] = strconv.FormatFloat(p.Price(), 'f', -1, 64)
	}
	if p.HasWeight() {
		fields["weight_value"] = strconv.FormatFloat(p.WeightValue(), 'f', -1, 64)
		fields["weight_unit"] = p.WeightUnit()
	}
	if p.PackageSize() > 0 {
		fields["package_size"] = strconv.Itoa(p.PackageSize())
	}
	if p.Keywords() != "" {
		fields["keywords"] = p.Keywords()
	}
	if p.Description() != "" {
		fields["description"] = p.Description()
	}
	if p.ImageURL() != "" {
		fields["image_url"] = p.ImageURL()
	}
	return fields
}

// productFromFields is the inverse of productFields.
func productFromFields(id string, fields map[string]string) (product.Product, error) {
	p, err := product.New(id, fields["name"], fields["category"], fields["brand"])
	if err != nil {
		return product.Product{}, fmt.Errorf("stored product %s: %w", id, err)
	}

	if raw := fields["price"]; raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			p = p.WithPrice(price)
		}
	}
	if unit := fields["weight_unit"]; unit != "" {
		if value, err := strconv.ParseFloat(fields["weight_value"], 64); err == nil {
			p = p.WithWeight(value, unit)
		}
	}
	if raw := fields["package_size"]; raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			p = p.WithPackageSize(n)
		}
	}
	p = p.WithText(fields["keywords"], fields["description"])
	if u := fields["image_url"]; u != "" {
		p = p.WithImageURL(u)
	}
	return p, nil
}
