// Package product defines the catalog document as seen by the search pipeline.
// Products are read-only here: they are written once at ingestion time and
// never mutated by a query.
package product

import "fmt"

// Product is a single catalog item.
type Product struct {
	id          string
	name        string
	category    string
	brand       string
	price       float64
	weightValue float64
	weightUnit  string
	packageSize int
	keywords    string
	description string
	imageURL    string
}

// New validates and creates a product. ID and name are required.
func New(id, name, category, brand string) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("product id is required")
	}
	if name == "" {
		return Product{}, fmt.Errorf("product %s: name is required", id)
	}
	return Product{id: id, name: name, category: category, brand: brand}, nil
}

// WithPrice returns a copy with the price set.
func (p Product) WithPrice(price float64) Product {
	p.price = price
	return p
}

// WithWeight returns a copy with the indexed numeric attribute set.
// unit is a canonical suffix (kg, g, l, ml); empty unit means no attribute.
func (p Product) WithWeight(value float64, unit string) Product {
	p.weightValue = value
	p.weightUnit = unit
	return p
}

// WithPackageSize returns a copy with the package size set.
func (p Product) WithPackageSize(n int) Product {
	p.packageSize = n
	return p
}

// WithText returns a copy with the auxiliary indexed text set.
func (p Product) WithText(keywords, description string) Product {
	p.keywords = keywords
	p.description = description
	return p
}

// WithImageURL returns a copy with the image URL set.
func (p Product) WithImageURL(u string) Product {
	p.imageURL = u
	return p
}

// ID returns the product identifier.
func (p Product) ID() string { return p.id }

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Category returns the catalog category.
func (p Product) Category() string { return p.category }

// Brand returns the brand name.
func (p Product) Brand() string { return p.brand }

// Price returns the price.
func (p Product) Price() float64 { return p.price }

// WeightValue returns the indexed quantity value (0 when absent).
func (p Product) WeightValue() float64 { return p.weightValue }

// WeightUnit returns the canonical quantity unit suffix ("" when absent).
func (p Product) WeightUnit() string { return p.weightUnit }

// PackageSize returns the package size (0 when absent).
func (p Product) PackageSize() int { return p.packageSize }

// Keywords returns the auxiliary keyword text.
func (p Product) Keywords() string { return p.keywords }

// Description returns the description text.
func (p Product) Description() string { return p.description }

// ImageURL returns the image URL.
func (p Product) ImageURL() string { return p.imageURL }

// HasWeight reports whether the product carries an indexed numeric attribute.
func (p Product) HasWeight() bool { return p.weightUnit != "" }
