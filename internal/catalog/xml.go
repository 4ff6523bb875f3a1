// Package catalog loads products from the merchant XML feed.
package catalog

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lavkatech/suggest/internal/domain/product"
)

// xmlWeight is a quantity element with the unit carried as an attribute:
// <weight unit="kg">5</weight>.
type xmlWeight struct {
	Unit  string `xml:"unit,attr"`
	Value string `xml:",chardata"`
}

type xmlProduct struct {
	ID          string    `xml:"id,attr"`
	Name        string    `xml:"name"`
	Category    string    `xml:"category"`
	Brand       string    `xml:"brand"`
	Weight      xmlWeight `xml:"weight"`
	PackageSize string    `xml:"package_size"`
	Keywords    string    `xml:"keywords"`
	Description string    `xml:"description"`
	Price       string    `xml:"price"`
	ImageURL    string    `xml:"image_url"`
}

type xmlCatalog struct {
	XMLName  xml.Name     `xml:"products"`
	Products []xmlProduct `xml:"product"`
}

// FileSource reads the catalog from an XML file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed catalog source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load parses the feed and returns the products. Entries missing required
// attributes are dropped with their position reported in the error only when
// the whole feed is unusable.
func (s *FileSource) Load() ([]product.Product, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a products feed from r.
func Parse(r io.Reader) ([]product.Product, error) {
	var feed xmlCatalog
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]product.Product, 0, len(feed.Products))
	for i := range feed.Products {
		p, err := feed.Products[i].toProduct()
		if err != nil {
			// A malformed entry should not block the rest of the feed.
			continue
		}
		products = append(products, p)
	}
	if len(products) == 0 && len(feed.Products) > 0 {
		return nil, fmt.Errorf("catalog has %d entries, none usable", len(feed.Products))
	}
	return products, nil
}

func (x *xmlProduct) toProduct() (product.Product, error) {
	p, err := product.New(
		strings.TrimSpace(x.ID),
		strings.TrimSpace(x.Name),
		strings.TrimSpace(x.Category),
		strings.TrimSpace(x.Brand),
	)
	if err != nil {
		return product.Product{}, err
	}

	if price, ok := parseDecimal(x.Price); ok {
		p = p.WithPrice(price)
	}
	if unit := strings.TrimSpace(x.Weight.Unit); unit != "" {
		if value, ok := parseDecimal(x.Weight.Value); ok {
			p = p.WithWeight(value, unit)
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(x.PackageSize)); err == nil && n > 0 {
		p = p.WithPackageSize(n)
	}
	p = p.WithText(strings.TrimSpace(x.Keywords), strings.TrimSpace(x.Description))
	if u := strings.TrimSpace(x.ImageURL); u != "" {
		p = p.WithImageURL(u)
	}
	return p, nil
}

// parseDecimal accepts both "12.5" and the feed's "12,5" comma form.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
