package catalog

import (
	"strings"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<products>
  <product id="p1">
    <name>Молоко Простоквашино 3,2%</name>
    <category>Молочные продукты</category>
    <brand>Простоквашино</brand>
    <weight unit="l">0,93</weight>
    <price>89,90</price>
    <keywords>молоко питьевое</keywords>
    <image_url>https://cdn.example.com/p1.jpg</image_url>
  </product>
  <product id="p2">
    <name>Яйца куриные С1</name>
    <category>Яйца</category>
    <package_size>10</package_size>
    <price>120</price>
  </product>
  <product id="">
    <name>Безымянный</name>
  </product>
</products>`

func TestParse(t *testing.T) {
	products, err := Parse(strings.NewReader(sampleFeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2 (entry without id dropped)", len(products))
	}

	p := products[0]
	if p.ID() != "p1" {
		t.Errorf("id = %q, want p1", p.ID())
	}
	if p.Name() != "Молоко Простоквашино 3,2%" {
		t.Errorf("unexpected name %q", p.Name())
	}
	if p.Brand() != "Простоквашино" {
		t.Errorf("unexpected brand %q", p.Brand())
	}
	if p.Price() != 89.90 {
		t.Errorf("price = %g, want 89.90 (comma decimal)", p.Price())
	}
	if !p.HasWeight() || p.WeightUnit() != "l" || p.WeightValue() != 0.93 {
		t.Errorf("weight = %g %q, want 0.93 l", p.WeightValue(), p.WeightUnit())
	}
	if p.Keywords() != "молоко питьевое" {
		t.Errorf("unexpected keywords %q", p.Keywords())
	}
	if p.ImageURL() != "https://cdn.example.com/p1.jpg" {
		t.Errorf("unexpected image url %q", p.ImageURL())
	}

	p2 := products[1]
	if p2.PackageSize() != 10 {
		t.Errorf("package size = %d, want 10", p2.PackageSize())
	}
	if p2.HasWeight() {
		t.Error("p2 should have no weight")
	}
	if p2.Price() != 120 {
		t.Errorf("price = %g, want 120", p2.Price())
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse(strings.NewReader("not xml at all")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestParse_AllEntriesUnusable(t *testing.T) {
	feed := `<products><product id=""><name></name></product></products>`
	if _, err := Parse(strings.NewReader(feed)); err == nil {
		t.Fatal("expected error when no entry is usable")
	}
}

func TestParse_EmptyFeed(t *testing.T) {
	products, err := Parse(strings.NewReader(`<products></products>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("got %d products, want 0", len(products))
	}
}
