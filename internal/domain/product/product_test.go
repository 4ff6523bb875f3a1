package product

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		prod    string
		wantErr bool
	}{
		{name: "valid", id: "p1", prod: "Молоко 3.2%"},
		{name: "missing id", id: "", prod: "Молоко", wantErr: true},
		{name: "missing name", id: "p1", prod: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(tc.id, tc.prod, "milk", "brand")
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if p.ID() != tc.id || p.Name() != tc.prod {
				t.Errorf("got (%q, %q), want (%q, %q)", p.ID(), p.Name(), tc.id, tc.prod)
			}
		})
	}
}

func TestWithCopiesDoNotMutateReceiver(t *testing.T) {
	base, err := New("p1", "Молоко", "milk", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	enriched := base.WithPrice(89.9).WithWeight(0.93, "l").WithPackageSize(6)
	if base.Price() != 0 || base.HasWeight() || base.PackageSize() != 0 {
		t.Error("With* must not mutate the receiver")
	}
	if enriched.Price() != 89.9 || enriched.WeightUnit() != "l" || enriched.PackageSize() != 6 {
		t.Error("With* chain lost a field")
	}
}

func TestGettersOnUnaddressableValue(t *testing.T) {
	// Getters must be callable on an rvalue, e.g. straight off a
	// constructor chain, without binding to a variable first.
	byID := map[string]Product{}
	p, err := New("p1", "Молоко", "milk", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	byID["p1"] = p.WithWeight(1, "l")

	if byID["p1"].WeightUnit() != "l" {
		t.Errorf("weight unit = %q, want l", byID["p1"].WeightUnit())
	}
	if got := p.WithPrice(50).Price(); got != 50 {
		t.Errorf("chained price = %v, want 50", got)
	}
}
