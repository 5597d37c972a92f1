package models

import "testing"

func TestNormalize_BackfillsDefaults(t *testing.T) {
	p := Product{ID: 1, Name: "Bravia", Category: " TV ", Brand: "Sony", Price: 120000}
	p.Normalize()

	if p.Category != "tv" {
		t.Errorf("expected lowercase category, got %q", p.Category)
	}
	if p.Image != PlaceholderImage {
		t.Errorf("expected placeholder image, got %q", p.Image)
	}
	for name, value := range map[string]string{
		"storage":   p.Storage,
		"processor": p.Processor,
		"camera":    p.Camera,
		"battery":   p.Battery,
	} {
		if value != FacetNA {
			t.Errorf("expected %s sentinel %q, got %q", name, FacetNA, value)
		}
	}
}

func TestNormalize_KeepsProvidedValues(t *testing.T) {
	p := Product{Category: "mobile", Camera: "50MP", Image: "http://x/y.png"}
	p.Normalize()

	if p.Camera != "50MP" {
		t.Errorf("camera overwritten: %q", p.Camera)
	}
	if p.Image != "http://x/y.png" {
		t.Errorf("image overwritten: %q", p.Image)
	}
}

func intp(v int) *int { return &v }

func TestToProduct_DefaultRating(t *testing.T) {
	in := NewProductInput{Name: "Buds2", Category: "Earphone", Brand: "Samsung", Price: intp(9000)}
	p := in.ToProduct()

	if p.Rating != DefaultRating {
		t.Errorf("expected default rating %v, got %v", DefaultRating, p.Rating)
	}
	if p.Category != "earphone" {
		t.Errorf("expected normalized category, got %q", p.Category)
	}
}

func TestToProduct_ZeroPrice(t *testing.T) {
	in := NewProductInput{Name: "Freebie", Category: "earphone", Brand: "Samsung", Price: intp(0)}
	p := in.ToProduct()

	if p.Price != 0 {
		t.Errorf("expected zero price to survive, got %d", p.Price)
	}
}

func TestKnownCategory(t *testing.T) {
	for _, name := range []string{"mobile", "Laptop", " TV ", "earphone"} {
		if !KnownCategory(name) {
			t.Errorf("expected %q to be a known category", name)
		}
	}
	if KnownCategory("kitchen") {
		t.Error("kitchen is not a category")
	}
}
