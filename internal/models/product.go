package models

import "strings"

// FacetNA marks a category-scoped attribute that does not apply to, or was
// not provided for, a product. Filters rely on every product carrying a value
// for every facet key, so loads backfill this sentinel.
const FacetNA = "N/A"

// PlaceholderImage is used when a product was added without an image URL.
const PlaceholderImage = "https://via.placeholder.com/300x200?text=New+Product"

// Categories is the fixed category set, lowercase canonical form.
var Categories = []string{"mobile", "laptop", "tv", "earphone"}

// Product represents a catalog entry as stored in the products file.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Price       int     `json:"price"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Storage     string  `json:"storage,omitempty"`
	Processor   string  `json:"processor,omitempty"`
	Camera      string  `json:"camera,omitempty"`
	Battery     string  `json:"battery,omitempty"`
}

// NewProductInput is the creation form shape. Price and rating are typed so
// non-numeric input fails binding instead of being coerced to zero. Price is
// a pointer so the zero value stays distinguishable from an absent field: a
// free product is valid, a missing price is not.
type NewProductInput struct {
	Name        string   `form:"name" json:"name" binding:"required"`
	Category    string   `form:"category" json:"category" binding:"required"`
	Brand       string   `form:"brand" json:"brand" binding:"required"`
	Price       *int     `form:"price" json:"price" binding:"required,gte=0"`
	Rating      *float64 `form:"rating" json:"rating" binding:"omitempty,gte=0,lte=5"`
	Description string   `form:"description" json:"description"`
	Image       string   `form:"image" json:"image"`
	Storage     string   `form:"storage" json:"storage"`
	Processor   string   `form:"processor" json:"processor"`
	Camera      string   `form:"camera" json:"camera"`
	Battery     string   `form:"battery" json:"battery"`
}

// DefaultRating applies when the form omits the rating field.
const DefaultRating = 4.0

// ToProduct builds an unsaved Product from validated form input. The store
// assigns the id.
func (in *NewProductInput) ToProduct() Product {
	rating := DefaultRating
	if in.Rating != nil {
		rating = *in.Rating
	}
	p := Product{
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Brand:       strings.TrimSpace(in.Brand),
		Price:       *in.Price,
		Rating:      rating,
		Description: in.Description,
		Image:       in.Image,
		Storage:     in.Storage,
		Processor:   in.Processor,
		Camera:      in.Camera,
		Battery:     in.Battery,
	}
	p.Normalize()
	return p
}

// Normalize fills optional fields so downstream code never has to test for
// their presence: lowercase category, placeholder image, facet sentinels.
// It is run on every record at load time and on every new product before save.
func (p *Product) Normalize() {
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))
	if p.Image == "" {
		p.Image = PlaceholderImage
	}
	if p.Storage == "" {
		p.Storage = FacetNA
	}
	if p.Processor == "" {
		p.Processor = FacetNA
	}
	if p.Camera == "" {
		p.Camera = FacetNA
	}
	if p.Battery == "" {
		p.Battery = FacetNA
	}
}

// KnownCategory reports whether name (any case) is one of the fixed
// category values.
func KnownCategory(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
