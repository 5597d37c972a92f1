// Package catalog implements the product filtering and recommendation
// engine: keyword search, category and facet filtering, price-range
// bucketing, and same-category / similar-price suggestion selection.
// Everything here is a pure single pass over an in-memory slice.
package catalog

import (
	"sort"
	"strings"

	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/models"
)

// Criteria carries the optional filter dimensions. Zero values mean "no
// filter" for that dimension; supplied dimensions combine with logical AND.
type Criteria struct {
	// Query is matched case-insensitively as a substring of name, brand,
	// category and description. A query that exactly names a category is
	// treated as a category filter instead of a text match.
	Query    string
	Category string

	// Facet selections. An empty slice leaves that facet unconstrained.
	Brands     []string
	Processors []string
	Cameras    []string
	Batteries  []string
	Storages   []string

	// PriceRanges holds bucket keys; a product passes if its price falls in
	// any selected bucket.
	PriceRanges []string

	// MinPrice/MaxPrice bound the price inclusively. MaxPrice <= 0 means
	// unbounded above, so the pair {0, 0} is a no-op.
	MinPrice int
	MaxPrice int
}

type priceBucket struct {
	low  int // inclusive
	high int // exclusive; <= 0 means unbounded
}

// priceBuckets are the fixed half-open price intervals. Boundaries belong to
// the higher bucket.
var priceBuckets = map[string]priceBucket{
	"below_20k":  {0, 20000},
	"20k_50k":    {20000, 50000},
	"50k_100k":   {50000, 100000},
	"above_100k": {100000, 0},
}

// PriceBucketKeys lists the bucket keys in ascending price order, for
// rendering the filter form.
var PriceBucketKeys = []string{"below_20k", "20k_50k", "50k_100k", "above_100k"}

// facet names the category-scoped filter dimensions.
type facet int

const (
	facetBrand facet = iota
	facetProcessor
	facetCamera
	facetBattery
	facetStorage
)

// facetScope maps each facet to the categories it constrains. A nil entry
// means the facet applies to every category. Products outside a facet's
// scope pass that facet untouched rather than being excluded.
var facetScope = map[facet][]string{
	facetBrand:     nil,
	facetProcessor: {"mobile", "laptop"},
	facetCamera:    {"mobile"},
	facetBattery:   {"mobile"},
	facetStorage:   {"mobile", "laptop"},
}

// Filter returns the products matching every supplied criterion, preserving
// input order. The input slice is never mutated; empty criteria return the
// full collection.
func Filter(products []models.Product, c Criteria) []models.Product {
	query := strings.ToLower(strings.TrimSpace(c.Query))
	category := strings.ToLower(strings.TrimSpace(c.Category))

	// Disambiguation: a free-text query naming a category is a category
	// filter, not a substring match.
	if query != "" && models.KnownCategory(query) {
		category = query
		query = ""
	}

	result := make([]models.Product, 0, len(products))
	for i := range products {
		p := &products[i]
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if !matchesFacet(p, facetBrand, c.Brands, p.Brand) {
			continue
		}
		if !matchesFacet(p, facetProcessor, c.Processors, p.Processor) {
			continue
		}
		if !matchesFacet(p, facetCamera, c.Cameras, p.Camera) {
			continue
		}
		if !matchesFacet(p, facetBattery, c.Batteries, p.Battery) {
			continue
		}
		if !matchesFacet(p, facetStorage, c.Storages, p.Storage) {
			continue
		}
		if len(c.PriceRanges) > 0 && !inAnyBucket(p.Price, c.PriceRanges) {
			continue
		}
		if p.Price < c.MinPrice {
			continue
		}
		if c.MaxPrice > 0 && p.Price > c.MaxPrice {
			continue
		}
		result = append(result, *p)
	}
	return result
}

func matchesQuery(p *models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

// matchesFacet applies one facet selection to a product. Empty selections
// never constrain; products whose category is outside the facet's scope
// always pass.
func matchesFacet(p *models.Product, f facet, selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	if scope := facetScope[f]; scope != nil && !containsFold(scope, p.Category) {
		return true
	}
	return containsFold(selected, value)
}

func containsFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

func inAnyBucket(price int, keys []string) bool {
	for _, key := range keys {
		b, ok := priceBuckets[key]
		if !ok {
			// Unknown bucket keys never match.
			continue
		}
		if price >= b.low && (b.high <= 0 || price < b.high) {
			return true
		}
	}
	return false
}

// SortByRating returns a copy of products ordered by rating descending.
// This is an optional presentation stage, separate from the filter predicate;
// equal ratings keep their collection order.
func SortByRating(products []models.Product) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Rating > sorted[b].Rating
	})
	return sorted
}

// TopRatedByCategory groups products by category and keeps the limit
// highest-rated of each, for the home page.
func TopRatedByCategory(products []models.Product, limit int) map[string][]models.Product {
	grouped := make(map[string][]models.Product, len(models.Categories))
	for _, category := range models.Categories {
		byCategory := Filter(products, Criteria{Category: category})
		byCategory = SortByRating(byCategory)
		if len(byCategory) > limit {
			byCategory = byCategory[:limit]
		}
		grouped[category] = byCategory
	}
	return grouped
}
