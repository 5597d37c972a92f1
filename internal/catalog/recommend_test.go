package catalog

import (
	"reflect"
	"testing"

	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/models"
)

func TestRecommend_SameCategoryFillsLimit(t *testing.T) {
	products := []models.Product{
		{ID: 1, Category: "mobile", Price: 10000},
		{ID: 2, Category: "mobile", Price: 12000},
		{ID: 3, Category: "mobile", Price: 14000},
		{ID: 4, Category: "mobile", Price: 16000},
		{ID: 5, Category: "mobile", Price: 18000},
	}
	got := Recommend(1, products, 2)
	// With enough siblings the first limit of them win, in collection order.
	if !reflect.DeepEqual(ids(got), []int{2, 3}) {
		t.Fatalf("expected [2 3], got %v", ids(got))
	}
}

func TestRecommend_PriceBandFallback(t *testing.T) {
	products := []models.Product{
		{ID: 1, Category: "mobile", Price: 15000},
		{ID: 2, Category: "mobile", Price: 18000},
		{ID: 3, Category: "laptop", Price: 60000},
	}
	// Only product 2 shares the category; the band [12000, 18000] adds
	// nothing new, so the result is just [2].
	got := Recommend(1, products, 4)
	if !reflect.DeepEqual(ids(got), []int{2}) {
		t.Fatalf("expected [2], got %v", ids(got))
	}
}

func TestRecommend_PriceBandAddsOtherCategories(t *testing.T) {
	products := []models.Product{
		{ID: 1, Category: "mobile", Price: 50000},
		{ID: 2, Category: "mobile", Price: 90000},
		{ID: 3, Category: "laptop", Price: 45000},
		{ID: 4, Category: "tv", Price: 60000},
		{ID: 5, Category: "earphone", Price: 5000},
	}
	// One sibling, then laptop 3 (45000 >= 40000) and tv 4 (60000 <= 60000)
	// fall in the inclusive band around 50000.
	got := Recommend(1, products, 4)
	if !reflect.DeepEqual(ids(got), []int{2, 3, 4}) {
		t.Fatalf("expected [2 3 4], got %v", ids(got))
	}
}

func TestRecommend_ExcludesTargetAndBoundsLength(t *testing.T) {
	products := []models.Product{
		{ID: 1, Category: "mobile", Price: 20000},
		{ID: 2, Category: "mobile", Price: 20000},
		{ID: 3, Category: "mobile", Price: 20000},
		{ID: 4, Category: "mobile", Price: 20000},
		{ID: 5, Category: "mobile", Price: 20000},
		{ID: 6, Category: "mobile", Price: 20000},
	}
	got := Recommend(3, products, 4)
	if len(got) > 4 {
		t.Fatalf("expected at most 4 recommendations, got %d", len(got))
	}
	for i := range got {
		if got[i].ID == 3 {
			t.Fatal("target must never recommend itself")
		}
	}
}

func TestRecommend_NoDuplicatesAcrossTiers(t *testing.T) {
	products := []models.Product{
		{ID: 1, Category: "mobile", Price: 10000},
		{ID: 2, Category: "mobile", Price: 10000}, // sibling AND in band
		{ID: 3, Category: "laptop", Price: 11000},
		{ID: 4, Category: "tv", Price: 9000},
	}
	got := Recommend(1, products, 4)
	seen := make(map[int]bool, len(got))
	for i := range got {
		if seen[got[i].ID] {
			t.Fatalf("duplicate id %d in %v", got[i].ID, ids(got))
		}
		seen[got[i].ID] = true
	}
	if !reflect.DeepEqual(ids(got), []int{2, 3, 4}) {
		t.Fatalf("expected [2 3 4], got %v", ids(got))
	}
}

func TestRecommend_UnknownTargetReturnsEmpty(t *testing.T) {
	got := Recommend(42, fixtureProducts(), 4)
	if len(got) != 0 {
		t.Fatalf("expected empty result for unknown id, got %v", ids(got))
	}
}

func TestRecommend_ZeroLimit(t *testing.T) {
	got := Recommend(1, fixtureProducts(), 0)
	if len(got) != 0 {
		t.Fatalf("expected empty result for zero limit, got %v", ids(got))
	}
}
