package catalog

import "github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/models"

// Recommend returns up to limit products related to the target: products of
// the same category first, then, if those fall short, products priced within
// 20% of the target. The target itself is always excluded, results keep
// collection order, and an unknown target id yields an empty list.
//
// This is a two-tier fallback, not a ranked recommender: no weighting and no
// randomization, ties broken purely by collection order.
func Recommend(targetID int, products []models.Product, limit int) []models.Product {
	if limit <= 0 {
		return []models.Product{}
	}

	var target *models.Product
	for i := range products {
		if products[i].ID == targetID {
			target = &products[i]
			break
		}
	}
	if target == nil {
		return []models.Product{}
	}

	sameCategory := make([]models.Product, 0, limit)
	for i := range products {
		if products[i].ID != targetID && products[i].Category == target.Category {
			sameCategory = append(sameCategory, products[i])
		}
	}
	if len(sameCategory) >= limit {
		return sameCategory[:limit]
	}

	// Not enough siblings: widen to products priced within the inclusive
	// band [price*0.8, price*1.2], skipping anything already picked.
	priceMin := float64(target.Price) * 0.8
	priceMax := float64(target.Price) * 1.2

	picked := make(map[int]bool, len(sameCategory)+1)
	picked[targetID] = true
	for i := range sameCategory {
		picked[sameCategory[i].ID] = true
	}

	recommendations := sameCategory
	for i := range products {
		p := &products[i]
		if picked[p.ID] {
			continue
		}
		if float64(p.Price) >= priceMin && float64(p.Price) <= priceMax {
			recommendations = append(recommendations, *p)
		}
	}
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}
