package product

import (
	"sort"
	"strings"

	"pawplate/domain"
	"pawplate/entities"
	"pawplate/internal/utils"
)

type SortKey string

const (
	SortUnset        SortKey = ""
	SortPriceAsc     SortKey = "price_asc"
	SortPriceDesc    SortKey = "price_desc"
	SortProteinDesc  SortKey = "protein_desc"
	SortFatAsc       SortKey = "fat_asc"
	SortCaloriesAsc  SortKey = "calories_asc"
	SortCaloriesDesc SortKey = "calories_desc"
)

type FilterCriteria struct {
	Brand  string
	Search string

	MinProtein  *float64
	MaxProtein  *float64
	MinFat      *float64
	MaxFat      *float64
	MinCalories *float64
	MaxCalories *float64

	// Products listing any of these in their ingredients are dropped.
	ExcludeAllergies []string
	// Products must allow every listed health condition.
	HealthConditions []string

	SortBy SortKey
}

// FilterAndSort returns the matching subset of products, sorted by the
// criteria's sort key. With SortUnset the incoming order is preserved.
func FilterAndSort(products []entities.Product, c FilterCriteria) ([]entities.Product, error) {
	if !validSortKey(c.SortBy) {
		return nil, domain.ErrInvalidSortKey
	}

	matched := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if matches(p, c) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, c.SortBy)
	return matched, nil
}

func matches(p entities.Product, c FilterCriteria) bool {
	if c.Brand != "" && p.Brand != c.Brand {
		return false
	}

	if !inRange(p.ProteinPer100g, c.MinProtein, c.MaxProtein) {
		return false
	}
	if !inRange(p.FatPer100g, c.MinFat, c.MaxFat) {
		return false
	}
	if !inRange(p.CaloriesPer100g, c.MinCalories, c.MaxCalories) {
		return false
	}

	if len(c.ExcludeAllergies) > 0 {
		ingredients := lowerAll(utils.SplitCSV(p.Ingredients))
		for _, a := range c.ExcludeAllergies {
			if containsFold(ingredients, a) {
				return false
			}
		}
	}

	if len(c.HealthConditions) > 0 {
		allowed := lowerAll(utils.SplitCSV(p.AllowedHealthConditions))
		for _, h := range c.HealthConditions {
			if !containsFold(allowed, h) {
				return false
			}
		}
	}

	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	return true
}

func sortProducts(products []entities.Product, key SortKey) {
	var less func(a, b entities.Product) bool

	switch key {
	case SortPriceAsc:
		less = func(a, b entities.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b entities.Product) bool { return a.Price > b.Price }
	case SortProteinDesc:
		less = func(a, b entities.Product) bool { return a.ProteinPer100g > b.ProteinPer100g }
	case SortFatAsc:
		less = func(a, b entities.Product) bool { return a.FatPer100g < b.FatPer100g }
	case SortCaloriesAsc:
		less = func(a, b entities.Product) bool { return a.CaloriesPer100g < b.CaloriesPer100g }
	case SortCaloriesDesc:
		less = func(a, b entities.Product) bool { return a.CaloriesPer100g > b.CaloriesPer100g }
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

func validSortKey(key SortKey) bool {
	switch key {
	case SortUnset, SortPriceAsc, SortPriceDesc, SortProteinDesc,
		SortFatAsc, SortCaloriesAsc, SortCaloriesDesc:
		return true
	}
	return false
}

func inRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = strings.ToLower(it)
	}
	return out
}

func containsFold(lowered []string, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	for _, it := range lowered {
		if it == term {
			return true
		}
	}
	return false
}
