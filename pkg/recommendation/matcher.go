package recommendation

import (
	"strings"

	"pawplate/entities"
	"pawplate/internal/utils"
	"pawplate/pkg/nutrition"
)

// DogTraits is the slice of a dog profile the matcher cares about.
type DogTraits struct {
	Allergies        []string
	HealthConditions []string
	DietPreference   string
}

type ProductMatch struct {
	Product       entities.Product
	DailyPortionG int
}

// MatchProducts filters products compatible with the dog and annotates each
// match with the daily gram portion for the given calorie target. A product
// without a usable calorie density gets portion 0 but is still included.
//
// A product is compatible when its diet type is empty or equals the dog's
// preference (case-insensitive) and none of the dog's allergy or
// health-condition terms appear in its ingredient list.
func MatchProducts(dog DogTraits, targetCaloriesPerDay float64, products []entities.Product) []ProductMatch {
	excluded := lowerTerms(append(append([]string{}, dog.Allergies...), dog.HealthConditions...))
	diet := strings.ToLower(strings.TrimSpace(dog.DietPreference))

	matches := make([]ProductMatch, 0, len(products))
	for _, p := range products {
		dietType := strings.ToLower(strings.TrimSpace(p.DietType))
		if diet != "" && dietType != "" && dietType != diet {
			continue
		}

		if hitsAny(utils.SplitCSV(p.Ingredients), excluded) {
			continue
		}

		portion := 0
		if p.CaloriesPer100g > 0 && targetCaloriesPerDay > 0 {
			if g, err := nutrition.DailyPortionGrams(targetCaloriesPerDay, p.CaloriesPer100g); err == nil {
				portion = g
			}
		}

		matches = append(matches, ProductMatch{Product: p, DailyPortionG: portion})
	}
	return matches
}

type IngredientMatch struct {
	Ingredient    entities.Ingredient
	DailyPortionG int
}

// MatchIngredients applies the same compatibility rules to raw ingredients,
// using their declared allergen and unsuitable-condition lists.
func MatchIngredients(dog DogTraits, targetCaloriesPerDay float64, ingredients []entities.Ingredient) []IngredientMatch {
	allergies := lowerTerms(dog.Allergies)
	conditions := lowerTerms(dog.HealthConditions)

	matches := make([]IngredientMatch, 0, len(ingredients))
	for _, ing := range ingredients {
		if hitsAny(append(utils.SplitCSV(ing.ForbiddenAllergies), ing.Name), allergies) {
			continue
		}
		if hitsAny(utils.SplitCSV(ing.UnsuitableHealthConditions), conditions) {
			continue
		}

		portion := 0
		if ing.CaloriesPer100g > 0 && targetCaloriesPerDay > 0 {
			if g, err := nutrition.DailyPortionGrams(targetCaloriesPerDay, ing.CaloriesPer100g); err == nil {
				portion = g
			}
		}

		matches = append(matches, IngredientMatch{Ingredient: ing, DailyPortionG: portion})
	}
	return matches
}

func lowerTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func hitsAny(items []string, loweredTerms []string) bool {
	for _, it := range items {
		it = strings.ToLower(strings.TrimSpace(it))
		for _, term := range loweredTerms {
			if it == term {
				return true
			}
		}
	}
	return false
}
