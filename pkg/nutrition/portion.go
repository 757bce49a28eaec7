package nutrition

import (
	"math"

	"pawplate/domain"
)

// DefaultMealCount is the fixed number of meals per day in a feeding schedule.
const DefaultMealCount = 3

// DailyPortionGrams converts a daily calorie target into grams of an item
// with the given calorie density: (target / caloriesPer100g) * 100.
func DailyPortionGrams(targetCalories, caloriesPer100g float64) (int, error) {
	if targetCalories <= 0 {
		return 0, domain.ErrInvalidCalorieTarget
	}
	if caloriesPer100g <= 0 {
		return 0, domain.ErrInvalidDensity
	}
	return int(math.Round(targetCalories / caloriesPer100g * 100)), nil
}

// MealPortionGrams splits the daily portion evenly across mealCount meals.
func MealPortionGrams(targetCalories, caloriesPer100g float64, mealCount int) (int, error) {
	if mealCount <= 0 {
		return 0, domain.ErrInvalidMealCount
	}
	if targetCalories <= 0 {
		return 0, domain.ErrInvalidCalorieTarget
	}
	if caloriesPer100g <= 0 {
		return 0, domain.ErrInvalidDensity
	}
	daily := targetCalories / caloriesPer100g * 100
	return int(math.Round(daily / float64(mealCount))), nil
}
