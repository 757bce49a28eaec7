package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawplate/entities"
)

func TestMatchProductsAllergyExclusion(t *testing.T) {
	products := []entities.Product{
		{Name: "Chicken Crunch", Ingredients: "Chicken, Rice", CaloriesPer100g: 400},
		{Name: "Salmon Feast", Ingredients: "Salmon, Peas", CaloriesPer100g: 380},
	}
	dog := DogTraits{Allergies: []string{"chicken"}}

	got := MatchProducts(dog, 1000, products)
	require.Len(t, got, 1)
	assert.Equal(t, "Salmon Feast", got[0].Product.Name)
	assert.Equal(t, 263, got[0].DailyPortionG) // 1000/380*100 = 263.16
}

func TestMatchProductsDietPreference(t *testing.T) {
	products := []entities.Product{
		{Name: "Raw Beef Mix", DietType: "Raw"},
		{Name: "Dry Turkey", DietType: "dry"},
		{Name: "Universal Topper", DietType: ""},
	}
	dog := DogTraits{DietPreference: "raw"}

	got := MatchProducts(dog, 0, products)
	require.Len(t, got, 2)
	assert.Equal(t, "Raw Beef Mix", got[0].Product.Name)
	assert.Equal(t, "Universal Topper", got[1].Product.Name)
}

func TestMatchProductsHealthConditionExclusion(t *testing.T) {
	products := []entities.Product{
		{Name: "Liver Treats", Ingredients: "Liver, Oats"},
		{Name: "Plain Kibble", Ingredients: "Turkey, Rice"},
	}
	dog := DogTraits{HealthConditions: []string{"Liver"}}

	got := MatchProducts(dog, 0, products)
	require.Len(t, got, 1)
	assert.Equal(t, "Plain Kibble", got[0].Product.Name)
}

func TestMatchProductsMissingDensityPortionZero(t *testing.T) {
	products := []entities.Product{{Name: "Mystery Meal", CaloriesPer100g: 0}}

	got := MatchProducts(DogTraits{}, 900, products)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].DailyPortionG)
}

func TestMatchIngredients(t *testing.T) {
	ingredients := []entities.Ingredient{
		{Name: "Chicken Breast", ForbiddenAllergies: "chicken", CaloriesPer100g: 165},
		{Name: "Pumpkin", CaloriesPer100g: 26},
		{Name: "Fatty Broth", UnsuitableHealthConditions: "pancreatitis", CaloriesPer100g: 90},
	}
	dog := DogTraits{
		Allergies:        []string{"Chicken"},
		HealthConditions: []string{"pancreatitis"},
	}

	got := MatchIngredients(dog, 520, ingredients)
	require.Len(t, got, 1)
	assert.Equal(t, "Pumpkin", got[0].Ingredient.Name)
	assert.Equal(t, 2000, got[0].DailyPortionG)
}
