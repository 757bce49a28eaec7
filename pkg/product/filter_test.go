package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawplate/domain"
	"pawplate/entities"
)

func sampleProducts() []entities.Product {
	return []entities.Product{
		{
			Name:            "Salmon Feast",
			Brand:           "PurePaws",
			Description:     "Grain-free kibble",
			Price:           42.5,
			CaloriesPer100g: 380,
			ProteinPer100g:  32,
			FatPer100g:      14,
			Ingredients:     "Salmon, Sweet Potato, Peas",
		},
		{
			Name:            "Chicken Crunch",
			Brand:           "HappyTails",
			Description:     "Classic dry food",
			Price:           19.9,
			CaloriesPer100g: 410,
			ProteinPer100g:  26,
			FatPer100g:      18,
			Ingredients:     "Chicken, Rice, Corn",
		},
		{
			Name:                    "Senior Light",
			Brand:                   "PurePaws",
			Description:             "For dogs with sensitive joints, contains salmon oil",
			Price:                   33.0,
			CaloriesPer100g:         310,
			ProteinPer100g:          22,
			FatPer100g:              9,
			Ingredients:             "Turkey, Barley, Salmon Oil",
			AllowedHealthConditions: "arthritis, obesity",
		},
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	for _, key := range []SortKey{SortUnset, SortPriceAsc, SortCaloriesDesc} {
		got, err := FilterAndSort(sampleProducts(), FilterCriteria{Search: "SALMON", SortBy: key})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, p := range got {
			assert.NotEqual(t, "Chicken Crunch", p.Name)
		}
	}
}

func TestFilterBrandAndRanges(t *testing.T) {
	minProtein := 25.0
	got, err := FilterAndSort(sampleProducts(), FilterCriteria{
		Brand:      "PurePaws",
		MinProtein: &minProtein,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Salmon Feast", got[0].Name)

	maxCalories := 350.0
	got, err = FilterAndSort(sampleProducts(), FilterCriteria{MaxCalories: &maxCalories})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Senior Light", got[0].Name)
}

func TestFilterAllergyExclusionAndHealthInclusion(t *testing.T) {
	got, err := FilterAndSort(sampleProducts(), FilterCriteria{
		ExcludeAllergies: []string{"Chicken"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.NotEqual(t, "Chicken Crunch", p.Name)
	}

	got, err = FilterAndSort(sampleProducts(), FilterCriteria{
		HealthConditions: []string{"Arthritis"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Senior Light", got[0].Name)
}

func TestSortKeys(t *testing.T) {
	got, err := FilterAndSort(sampleProducts(), FilterCriteria{SortBy: SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, "Chicken Crunch", got[0].Name)
	assert.Equal(t, "Salmon Feast", got[2].Name)

	got, err = FilterAndSort(sampleProducts(), FilterCriteria{SortBy: SortProteinDesc})
	require.NoError(t, err)
	assert.Equal(t, "Salmon Feast", got[0].Name)

	got, err = FilterAndSort(sampleProducts(), FilterCriteria{SortBy: SortFatAsc})
	require.NoError(t, err)
	assert.Equal(t, "Senior Light", got[0].Name)

	_, err = FilterAndSort(sampleProducts(), FilterCriteria{SortBy: SortKey("rating")})
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
}

func TestStableOrderWhenUnsorted(t *testing.T) {
	got, err := FilterAndSort(sampleProducts(), FilterCriteria{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Salmon Feast", got[0].Name)
	assert.Equal(t, "Chicken Crunch", got[1].Name)
	assert.Equal(t, "Senior Light", got[2].Name)
}
