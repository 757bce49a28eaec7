package dog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawplate/entities"
)

func TestGroupScheduleKeepsEmptyMeals(t *testing.T) {
	productID := uuid.New()
	items := []entities.FeedingScheduleItem{
		{MealNumber: 1, ProductID: productID, ProductName: "Salmon Feast", PortionG: 120},
		{MealNumber: 3, ProductID: productID, ProductName: "Salmon Feast", PortionG: 120},
	}

	meals := GroupSchedule(items)
	require.Len(t, meals, 3)
	assert.Len(t, meals[0].Items, 1)
	assert.Empty(t, meals[1].Items)
	assert.Len(t, meals[2].Items, 1)
	assert.Equal(t, 2, meals[1].MealNumber)
}

func TestWeeklyShoppingListAggregates(t *testing.T) {
	salmon := uuid.New()
	turkey := uuid.New()
	items := []entities.FeedingScheduleItem{
		{MealNumber: 1, ProductID: salmon, ProductName: "Salmon Feast", PortionG: 111},
		{MealNumber: 2, ProductID: salmon, ProductName: "Salmon Feast", PortionG: 111},
		{MealNumber: 3, ProductID: salmon, ProductName: "Salmon Feast", PortionG: 111},
		{MealNumber: 1, ProductID: turkey, ProductName: "Turkey Light", PortionG: 90},
	}

	list := WeeklyShoppingList(items)
	require.Len(t, list, 2)

	assert.Equal(t, "Salmon Feast", list[0].Name)
	assert.Equal(t, 2331.0, list[0].WeeklyQuantityG) // 333 g/day * 7
	assert.InDelta(t, 2.331, list[0].WeeklyQuantityKg, 1e-9)

	assert.Equal(t, "Turkey Light", list[1].Name)
	assert.Equal(t, 630.0, list[1].WeeklyQuantityG)
}

func TestWeeklyShoppingListEmpty(t *testing.T) {
	assert.Empty(t, WeeklyShoppingList(nil))
}
