package dog

import (
	"pawplate/domain"
	"pawplate/entities"
	"pawplate/pkg/nutrition"
)

const daysPerWeek = 7

// GroupSchedule arranges flat schedule rows into the fixed per-day meals,
// keeping every meal present even when empty.
func GroupSchedule(items []entities.FeedingScheduleItem) []domain.ScheduleMealResponse {
	meals := make([]domain.ScheduleMealResponse, nutrition.DefaultMealCount)
	for i := range meals {
		meals[i] = domain.ScheduleMealResponse{
			MealNumber: i + 1,
			Items:      []domain.ScheduleItemResponse{},
		}
	}

	for _, item := range items {
		if item.MealNumber < 1 || item.MealNumber > nutrition.DefaultMealCount {
			continue
		}
		meal := &meals[item.MealNumber-1]
		meal.Items = append(meal.Items, domain.ScheduleItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			PortionG:    item.PortionG,
		})
	}
	return meals
}

// WeeklyShoppingList sums each product's daily grams across all meals and
// scales to a week. Products keep their first-appearance order.
func WeeklyShoppingList(items []entities.FeedingScheduleItem) []domain.ShoppingListItemResponse {
	type accum struct {
		name   string
		dailyG int
	}

	order := make([]string, 0)
	totals := make(map[string]*accum)

	for _, item := range items {
		key := item.ProductID.String()
		a, ok := totals[key]
		if !ok {
			a = &accum{name: item.ProductName}
			totals[key] = a
			order = append(order, key)
		}
		a.dailyG += item.PortionG
	}

	list := make([]domain.ShoppingListItemResponse, 0, len(order))
	for _, key := range order {
		a := totals[key]
		weeklyG := float64(a.dailyG * daysPerWeek)
		list = append(list, domain.ShoppingListItemResponse{
			ProductID:        key,
			Name:             a.name,
			WeeklyQuantityG:  weeklyG,
			WeeklyQuantityKg: weeklyG / 1000,
		})
	}
	return list
}
