package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddDog           = "dog profile added successfully"
	MessageSuccessUpdateDog        = "dog profile updated successfully"
	MessageSuccessDeleteDog        = "dog profile deleted successfully"
	MessageSuccessGetDogs          = "dog profiles retrieved successfully"
	MessageSuccessAddScheduleEntry = "feeding schedule entry added successfully"
	MessageSuccessGetSchedule      = "feeding schedule retrieved successfully"
	MessageSuccessGetShoppingList  = "weekly shopping list retrieved successfully"
	MessageSuccessSaveReminders    = "feeding reminders saved successfully"
	MessageSuccessGetReminders     = "feeding reminders retrieved successfully"

	MessageFailedAddDog           = "failed to add dog profile"
	MessageFailedUpdateDog        = "failed to update dog profile"
	MessageFailedDeleteDog        = "failed to delete dog profile"
	MessageFailedGetDogs          = "failed to retrieve dog profiles"
	MessageFailedAddScheduleEntry = "failed to add feeding schedule entry"
	MessageFailedGetSchedule      = "failed to retrieve feeding schedule"
	MessageFailedGetShoppingList  = "failed to retrieve weekly shopping list"
	MessageFailedSaveReminders    = "failed to save feeding reminders"

	ErrDogNotFound         = errors.New("dog profile not found")
	ErrDogNotOwned         = errors.New("dog profile belongs to another user")
	ErrInvalidWeight       = errors.New("weight must be positive")
	ErrInvalidAge          = errors.New("age must not be negative")
	ErrInvalidReminderTime = errors.New("reminder time must be HH:MM")
)

type (
	AddDogRequest struct {
		Name             string   `json:"name" validate:"required"`
		Breed            string   `json:"breed" validate:"required"`
		AgeYears         float64  `json:"age_years" validate:"min=0"`
		WeightKg         float64  `json:"weight_kg" validate:"required,gt=0"`
		ActivityLevel    string   `json:"activity_level" validate:"required,oneof=low moderate high"`
		Neutered         bool     `json:"neutered"`
		DietPreference   string   `json:"diet_preference"`
		Allergies        []string `json:"allergies"`
		HealthConditions []string `json:"health_conditions"`
	}

	UpdateDogRequest struct {
		Name             string   `json:"name" validate:"omitempty"`
		Breed            string   `json:"breed" validate:"omitempty"`
		AgeYears         *float64 `json:"age_years" validate:"omitempty,min=0"`
		WeightKg         *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		ActivityLevel    string   `json:"activity_level" validate:"omitempty,oneof=low moderate high"`
		Neutered         *bool    `json:"neutered"`
		DietPreference   string   `json:"diet_preference" validate:"omitempty"`
		Allergies        []string `json:"allergies"`
		HealthConditions []string `json:"health_conditions"`
	}

	DogResponse struct {
		ID               string    `json:"id"`
		OwnerID          string    `json:"owner_id"`
		Name             string    `json:"name"`
		Breed            string    `json:"breed"`
		AgeYears         float64   `json:"age_years"`
		WeightKg         float64   `json:"weight_kg"`
		ActivityLevel    string    `json:"activity_level"`
		Neutered         bool      `json:"neutered"`
		DietPreference   string    `json:"diet_preference"`
		Allergies        []string  `json:"allergies"`
		HealthConditions []string  `json:"health_conditions"`
		CreatedAt        time.Time `json:"created_at"`
	}

	AddScheduleEntryRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
	}

	ScheduleItemResponse struct {
		ProductID   string `json:"product_id"`
		ProductName string `json:"product_name"`
		PortionG    int    `json:"portion_g"`
	}

	ScheduleMealResponse struct {
		MealNumber int                    `json:"meal_number"`
		Items      []ScheduleItemResponse `json:"items"`
	}

	ShoppingListItemResponse struct {
		ProductID        string  `json:"product_id"`
		Name             string  `json:"name"`
		WeeklyQuantityG  float64 `json:"weekly_quantity_g"`
		WeeklyQuantityKg float64 `json:"weekly_quantity_kg"`
	}

	ReminderRequest struct {
		Label   string `json:"label" validate:"required,oneof=Morning Afternoon Evening"`
		Time    string `json:"time" validate:"required"`
		Enabled bool   `json:"enabled"`
	}

	SaveRemindersRequest struct {
		Reminders []ReminderRequest `json:"reminders" validate:"required,dive"`
	}

	ReminderResponse struct {
		Label    string  `json:"label"`
		Time     string  `json:"time"`
		Enabled  bool    `json:"enabled"`
		Calories float64 `json:"calories"`
		ProteinG float64 `json:"protein_g"`
		FatG     float64 `json:"fat_g"`
	}
)
