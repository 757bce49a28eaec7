package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGeneratePlan = "nutrition plan generated successfully"
	MessageSuccessSavePlan     = "nutrition plan saved successfully"
	MessageSuccessGetPlans     = "nutrition plans retrieved successfully"
	MessageSuccessDeletePlan   = "nutrition plan deleted successfully"

	MessageFailedGeneratePlan = "failed to generate nutrition plan"
	MessageFailedSavePlan     = "failed to save nutrition plan"
	MessageFailedGetPlans     = "failed to retrieve nutrition plans"
	MessageFailedDeletePlan   = "failed to delete nutrition plan"

	ErrPlanNotFound         = errors.New("nutrition plan not found")
	ErrNoCurrentPlan        = errors.New("dog has no nutrition plan yet")
	ErrInvalidCalorieTarget = errors.New("daily calorie target must be positive")
	ErrInvalidDensity       = errors.New("calorie density per 100g must be positive")
	ErrInvalidMealCount     = errors.New("meal count must be positive")
	ErrPredictionService    = errors.New("nutrition prediction service unavailable")
)

type (
	GeneratePlanRequest struct {
		Breed            string   `json:"breed" validate:"required"`
		AgeYears         float64  `json:"age_years" validate:"min=0"`
		WeightKg         float64  `json:"weight_kg" validate:"required,gt=0"`
		ActivityLevel    string   `json:"activity_level" validate:"required,oneof=low moderate high"`
		Neutered         bool     `json:"neutered"`
		HealthConditions []string `json:"health_conditions"`
		Allergies        []string `json:"allergies"`
		DietPreference   string   `json:"diet_preference"`
	}

	SavePlanRequest struct {
		TargetCaloriesPerDay float64 `json:"target_calories_per_day" validate:"required,gt=0"`
		TargetProteinG       float64 `json:"target_protein_g" validate:"min=0"`
		TargetFatG           float64 `json:"target_fat_g" validate:"min=0"`
	}

	NutritionPlanResponse struct {
		ID                   string    `json:"id"`
		DogID                string    `json:"dog_id,omitempty"`
		TargetCaloriesPerDay float64   `json:"target_calories_per_day"`
		TargetProteinG       float64   `json:"target_protein_g"`
		TargetFatG           float64   `json:"target_fat_g"`
		CreatedAt            time.Time `json:"created_at"`
	}
)
