package entities

import (
	"github.com/google/uuid"
)

type NutritionPlan struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DogID uuid.UUID `json:"dog_id"`

	TargetCaloriesPerDay float64 `json:"target_calories_per_day"`
	TargetProteinG       float64 `json:"target_protein_g"`
	TargetFatG           float64 `json:"target_fat_g"`

	Dog *DogProfile `gorm:"foreignKey:DogID"`
	Timestamp
}
