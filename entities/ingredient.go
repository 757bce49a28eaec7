package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `json:"name"`

	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`

	// Comma separated lists, split at the service boundary.
	ForbiddenAllergies         string `gorm:"type:text" json:"forbidden_allergies"`
	UnsuitableHealthConditions string `gorm:"type:text" json:"unsuitable_health_conditions"`

	Timestamp
}
