package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Available   bool      `json:"available"`
	ImageURL    string    `json:"image_url,omitempty"`

	// Nutrition facts per 100g. Zero means not provided.
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`

	DietType string `json:"diet_type"` // dry, raw, home-cooked; empty = any

	// Comma separated lists, split at the service boundary.
	Ingredients             string `gorm:"type:text" json:"ingredients"`
	ForbiddenAllergies      string `gorm:"type:text" json:"forbidden_allergies"`
	AllowedHealthConditions string `gorm:"type:text" json:"allowed_health_conditions"`

	Seller *User `gorm:"foreignKey:SellerID"`
	Timestamp
}
