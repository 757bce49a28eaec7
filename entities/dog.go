package entities

import (
	"github.com/google/uuid"
)

type DogProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Name          string    `json:"name"`
	Breed         string    `json:"breed"`
	AgeYears      float64   `json:"age_years"`
	WeightKg      float64   `json:"weight_kg"`
	ActivityLevel string    `json:"activity_level"` // low, moderate, high
	Neutered      bool      `json:"neutered"`

	DietPreference string `json:"diet_preference"`

	// Comma separated lists, split at the service boundary.
	Allergies        string `gorm:"type:text" json:"allergies"`
	HealthConditions string `gorm:"type:text" json:"health_conditions"`

	Owner          *User                  `gorm:"foreignKey:OwnerID"`
	NutritionPlans []*NutritionPlan       `gorm:"foreignKey:DogID"`
	ScheduleItems  []*FeedingScheduleItem `gorm:"foreignKey:DogID"`
	Reminders      []*FeedingReminder     `gorm:"foreignKey:DogID"`
	Timestamp
}

type FeedingScheduleItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DogID       uuid.UUID `json:"dog_id"`
	MealNumber  int       `json:"meal_number"` // 1..3
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	PortionG    int       `json:"portion_g"`

	Dog     *DogProfile `gorm:"foreignKey:DogID"`
	Product *Product    `gorm:"foreignKey:ProductID"`
	Timestamp
}

type FeedingReminder struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DogID   uuid.UUID `json:"dog_id"`
	Label   string    `json:"label"` // Morning, Afternoon, Evening
	Time    string    `json:"time"`  // HH:MM
	Enabled bool      `json:"enabled"`

	Dog *DogProfile `gorm:"foreignKey:DogID"`
	Timestamp
}
