package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"` // customer, seller, admin
	Address    string    `json:"address,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	IsVerified bool      `json:"is_verified"`

	Dogs     []*DogProfile `gorm:"foreignKey:OwnerID"`
	Orders   []*Order      `gorm:"foreignKey:CustomerID"`
	Products []*Product    `gorm:"foreignKey:SellerID"`
	Timestamp
}
