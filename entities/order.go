package entities

import (
	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	TotalPrice      float64   `json:"total_price"`
	Commission      float64   `json:"commission"`
	Status          string    `json:"status"` // PENDING, CONFIRMED, SHIPPED, DELIVERED, CANCELLED
	ShippingAddress string    `gorm:"type:text" json:"shipping_address"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	PaymentURL      string    `json:"payment_url,omitempty"`
	Paid            bool      `json:"paid"`

	Customer *User        `gorm:"foreignKey:CustomerID"`
	Items    []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItem snapshots the product at order time; later edits to the
// product never change what the customer agreed to pay.
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	SellerID    uuid.UUID `json:"seller_id"`
	SellerEmail string    `json:"seller_email"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`

	Order   *Order   `gorm:"foreignKey:OrderID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
