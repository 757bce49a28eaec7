package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPlaceOrder   = "order placed successfully"
	MessageSuccessGetOrders    = "orders retrieved successfully"
	MessageSuccessUpdateStatus = "order status updated successfully"

	MessageFailedPlaceOrder   = "failed to place order"
	MessageFailedGetOrders    = "failed to retrieve orders"
	MessageFailedUpdateStatus = "failed to update order status"

	ErrOrderNotFound          = errors.New("order not found")
	ErrEmptyOrder             = errors.New("order has no items")
	ErrShippingAddressMissing = errors.New("shipping address is required")
	ErrInsufficientStock      = errors.New("insufficient stock for product")
	ErrProductUnavailable     = errors.New("product is not available")
	ErrInvalidStatus          = errors.New("unknown order status")
	ErrInvalidTransition      = errors.New("order status transition not allowed")
	ErrNotSellerOrder         = errors.New("order contains no items from this seller")
)

type (
	OrderItemRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	}

	// Items may be omitted; checkout then consumes the caller's
	// server-side cart.
	PlaceOrderRequest struct {
		Items           []OrderItemRequest `json:"items" validate:"omitempty,dive"`
		ShippingAddress string             `json:"shipping_address" validate:"required"`
		Notes           string             `json:"notes"`
	}

	OrderItemResponse struct {
		ProductID   string  `json:"product_id"`
		ProductName string  `json:"product_name"`
		SellerEmail string  `json:"seller_email"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
	}

	OrderResponse struct {
		ID              string              `json:"id"`
		Status          string              `json:"status"`
		TotalPrice      float64             `json:"total_price"`
		Commission      float64             `json:"commission,omitempty"`
		ShippingAddress string              `json:"shipping_address"`
		Notes           string              `json:"notes,omitempty"`
		PaymentURL      string              `json:"payment_url,omitempty"`
		Paid            bool                `json:"paid"`
		Items           []OrderItemResponse `json:"items"`
		CreatedAt       time.Time           `json:"created_at"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	}
)
