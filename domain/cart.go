package domain

import "errors"

var (
	MessageSuccessGetCart    = "cart retrieved successfully"
	MessageSuccessAddToCart  = "product added to cart"
	MessageSuccessUpdateCart = "cart updated successfully"
	MessageSuccessClearCart  = "cart cleared successfully"

	MessageFailedGetCart    = "failed to retrieve cart"
	MessageFailedAddToCart  = "failed to add product to cart"
	MessageFailedUpdateCart = "failed to update cart"

	ErrCartLineNotFound = errors.New("product not in cart")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

type (
	AddToCartRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	}

	UpdateCartLineRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity"`
	}

	CartLineResponse struct {
		ProductID   string  `json:"product_id"`
		ProductName string  `json:"product_name"`
		SellerEmail string  `json:"seller_email,omitempty"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
		LineTotal   float64 `json:"line_total"`
	}

	CartResponse struct {
		Lines []CartLineResponse `json:"lines"`
		Total float64            `json:"total"`
	}
)
