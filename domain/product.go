package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddProduct    = "product added successfully"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessUploadImage   = "product image uploaded successfully"

	MessageFailedAddProduct    = "failed to add product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedUploadImage   = "failed to upload product image"

	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidStock       = errors.New("stock must not be negative")
	ErrInvalidSortKey     = errors.New("unknown sort key")
	ErrUnauthorizedSeller = errors.New("product belongs to another seller")
)

type (
	AddProductRequest struct {
		Name                    string   `json:"name" validate:"required"`
		Brand                   string   `json:"brand"`
		Description             string   `json:"description"`
		Price                   float64  `json:"price" validate:"required,gt=0"`
		Stock                   int      `json:"stock" validate:"min=0"`
		CaloriesPer100g         float64  `json:"calories_per_100g" validate:"min=0"`
		ProteinPer100g          float64  `json:"protein_per_100g" validate:"min=0"`
		FatPer100g              float64  `json:"fat_per_100g" validate:"min=0"`
		DietType                string   `json:"diet_type"`
		Ingredients             []string `json:"ingredients"`
		ForbiddenAllergies      []string `json:"forbidden_allergies"`
		AllowedHealthConditions []string `json:"allowed_health_conditions"`
		ImageURL                string   `json:"image_url"`
	}

	UpdateProductRequest struct {
		Name                    string   `json:"name" validate:"omitempty"`
		Brand                   string   `json:"brand" validate:"omitempty"`
		Description             string   `json:"description" validate:"omitempty"`
		Price                   float64  `json:"price" validate:"omitempty,gt=0"`
		Stock                   *int     `json:"stock" validate:"omitempty,min=0"`
		Available               *bool    `json:"available"`
		CaloriesPer100g         float64  `json:"calories_per_100g" validate:"omitempty,min=0"`
		ProteinPer100g          float64  `json:"protein_per_100g" validate:"omitempty,min=0"`
		FatPer100g              float64  `json:"fat_per_100g" validate:"omitempty,min=0"`
		DietType                string   `json:"diet_type" validate:"omitempty"`
		Ingredients             []string `json:"ingredients"`
		ForbiddenAllergies      []string `json:"forbidden_allergies"`
		AllowedHealthConditions []string `json:"allowed_health_conditions"`
	}

	UploadProductImageRequest struct {
		ProductID string                `json:"product_id" form:"product_id" validate:"required,uuid"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ProductResponse struct {
		ID                      string    `json:"id"`
		SellerID                string    `json:"seller_id"`
		SellerEmail             string    `json:"seller_email,omitempty"`
		Name                    string    `json:"name"`
		Brand                   string    `json:"brand"`
		Description             string    `json:"description"`
		Price                   float64   `json:"price"`
		Stock                   int       `json:"stock"`
		Available               bool      `json:"available"`
		ImageURL                string    `json:"image_url,omitempty"`
		CaloriesPer100g         float64   `json:"calories_per_100g"`
		ProteinPer100g          float64   `json:"protein_per_100g"`
		FatPer100g              float64   `json:"fat_per_100g"`
		DietType                string    `json:"diet_type"`
		Ingredients             []string  `json:"ingredients"`
		ForbiddenAllergies      []string  `json:"forbidden_allergies"`
		AllowedHealthConditions []string  `json:"allowed_health_conditions"`
		CreatedAt               time.Time `json:"created_at"`
	}
)
