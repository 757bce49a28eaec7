package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"

	MessageFailedAddIngredient    = "failed to add ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	AddIngredientRequest struct {
		Name                       string   `json:"name" validate:"required"`
		CaloriesPer100g            float64  `json:"calories_per_100g" validate:"min=0"`
		ProteinPer100g             float64  `json:"protein_per_100g" validate:"min=0"`
		FatPer100g                 float64  `json:"fat_per_100g" validate:"min=0"`
		ForbiddenAllergies         []string `json:"forbidden_allergies"`
		UnsuitableHealthConditions []string `json:"unsuitable_health_conditions"`
	}

	UpdateIngredientRequest struct {
		Name                       string   `json:"name" validate:"omitempty"`
		CaloriesPer100g            *float64 `json:"calories_per_100g" validate:"omitempty,min=0"`
		ProteinPer100g             *float64 `json:"protein_per_100g" validate:"omitempty,min=0"`
		FatPer100g                 *float64 `json:"fat_per_100g" validate:"omitempty,min=0"`
		ForbiddenAllergies         []string `json:"forbidden_allergies"`
		UnsuitableHealthConditions []string `json:"unsuitable_health_conditions"`
	}

	IngredientResponse struct {
		ID                         string    `json:"id"`
		Name                       string    `json:"name"`
		CaloriesPer100g            float64   `json:"calories_per_100g"`
		ProteinPer100g             float64   `json:"protein_per_100g"`
		FatPer100g                 float64   `json:"fat_per_100g"`
		ForbiddenAllergies         []string  `json:"forbidden_allergies"`
		UnsuitableHealthConditions []string  `json:"unsuitable_health_conditions"`
		CreatedAt                  time.Time `json:"created_at"`
	}
)
