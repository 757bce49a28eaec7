package ingredient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawplate/domain"
	"pawplate/entities"
	"pawplate/internal/utils"
)

type (
	IngredientService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error
		DeleteIngredient(ctx context.Context, id string) error
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		ID:                         uuid.New(),
		Name:                       req.Name,
		CaloriesPer100g:            req.CaloriesPer100g,
		ProteinPer100g:             req.ProteinPer100g,
		FatPer100g:                 req.FatPer100g,
		ForbiddenAllergies:         utils.JoinCSV(req.ForbiddenAllergies),
		UnsuitableHealthConditions: utils.JoinCSV(req.UnsuitableHealthConditions),
	}

	if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(*ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if req.Name != "" {
		ingredient.Name = req.Name
	}
	if req.CaloriesPer100g != nil {
		ingredient.CaloriesPer100g = *req.CaloriesPer100g
	}
	if req.ProteinPer100g != nil {
		ingredient.ProteinPer100g = *req.ProteinPer100g
	}
	if req.FatPer100g != nil {
		ingredient.FatPer100g = *req.FatPer100g
	}
	if req.ForbiddenAllergies != nil {
		ingredient.ForbiddenAllergies = utils.JoinCSV(req.ForbiddenAllergies)
	}
	if req.UnsuitableHealthConditions != nil {
		ingredient.UnsuitableHealthConditions = utils.JoinCSV(req.UnsuitableHealthConditions)
	}

	return s.ingredientRepository.UpdateIngredient(ctx, ingredient)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return s.ingredientRepository.DeleteIngredient(ctx, id)
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		response = append(response, toIngredientResponse(ing))
	}
	return response, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(*ingredient), nil
}

func toIngredientResponse(i entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:                         i.ID.String(),
		Name:                       i.Name,
		CaloriesPer100g:            i.CaloriesPer100g,
		ProteinPer100g:             i.ProteinPer100g,
		FatPer100g:                 i.FatPer100g,
		ForbiddenAllergies:         utils.SplitCSV(i.ForbiddenAllergies),
		UnsuitableHealthConditions: utils.SplitCSV(i.UnsuitableHealthConditions),
		CreatedAt:                  i.CreatedAt,
	}
}
