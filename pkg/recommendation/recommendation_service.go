package recommendation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pawplate/domain"
	"pawplate/internal/utils"
	"pawplate/pkg/dog"
	"pawplate/pkg/ingredient"
	"pawplate/pkg/nutrition"
	"pawplate/pkg/product"
)

type (
	RecommendationService interface {
		GetRecommendedProducts(ctx context.Context, dogID string, userID string) ([]domain.RecommendedProductResponse, error)
		GetRecommendedIngredients(ctx context.Context, dogID string, userID string) ([]domain.RecommendedIngredientResponse, error)
	}

	recommendationService struct {
		dogRepository        dog.DogRepository
		productRepository    product.ProductRepository
		ingredientRepository ingredient.IngredientRepository
		nutritionRepository  nutrition.NutritionRepository
	}
)

func NewRecommendationService(
	dogRepository dog.DogRepository,
	productRepository product.ProductRepository,
	ingredientRepository ingredient.IngredientRepository,
	nutritionRepository nutrition.NutritionRepository,
) RecommendationService {
	return &recommendationService{
		dogRepository:        dogRepository,
		productRepository:    productRepository,
		ingredientRepository: ingredientRepository,
		nutritionRepository:  nutritionRepository,
	}
}

func (s *recommendationService) GetRecommendedProducts(ctx context.Context, dogID string, userID string) ([]domain.RecommendedProductResponse, error) {
	traits, target, err := s.dogContext(ctx, dogID, userID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	matches := MatchProducts(traits, target, products)
	response := make([]domain.RecommendedProductResponse, 0, len(matches))
	for _, m := range matches {
		response = append(response, domain.RecommendedProductResponse{
			ProductID:       m.Product.ID.String(),
			Name:            m.Product.Name,
			Brand:           m.Product.Brand,
			Description:     m.Product.Description,
			Price:           m.Product.Price,
			Stock:           m.Product.Stock,
			ImageURL:        m.Product.ImageURL,
			CaloriesPer100g: m.Product.CaloriesPer100g,
			DailyPortionG:   m.DailyPortionG,
		})
	}
	return response, nil
}

func (s *recommendationService) GetRecommendedIngredients(ctx context.Context, dogID string, userID string) ([]domain.RecommendedIngredientResponse, error) {
	traits, target, err := s.dogContext(ctx, dogID, userID)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	matches := MatchIngredients(traits, target, ingredients)
	response := make([]domain.RecommendedIngredientResponse, 0, len(matches))
	for _, m := range matches {
		response = append(response, domain.RecommendedIngredientResponse{
			IngredientID:    m.Ingredient.ID.String(),
			Name:            m.Ingredient.Name,
			CaloriesPer100g: m.Ingredient.CaloriesPer100g,
			DailyPortionG:   m.DailyPortionG,
		})
	}
	return response, nil
}

// dogContext loads the dog, checks ownership and resolves the calorie
// target from the latest plan. Without a plan the target is zero and
// portion annotations come back as zero.
func (s *recommendationService) dogContext(ctx context.Context, dogID, userID string) (DogTraits, float64, error) {
	d, err := s.dogRepository.GetDogByID(ctx, dogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DogTraits{}, 0, domain.ErrDogNotFound
		}
		return DogTraits{}, 0, err
	}
	if d.OwnerID.String() != userID {
		return DogTraits{}, 0, domain.ErrDogNotOwned
	}

	traits := DogTraits{
		Allergies:        utils.SplitCSV(d.Allergies),
		HealthConditions: utils.SplitCSV(d.HealthConditions),
		DietPreference:   d.DietPreference,
	}

	var target float64
	if plan, err := s.nutritionRepository.GetLatestPlanByDog(ctx, dogID); err == nil {
		target = plan.TargetCaloriesPerDay
	}
	return traits, target, nil
}
