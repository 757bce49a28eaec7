package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawplate/domain"
	"pawplate/entities"
	"pawplate/internal/utils"
)

// DogRepository is the slice of the dog store the nutrition service needs
// for ownership checks.
type DogRepository interface {
	GetDogByID(ctx context.Context, id string) (*entities.DogProfile, error)
}

type (
	NutritionService interface {
		GeneratePlan(ctx context.Context, req domain.GeneratePlanRequest) (domain.NutritionPlanResponse, error)
		SavePlan(ctx context.Context, dogID string, req domain.SavePlanRequest, userID string) (domain.NutritionPlanResponse, error)
		GetPlans(ctx context.Context, dogID string, userID string) ([]domain.NutritionPlanResponse, error)
		DeletePlan(ctx context.Context, dogID, planID string, userID string) error
	}

	nutritionService struct {
		nutritionRepository NutritionRepository
		dogRepository       DogRepository
		httpClient          *http.Client
	}
)

func NewNutritionService(nutritionRepository NutritionRepository, dogRepository DogRepository) NutritionService {
	return &nutritionService{
		nutritionRepository: nutritionRepository,
		dogRepository:       dogRepository,
		httpClient:          &http.Client{Timeout: 15 * time.Second},
	}
}

// GeneratePlan forwards the profile attributes to the external prediction
// service and returns its macro targets. Nothing is persisted here; the
// client saves the plan explicitly.
func (s *nutritionService) GeneratePlan(ctx context.Context, req domain.GeneratePlanRequest) (domain.NutritionPlanResponse, error) {
	predictionURL := utils.GetConfig("PREDICTION_URL")
	if predictionURL == "" {
		return domain.NutritionPlanResponse{}, domain.ErrPredictionService
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return domain.NutritionPlanResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, predictionURL, bytes.NewBuffer(payload))
	if err != nil {
		return domain.NutritionPlanResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return domain.NutritionPlanResponse{}, fmt.Errorf("%w: %v", domain.ErrPredictionService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.NutritionPlanResponse{}, fmt.Errorf("%w: status %s", domain.ErrPredictionService, resp.Status)
	}

	var prediction struct {
		TargetCaloriesPerDay float64 `json:"target_calories_per_day"`
		TargetProteinG       float64 `json:"target_protein_g"`
		TargetFatG           float64 `json:"target_fat_g"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return domain.NutritionPlanResponse{}, fmt.Errorf("%w: %v", domain.ErrPredictionService, err)
	}

	if prediction.TargetCaloriesPerDay <= 0 {
		return domain.NutritionPlanResponse{}, domain.ErrInvalidCalorieTarget
	}

	return domain.NutritionPlanResponse{
		TargetCaloriesPerDay: prediction.TargetCaloriesPerDay,
		TargetProteinG:       prediction.TargetProteinG,
		TargetFatG:           prediction.TargetFatG,
	}, nil
}

func (s *nutritionService) SavePlan(ctx context.Context, dogID string, req domain.SavePlanRequest, userID string) (domain.NutritionPlanResponse, error) {
	dog, err := s.ownedDog(ctx, dogID, userID)
	if err != nil {
		return domain.NutritionPlanResponse{}, err
	}

	plan := &entities.NutritionPlan{
		ID:                   uuid.New(),
		DogID:                dog.ID,
		TargetCaloriesPerDay: req.TargetCaloriesPerDay,
		TargetProteinG:       req.TargetProteinG,
		TargetFatG:           req.TargetFatG,
	}

	if err := s.nutritionRepository.SavePlan(ctx, plan); err != nil {
		return domain.NutritionPlanResponse{}, err
	}
	return toPlanResponse(plan), nil
}

func (s *nutritionService) GetPlans(ctx context.Context, dogID string, userID string) ([]domain.NutritionPlanResponse, error) {
	if _, err := s.ownedDog(ctx, dogID, userID); err != nil {
		return nil, err
	}

	plans, err := s.nutritionRepository.GetPlansByDog(ctx, dogID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.NutritionPlanResponse, 0, len(plans))
	for _, p := range plans {
		response = append(response, toPlanResponse(p))
	}
	return response, nil
}

func (s *nutritionService) DeletePlan(ctx context.Context, dogID, planID string, userID string) error {
	if _, err := s.ownedDog(ctx, dogID, userID); err != nil {
		return err
	}

	plan, err := s.nutritionRepository.GetPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPlanNotFound
		}
		return err
	}
	if plan.DogID.String() != dogID {
		return domain.ErrPlanNotFound
	}

	return s.nutritionRepository.DeletePlan(ctx, planID)
}

func (s *nutritionService) ownedDog(ctx context.Context, dogID, userID string) (*entities.DogProfile, error) {
	dog, err := s.dogRepository.GetDogByID(ctx, dogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDogNotFound
		}
		return nil, err
	}
	if dog.OwnerID.String() != userID {
		return nil, domain.ErrDogNotOwned
	}
	return dog, nil
}

func toPlanResponse(p *entities.NutritionPlan) domain.NutritionPlanResponse {
	return domain.NutritionPlanResponse{
		ID:                   p.ID.String(),
		DogID:                p.DogID.String(),
		TargetCaloriesPerDay: p.TargetCaloriesPerDay,
		TargetProteinG:       p.TargetProteinG,
		TargetFatG:           p.TargetFatG,
		CreatedAt:            p.CreatedAt,
	}
}
