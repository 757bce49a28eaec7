package dog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawplate/domain"
	"pawplate/entities"
	"pawplate/internal/utils"
	"pawplate/pkg/nutrition"
	"pawplate/pkg/product"
)

type (
	DogService interface {
		AddDog(ctx context.Context, req domain.AddDogRequest, userID string) (domain.DogResponse, error)
		UpdateDog(ctx context.Context, id string, req domain.UpdateDogRequest, userID string) error
		DeleteDog(ctx context.Context, id string, userID string) error
		GetDog(ctx context.Context, id string, userID string) (domain.DogResponse, error)
		GetMyDogs(ctx context.Context, userID string) ([]domain.DogResponse, error)
		GetAllDogs(ctx context.Context) ([]domain.DogResponse, error)

		AddScheduleEntry(ctx context.Context, dogID string, req domain.AddScheduleEntryRequest, userID string) error
		GetSchedule(ctx context.Context, dogID string, userID string) ([]domain.ScheduleMealResponse, error)
		GetWeeklyShoppingList(ctx context.Context, dogID string, userID string) ([]domain.ShoppingListItemResponse, error)

		SaveReminders(ctx context.Context, dogID string, req domain.SaveRemindersRequest, userID string) error
		GetReminders(ctx context.Context, dogID string, userID string) ([]domain.ReminderResponse, error)
	}

	dogService struct {
		dogRepository       DogRepository
		productRepository   product.ProductRepository
		nutritionRepository nutrition.NutritionRepository
	}
)

func NewDogService(
	dogRepository DogRepository,
	productRepository product.ProductRepository,
	nutritionRepository nutrition.NutritionRepository,
) DogService {
	return &dogService{
		dogRepository:       dogRepository,
		productRepository:   productRepository,
		nutritionRepository: nutritionRepository,
	}
}

func (s *dogService) AddDog(ctx context.Context, req domain.AddDogRequest, userID string) (domain.DogResponse, error) {
	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DogResponse{}, domain.ErrParseUUID
	}

	dog := &entities.DogProfile{
		ID:               uuid.New(),
		OwnerID:          ownerUUID,
		Name:             req.Name,
		Breed:            req.Breed,
		AgeYears:         req.AgeYears,
		WeightKg:         req.WeightKg,
		ActivityLevel:    req.ActivityLevel,
		Neutered:         req.Neutered,
		DietPreference:   req.DietPreference,
		Allergies:        utils.JoinCSV(req.Allergies),
		HealthConditions: utils.JoinCSV(req.HealthConditions),
	}

	if err := s.dogRepository.AddDog(ctx, dog); err != nil {
		return domain.DogResponse{}, err
	}
	return toDogResponse(dog), nil
}

func (s *dogService) UpdateDog(ctx context.Context, id string, req domain.UpdateDogRequest, userID string) error {
	dog, err := s.ownedDog(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		dog.Name = req.Name
	}
	if req.Breed != "" {
		dog.Breed = req.Breed
	}
	if req.AgeYears != nil {
		if *req.AgeYears < 0 {
			return domain.ErrInvalidAge
		}
		dog.AgeYears = *req.AgeYears
	}
	if req.WeightKg != nil {
		if *req.WeightKg <= 0 {
			return domain.ErrInvalidWeight
		}
		dog.WeightKg = *req.WeightKg
	}
	if req.ActivityLevel != "" {
		dog.ActivityLevel = req.ActivityLevel
	}
	if req.Neutered != nil {
		dog.Neutered = *req.Neutered
	}
	if req.DietPreference != "" {
		dog.DietPreference = req.DietPreference
	}
	if req.Allergies != nil {
		dog.Allergies = utils.JoinCSV(req.Allergies)
	}
	if req.HealthConditions != nil {
		dog.HealthConditions = utils.JoinCSV(req.HealthConditions)
	}

	return s.dogRepository.UpdateDog(ctx, dog)
}

func (s *dogService) DeleteDog(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedDog(ctx, id, userID); err != nil {
		return err
	}
	return s.dogRepository.DeleteDog(ctx, id)
}

func (s *dogService) GetDog(ctx context.Context, id string, userID string) (domain.DogResponse, error) {
	dog, err := s.ownedDog(ctx, id, userID)
	if err != nil {
		return domain.DogResponse{}, err
	}
	return toDogResponse(dog), nil
}

func (s *dogService) GetMyDogs(ctx context.Context, userID string) ([]domain.DogResponse, error) {
	dogs, err := s.dogRepository.GetDogsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DogResponse, 0, len(dogs))
	for _, d := range dogs {
		response = append(response, toDogResponse(d))
	}
	return response, nil
}

func (s *dogService) GetAllDogs(ctx context.Context) ([]domain.DogResponse, error) {
	dogs, err := s.dogRepository.GetAllDogs(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DogResponse, 0, len(dogs))
	for _, d := range dogs {
		response = append(response, toDogResponse(d))
	}
	return response, nil
}

// AddScheduleEntry spreads the product across all meals of the day: the
// daily portion for the dog's current calorie target, split evenly.
func (s *dogService) AddScheduleEntry(ctx context.Context, dogID string, req domain.AddScheduleEntryRequest, userID string) error {
	dog, err := s.ownedDog(ctx, dogID, userID)
	if err != nil {
		return err
	}

	prod, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	plan, err := s.nutritionRepository.GetLatestPlanByDog(ctx, dogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoCurrentPlan
		}
		return err
	}

	portionG, err := nutrition.MealPortionGrams(plan.TargetCaloriesPerDay, prod.CaloriesPer100g, nutrition.DefaultMealCount)
	if err != nil {
		return err
	}

	items := make([]*entities.FeedingScheduleItem, 0, nutrition.DefaultMealCount)
	for meal := 1; meal <= nutrition.DefaultMealCount; meal++ {
		items = append(items, &entities.FeedingScheduleItem{
			ID:          uuid.New(),
			DogID:       dog.ID,
			MealNumber:  meal,
			ProductID:   prod.ID,
			ProductName: prod.Name,
			PortionG:    portionG,
		})
	}

	return s.dogRepository.AddScheduleItems(ctx, items)
}

func (s *dogService) GetSchedule(ctx context.Context, dogID string, userID string) ([]domain.ScheduleMealResponse, error) {
	if _, err := s.ownedDog(ctx, dogID, userID); err != nil {
		return nil, err
	}

	items, err := s.dogRepository.GetScheduleByDog(ctx, dogID)
	if err != nil {
		return nil, err
	}
	return GroupSchedule(items), nil
}

func (s *dogService) GetWeeklyShoppingList(ctx context.Context, dogID string, userID string) ([]domain.ShoppingListItemResponse, error) {
	if _, err := s.ownedDog(ctx, dogID, userID); err != nil {
		return nil, err
	}

	items, err := s.dogRepository.GetScheduleByDog(ctx, dogID)
	if err != nil {
		return nil, err
	}
	return WeeklyShoppingList(items), nil
}

func (s *dogService) SaveReminders(ctx context.Context, dogID string, req domain.SaveRemindersRequest, userID string) error {
	dog, err := s.ownedDog(ctx, dogID, userID)
	if err != nil {
		return err
	}

	reminders := make([]*entities.FeedingReminder, 0, len(req.Reminders))
	for _, r := range req.Reminders {
		if _, err := time.Parse("15:04", r.Time); err != nil {
			return domain.ErrInvalidReminderTime
		}
		reminders = append(reminders, &entities.FeedingReminder{
			ID:      uuid.New(),
			DogID:   dog.ID,
			Label:   r.Label,
			Time:    r.Time,
			Enabled: r.Enabled,
		})
	}

	return s.dogRepository.ReplaceReminders(ctx, dogID, reminders)
}

func (s *dogService) GetReminders(ctx context.Context, dogID string, userID string) ([]domain.ReminderResponse, error) {
	if _, err := s.ownedDog(ctx, dogID, userID); err != nil {
		return nil, err
	}

	reminders, err := s.dogRepository.GetRemindersByDog(ctx, dogID)
	if err != nil {
		return nil, err
	}

	// Per-meal macro share of the current plan; zero when no plan exists.
	var calories, protein, fat float64
	if plan, err := s.nutritionRepository.GetLatestPlanByDog(ctx, dogID); err == nil {
		calories = plan.TargetCaloriesPerDay / nutrition.DefaultMealCount
		protein = plan.TargetProteinG / nutrition.DefaultMealCount
		fat = plan.TargetFatG / nutrition.DefaultMealCount
	}

	response := make([]domain.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		response = append(response, domain.ReminderResponse{
			Label:    r.Label,
			Time:     r.Time,
			Enabled:  r.Enabled,
			Calories: calories,
			ProteinG: protein,
			FatG:     fat,
		})
	}
	return response, nil
}

func (s *dogService) ownedDog(ctx context.Context, dogID, userID string) (*entities.DogProfile, error) {
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

func toDogResponse(d *entities.DogProfile) domain.DogResponse {
	return domain.DogResponse{
		ID:               d.ID.String(),
		OwnerID:          d.OwnerID.String(),
		Name:             d.Name,
		Breed:            d.Breed,
		AgeYears:         d.AgeYears,
		WeightKg:         d.WeightKg,
		ActivityLevel:    d.ActivityLevel,
		Neutered:         d.Neutered,
		DietPreference:   d.DietPreference,
		Allergies:        utils.SplitCSV(d.Allergies),
		HealthConditions: utils.SplitCSV(d.HealthConditions),
		CreatedAt:        d.CreatedAt,
	}
}
