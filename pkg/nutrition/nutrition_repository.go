package nutrition

import (
	"context"

	"gorm.io/gorm"

	"pawplate/entities"
)

type (
	NutritionRepository interface {
		SavePlan(ctx context.Context, plan *entities.NutritionPlan) error
		GetPlansByDog(ctx context.Context, dogID string) ([]*entities.NutritionPlan, error)
		GetLatestPlanByDog(ctx context.Context, dogID string) (*entities.NutritionPlan, error)
		GetPlanByID(ctx context.Context, id string) (*entities.NutritionPlan, error)
		DeletePlan(ctx context.Context, id string) error
	}

	nutritionRepository struct {
		db *gorm.DB
	}
)

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) SavePlan(ctx context.Context, plan *entities.NutritionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *nutritionRepository) GetPlansByDog(ctx context.Context, dogID string) ([]*entities.NutritionPlan, error) {
	var plans []*entities.NutritionPlan
	if err := r.db.WithContext(ctx).
		Where("dog_id = ?", dogID).
		Order("created_at desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *nutritionRepository) GetLatestPlanByDog(ctx context.Context, dogID string) (*entities.NutritionPlan, error) {
	var plan entities.NutritionPlan
	if err := r.db.WithContext(ctx).
		Where("dog_id = ?", dogID).
		Order("created_at desc").
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *nutritionRepository) GetPlanByID(ctx context.Context, id string) (*entities.NutritionPlan, error) {
	var plan entities.NutritionPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *nutritionRepository) DeletePlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.NutritionPlan{}).Error
}
