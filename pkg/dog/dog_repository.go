package dog

import (
	"context"

	"gorm.io/gorm"

	"pawplate/entities"
)

type (
	DogRepository interface {
		AddDog(ctx context.Context, dog *entities.DogProfile) error
		GetDogByID(ctx context.Context, id string) (*entities.DogProfile, error)
		UpdateDog(ctx context.Context, dog *entities.DogProfile) error
		DeleteDog(ctx context.Context, id string) error
		GetDogsByOwner(ctx context.Context, ownerID string) ([]*entities.DogProfile, error)
		GetAllDogs(ctx context.Context) ([]*entities.DogProfile, error)

		AddScheduleItems(ctx context.Context, items []*entities.FeedingScheduleItem) error
		GetScheduleByDog(ctx context.Context, dogID string) ([]entities.FeedingScheduleItem, error)

		ReplaceReminders(ctx context.Context, dogID string, reminders []*entities.FeedingReminder) error
		GetRemindersByDog(ctx context.Context, dogID string) ([]*entities.FeedingReminder, error)
	}

	dogRepository struct {
		db *gorm.DB
	}
)

func NewDogRepository(db *gorm.DB) DogRepository {
	return &dogRepository{db: db}
}

func (r *dogRepository) AddDog(ctx context.Context, dog *entities.DogProfile) error {
	return r.db.WithContext(ctx).Create(dog).Error
}

func (r *dogRepository) GetDogByID(ctx context.Context, id string) (*entities.DogProfile, error) {
	var dog entities.DogProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dog).Error; err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *dogRepository) UpdateDog(ctx context.Context, dog *entities.DogProfile) error {
	return r.db.WithContext(ctx).Save(dog).Error
}

func (r *dogRepository) DeleteDog(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.DogProfile{}).Error
}

func (r *dogRepository) GetDogsByOwner(ctx context.Context, ownerID string) ([]*entities.DogProfile, error) {
	var dogs []*entities.DogProfile
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (r *dogRepository) GetAllDogs(ctx context.Context) ([]*entities.DogProfile, error) {
	var dogs []*entities.DogProfile
	if err := r.db.WithContext(ctx).Preload("Owner").Order("created_at asc").Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (r *dogRepository) AddScheduleItems(ctx context.Context, items []*entities.FeedingScheduleItem) error {
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *dogRepository) GetScheduleByDog(ctx context.Context, dogID string) ([]entities.FeedingScheduleItem, error) {
	var items []entities.FeedingScheduleItem
	if err := r.db.WithContext(ctx).
		Where("dog_id = ?", dogID).
		Order("meal_number asc, created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *dogRepository) ReplaceReminders(ctx context.Context, dogID string, reminders []*entities.FeedingReminder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dog_id = ?", dogID).Delete(&entities.FeedingReminder{}).Error; err != nil {
			return err
		}
		if len(reminders) == 0 {
			return nil
		}
		return tx.Create(reminders).Error
	})
}

func (r *dogRepository) GetRemindersByDog(ctx context.Context, dogID string) ([]*entities.FeedingReminder, error) {
	var reminders []*entities.FeedingReminder
	if err := r.db.WithContext(ctx).
		Where("dog_id = ?", dogID).
		Order("time asc").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}
