package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pawplate/entities"
)

// DefaultCommissionRate applies until an admin sets a rate.
const DefaultCommissionRate = 0.1

type (
	AdminRepository interface {
		GetCommissionRate(ctx context.Context) (float64, error)
		SetCommissionRate(ctx context.Context, rate float64) error
		CountUsers(ctx context.Context) (int64, error)
		CountUsersByRole(ctx context.Context, role string) (int64, error)
		CountProducts(ctx context.Context) (int64, error)
		CountDogs(ctx context.Context) (int64, error)
		CountOrders(ctx context.Context) (int64, error)
		SumRevenue(ctx context.Context) (float64, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetCommissionRate(ctx context.Context) (float64, error) {
	var setting entities.CommissionSetting
	err := r.db.WithContext(ctx).Order("created_at desc").First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultCommissionRate, nil
		}
		return 0, err
	}
	return setting.Rate, nil
}

func (r *adminRepository) SetCommissionRate(ctx context.Context, rate float64) error {
	return r.db.WithContext(ctx).Create(&entities.CommissionSetting{Rate: rate}).Error
}

func (r *adminRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Product{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountDogs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.DogProfile{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).Count(&count).Error
	return count, err
}

// SumRevenue totals every order that was not cancelled.
func (r *adminRepository) SumRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("status <> ?", entities.OrderStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error
	return revenue, err
}
