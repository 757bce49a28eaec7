package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pawplate/domain"
	"pawplate/entities"
	"pawplate/pkg/user"
)

type (
	AdminService interface {
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		UpdateUserRole(ctx context.Context, email string, req domain.UpdateRoleRequest) error
		DeleteUser(ctx context.Context, email string) error
		CreateSeller(ctx context.Context, req domain.CreateSellerRequest) (domain.RegisterResponse, error)
		GetStats(ctx context.Context) (domain.AdminStatsResponse, error)
		GetCommissionRate(ctx context.Context) (domain.CommissionResponse, error)
		UpdateCommissionRate(ctx context.Context, req domain.UpdateCommissionRequest) error
	}

	adminService struct {
		adminRepository AdminRepository
		userRepository  user.UserRepository
	}
)

func NewAdminService(adminRepository AdminRepository, userRepository user.UserRepository) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		userRepository:  userRepository,
	}
}

func (s *adminService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, domain.UserResponse{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			Address:   u.Address,
			Phone:     u.Phone,
			CreatedAt: u.CreatedAt,
		})
	}
	return response, nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, email string, req domain.UpdateRoleRequest) error {
	switch req.Role {
	case domain.RoleCustomer, domain.RoleSeller, domain.RoleAdmin:
	default:
		return domain.ErrInvalidRole
	}

	u, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	u.Role = req.Role
	return s.userRepository.UpdateUser(ctx, u)
}

func (s *adminService) DeleteUser(ctx context.Context, email string) error {
	if _, err := s.userRepository.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUserByEmail(ctx, email)
}

func (s *adminService) CreateSeller(ctx context.Context, req domain.CreateSellerRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	seller := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleSeller,
	}

	if err := s.userRepository.CreateUser(ctx, seller); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    seller.ID.String(),
		Name:  seller.Name,
		Email: seller.Email,
		Role:  seller.Role,
	}, nil
}

func (s *adminService) GetStats(ctx context.Context) (domain.AdminStatsResponse, error) {
	var stats domain.AdminStatsResponse
	var err error

	if stats.TotalUsers, err = s.adminRepository.CountUsers(ctx); err != nil {
		return stats, err
	}
	if stats.TotalSellers, err = s.adminRepository.CountUsersByRole(ctx, domain.RoleSeller); err != nil {
		return stats, err
	}
	if stats.TotalProducts, err = s.adminRepository.CountProducts(ctx); err != nil {
		return stats, err
	}
	if stats.TotalDogs, err = s.adminRepository.CountDogs(ctx); err != nil {
		return stats, err
	}
	if stats.TotalOrders, err = s.adminRepository.CountOrders(ctx); err != nil {
		return stats, err
	}
	if stats.TotalRevenue, err = s.adminRepository.SumRevenue(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *adminService) GetCommissionRate(ctx context.Context) (domain.CommissionResponse, error) {
	rate, err := s.adminRepository.GetCommissionRate(ctx)
	if err != nil {
		return domain.CommissionResponse{}, err
	}
	return domain.CommissionResponse{Rate: rate}, nil
}

func (s *adminService) UpdateCommissionRate(ctx context.Context, req domain.UpdateCommissionRequest) error {
	if req.Rate <= 0 || req.Rate >= 1 {
		return domain.ErrInvalidCommissionRate
	}
	return s.adminRepository.SetCommissionRate(ctx, req.Rate)
}
