package domain

import "errors"

var (
	MessageSuccessGetUsers         = "users retrieved successfully"
	MessageSuccessUpdateRole       = "user role updated successfully"
	MessageSuccessDeleteUser       = "user deleted successfully"
	MessageSuccessCreateSeller     = "seller account created successfully"
	MessageSuccessGetStats         = "statistics retrieved successfully"
	MessageSuccessGetCommission    = "commission rate retrieved successfully"
	MessageSuccessUpdateCommission = "commission rate updated successfully"

	MessageFailedGetUsers         = "failed to retrieve users"
	MessageFailedUpdateRole       = "failed to update user role"
	MessageFailedDeleteUser       = "failed to delete user"
	MessageFailedCreateSeller     = "failed to create seller account"
	MessageFailedGetStats         = "failed to retrieve statistics"
	MessageFailedGetCommission    = "failed to retrieve commission rate"
	MessageFailedUpdateCommission = "failed to update commission rate"

	ErrInvalidRole           = errors.New("unknown role")
	ErrInvalidCommissionRate = errors.New("commission rate must be between 0 and 1 exclusive")
)

type (
	UpdateRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=customer seller admin"`
	}

	CreateSellerRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	AdminStatsResponse struct {
		TotalUsers    int64   `json:"total_users"`
		TotalSellers  int64   `json:"total_sellers"`
		TotalProducts int64   `json:"total_products"`
		TotalDogs     int64   `json:"total_dogs"`
		TotalOrders   int64   `json:"total_orders"`
		TotalRevenue  float64 `json:"total_revenue"`
	}

	CommissionResponse struct {
		Rate float64 `json:"rate"`
	}

	UpdateCommissionRequest struct {
		Rate float64 `json:"rate" validate:"required,gt=0,lt=1"`
	}
)
