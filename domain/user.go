package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login successful"
	MessageSuccessGetProfile = "profile retrieved successfully"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedGetProfile  = "failed to retrieve profile"
	MessageFailedUpdateUser  = "failed to update user"

	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrCredentialsInvalid  = errors.New("invalid email or password")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
)

type (
	RegisterRequest struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required,min=8"`
		ConfirmPassword string `json:"confirm_password" validate:"required"`
		Address         string `json:"address"`
		Phone           string `json:"phone"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		Address   string    `json:"address,omitempty"`
		Phone     string    `json:"phone,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	UpdateUserRequest struct {
		Name    string `json:"name" validate:"omitempty"`
		Address string `json:"address" validate:"omitempty"`
		Phone   string `json:"phone" validate:"omitempty"`
	}
)
