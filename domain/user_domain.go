package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessGetMe    = "profile retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to retrieve profile"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
)

type (
	RegisterRequest struct {
		FullName      string `json:"full_name" validate:"required"`
		Email         string `json:"email" validate:"required,email"`
		Password      string `json:"password" validate:"required,min=8"`
		HouseholdSize int    `json:"household_size" validate:"omitempty,min=1"`
		Enable2FA     bool   `json:"enable_2fa"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string      `json:"token"`
		User  UserSummary `json:"user"`
	}

	UserSummary struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	MeResponse struct {
		ID            string    `json:"id"`
		FullName      string    `json:"full_name"`
		Email         string    `json:"email"`
		HouseholdSize int       `json:"household_size"`
		Enable2FA     bool      `json:"enable_2fa"`
		Visibility    string    `json:"visibility"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
