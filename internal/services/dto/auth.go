package dto

import (
	"time"

	"jobbridge_backend/internal/models"
)

// RegisterRequest creates a new account. ADMIN cannot be self-assigned, the
// custom rule only accepts the three public roles.
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	UserType models.UserRole `json:"userType" validate:"required,is-public-role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the bearer token and the account it belongs to.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO is the compact account shape embedded in auth responses and lists.
type UserDTO struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	UserType    models.UserRole `json:"userType"`
	IsActive    bool            `json:"isActive"`
	IsSuspended bool            `json:"isSuspended"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		UserType:    user.UserType,
		IsActive:    user.IsActive,
		IsSuspended: user.IsSuspended,
		CreatedAt:   user.CreatedAt,
	}
}
