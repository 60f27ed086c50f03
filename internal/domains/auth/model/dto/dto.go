package dto

import (
	"saylamc/internal/domains/user/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type AdminUserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

func (r *AdminUserResponse) FromModel(model model.AdminUser) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.FullName = model.FullName
}

// LoginResponse defines its own top-level fields instead of the usual data
// envelope, matching what the admin frontend expects from the login call.
type LoginResponse struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	Token        string            `json:"token"`
	RefreshToken string            `json:"refresh_token"`
	User         AdminUserResponse `json:"user"`
}

type TokenResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}
