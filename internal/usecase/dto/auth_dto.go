package dto

import "github.com/excursion-service/internal/domain"

// LoginRequest - запрос входа сотрудника
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse - выданный токен доступа
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

// UserCreateRequest - запрос создания сотрудника
type UserCreateRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=manager admin superuser"`
}

// UserUpdateRequest - запрос изменения сотрудника
type UserUpdateRequest struct {
	FullName string  `json:"full_name" validate:"required,min=2,max=150"`
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     string  `json:"role" validate:"required,oneof=manager admin superuser"`
	IsActive bool    `json:"is_active"`
}
