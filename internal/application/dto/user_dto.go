package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest body para POST /api/users (solo ADMIN).
type CreateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// UpdateUserRequest body para PUT /api/users/:id (campos opcionales).
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	NationalID *string `json:"national_id,omitempty"`
	Role       *string `json:"role,omitempty"`
}

// ResetPasswordRequest body para POST /api/users/:id/password.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// UserResponse representación HTTP de un usuario (sin hash).
type UserResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	NationalID string    `json:"national_id"`
	Role       string    `json:"role"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
