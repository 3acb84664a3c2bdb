package dto

import "github.com/shopspring/decimal"

// RegisterRequest entrada para registro público (el rol siempre queda en "user").
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16"`
	Address  string `json:"address" validate:"required,max=400"`
}

// CreateUserRequest entrada para creación de usuario por un admin (rol arbitrario).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16"`
	Address  string `json:"address" validate:"required,max=400"`
	Role     string `json:"role" validate:"required,oneof=user owner admin"`
}

// UserResponse salida pública de un usuario (sin hash de password).
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// UserDetailResponse detalle admin de un usuario. OwnerRating solo se incluye
// cuando el rol es owner: promedio sobre todas sus tiendas, 0 si no tiene.
type UserDetailResponse struct {
	UserResponse
	OwnerRating *decimal.Decimal `json:"owner_rating,omitempty"`
}

// UserListRequest filtros y orden del listado admin de usuarios.
type UserListRequest struct {
	Name    string `query:"name"`
	Email   string `query:"email"`
	Address string `query:"address"`
	Role    string `query:"role"`
	SortRequest
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest entrada para el cambio de contraseña del propio usuario.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=16"`
}
