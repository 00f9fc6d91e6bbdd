package dto

import "time"

// RegisterRequest alta de usuario (solo admin).
type RegisterRequest struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Cargo     string `json:"cargo"`
	Iniciales string `json:"iniciales"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest actualización parcial de un usuario; nil = sin cambio.
type UpdateUserRequest struct {
	Name      *string  `json:"name"`
	Username  *string  `json:"username"`
	Email     *string  `json:"email"`
	Role      *string  `json:"role"`
	Cargo     *string  `json:"cargo"`
	Iniciales *string  `json:"iniciales"`
	Grupos    []string `json:"grupos"` // IDs; nil = sin cambio
}

// UserResponse usuario sin material sensible.
type UserResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	Cargo     string         `json:"cargo"`
	Iniciales string         `json:"iniciales"`
	Grupos    []GrupoSummary `json:"grupos"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// LoginResponse resultado del login; el token viaja solo en la cookie.
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// VerifyResponse resultado de GET /auth/verify.
type VerifyResponse struct {
	IsValid bool         `json:"isValid"`
	User    VerifiedUser `json:"user"`
}

// VerifiedUser identidad mínima extraída del token.
type VerifiedUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// MeResponse resultado de GET /auth/me.
type MeResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
