package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole indica si el rol existe en el sistema.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User representa una cuenta del laboratorio.
type User struct {
	ID           string
	Name         string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	Cargo        string // cargo dentro del laboratorio
	Iniciales    string // iniciales para firmar informes
	Grupos       []*Grupo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
