package dto

import "time"

// CreateGrupoRequest alta de grupo.
type CreateGrupoRequest struct {
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Miembros    []string `json:"miembros"` // IDs de usuario
	Roles       []string `json:"roles"`
}

// UpdateGrupoRequest actualización parcial; nil = sin cambio.
type UpdateGrupoRequest struct {
	Nombre      *string  `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	Miembros    []string `json:"miembros"`
	Roles       []string `json:"roles"`
}

// AddMiembroRequest agrega un usuario al grupo.
type AddMiembroRequest struct {
	UserID string `json:"userId"`
}

// MiembroResponse vista reducida de un usuario dentro de un grupo.
type MiembroResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Cargo     string `json:"cargo"`
	Iniciales string `json:"iniciales"`
}

// GrupoSummary vista reducida de un grupo (para poblar usuarios).
type GrupoSummary struct {
	ID          string   `json:"id"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Roles       []string `json:"roles"`
}

// GrupoResponse grupo con miembros poblados.
type GrupoResponse struct {
	ID          string            `json:"id"`
	Nombre      string            `json:"nombre"`
	Descripcion string            `json:"descripcion"`
	Roles       []string          `json:"roles"`
	Miembros    []MiembroResponse `json:"miembros"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// GruposListResponse listado paginado de grupos.
type GruposListResponse struct {
	Grupos     []GrupoResponse `json:"grupos"`
	Pagination Pagination      `json:"pagination"`
}
