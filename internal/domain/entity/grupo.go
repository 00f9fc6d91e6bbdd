package entity

import "time"

// Roles funcionales que puede cargar un grupo.
const (
	GrupoRolGeneral      = "general"
	GrupoRolSolicitudes  = "gestion solicitudes"
	GrupoRolCotizaciones = "gestion cotizaciones"
)

// ValidGrupoRol indica si el rol funcional existe.
func ValidGrupoRol(r string) bool {
	switch r {
	case GrupoRolGeneral, GrupoRolSolicitudes, GrupoRolCotizaciones:
		return true
	}
	return false
}

// Grupo agrupa usuarios bajo roles funcionales gruesos (no se aplican en autorización de rutas).
type Grupo struct {
	ID          string
	Nombre      string // único
	Descripcion string
	Roles       []string
	Miembros    []*User
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
