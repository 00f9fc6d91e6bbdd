package repository

import "github.com/sgal-lab/sgal-api/internal/domain/entity"

// GrupoRepository define el puerto de persistencia para Grupo y su membresía.
type GrupoRepository interface {
	Create(grupo *entity.Grupo) error
	GetByID(id string) (*entity.Grupo, error)
	GetByNombre(nombre string) (*entity.Grupo, error)
	// List busca por nombre o descripción (ILIKE) cuando search no es vacío.
	List(search string, limit, offset int) ([]*entity.Grupo, error)
	Count(search string) (int, error)
	ListByUser(userID string) ([]*entity.Grupo, error)
	Update(grupo *entity.Grupo) error
	// SetMiembros reemplaza la membresía completa del grupo.
	SetMiembros(grupoID string, userIDs []string) error
	// SetUserGrupos reemplaza los grupos a los que pertenece un usuario.
	SetUserGrupos(userID string, grupoIDs []string) error
	AddMiembro(grupoID, userID string) error
	RemoveMiembro(grupoID, userID string) error
	// Delete elimina el grupo y sus filas de membresía (la única limpieza
	// cruzada del sistema: ningún usuario queda apuntando al grupo borrado).
	Delete(id string) error
}
