package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

// GrupoUseCase casos de uso para grupos y su membresía.
type GrupoUseCase struct {
	repo     repository.GrupoRepository
	userRepo repository.UserRepository
}

// NewGrupoUseCase construye el caso de uso.
func NewGrupoUseCase(repo repository.GrupoRepository, userRepo repository.UserRepository) *GrupoUseCase {
	return &GrupoUseCase{repo: repo, userRepo: userRepo}
}

// Create crea un grupo con nombre único; los miembros indicados deben existir.
func (uc *GrupoUseCase) Create(in dto.CreateGrupoRequest) (*dto.GrupoResponse, error) {
	if in.Nombre == "" || in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByNombre(in.Nombre); existing != nil {
		return nil, domain.ErrDuplicate
	}
	roles := in.Roles
	if len(roles) == 0 {
		roles = []string{entity.GrupoRolGeneral}
	}
	for _, r := range roles {
		if !entity.ValidGrupoRol(r) {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.checkMiembrosExist(in.Miembros); err != nil {
		return nil, err
	}
	now := time.Now()
	grupo := &entity.Grupo{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Roles:       roles,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(grupo); err != nil {
		return nil, err
	}
	if len(in.Miembros) > 0 {
		if err := uc.repo.SetMiembros(grupo.ID, in.Miembros); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(grupo.ID)
}

// List devuelve grupos paginados; search busca en nombre y descripción.
func (uc *GrupoUseCase) List(search string, page dto.PageRequest) (*dto.GruposListResponse, error) {
	page.Defaults()
	list, err := uc.repo.List(search, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GrupoResponse, 0, len(list))
	for _, g := range list {
		out = append(out, *dto.NewGrupoResponse(g))
	}
	return &dto.GruposListResponse{
		Grupos:     out,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// GetByID devuelve un grupo con sus miembros poblados.
func (uc *GrupoUseCase) GetByID(id string) (*dto.GrupoResponse, error) {
	grupo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if grupo == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewGrupoResponse(grupo), nil
}

// Update aplica una actualización parcial; re-valida el nombre solo si cambia
// y reemplaza la membresía completa cuando Miembros no es nil.
func (uc *GrupoUseCase) Update(id string, in dto.UpdateGrupoRequest) (*dto.GrupoResponse, error) {
	grupo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if grupo == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil && *in.Nombre != grupo.Nombre {
		if existing, _ := uc.repo.GetByNombre(*in.Nombre); existing != nil {
			return nil, domain.ErrDuplicate
		}
		grupo.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		grupo.Descripcion = *in.Descripcion
	}
	if in.Roles != nil {
		for _, r := range in.Roles {
			if !entity.ValidGrupoRol(r) {
				return nil, domain.ErrInvalidInput
			}
		}
		grupo.Roles = in.Roles
	}
	grupo.UpdatedAt = time.Now()
	if err := uc.repo.Update(grupo); err != nil {
		return nil, err
	}
	if in.Miembros != nil {
		if err := uc.checkMiembrosExist(in.Miembros); err != nil {
			return nil, err
		}
		if err := uc.repo.SetMiembros(id, in.Miembros); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(id)
}

// AddMiembro agrega un usuario existente al grupo.
func (uc *GrupoUseCase) AddMiembro(grupoID, userID string) (*dto.GrupoResponse, error) {
	grupo, err := uc.repo.GetByID(grupoID)
	if err != nil {
		return nil, err
	}
	if grupo == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	for _, m := range grupo.Miembros {
		if m.ID == userID {
			return nil, domain.ErrAlreadyMember
		}
	}
	if err := uc.repo.AddMiembro(grupoID, userID); err != nil {
		return nil, err
	}
	return uc.GetByID(grupoID)
}

// RemoveMiembro quita un usuario del grupo.
func (uc *GrupoUseCase) RemoveMiembro(grupoID, userID string) (*dto.GrupoResponse, error) {
	grupo, err := uc.repo.GetByID(grupoID)
	if err != nil {
		return nil, err
	}
	if grupo == nil {
		return nil, domain.ErrNotFound
	}
	esMiembro := false
	for _, m := range grupo.Miembros {
		if m.ID == userID {
			esMiembro = true
			break
		}
	}
	if !esMiembro {
		return nil, domain.ErrNotMember
	}
	if err := uc.repo.RemoveMiembro(grupoID, userID); err != nil {
		return nil, err
	}
	return uc.GetByID(grupoID)
}

// Delete elimina el grupo; la membresía se limpia en el mismo borrado, así
// ningún usuario queda referenciando un grupo inexistente.
func (uc *GrupoUseCase) Delete(id string) error {
	grupo, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if grupo == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *GrupoUseCase) checkMiembrosExist(userIDs []string) error {
	for _, id := range userIDs {
		user, err := uc.userRepo.GetByID(id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
	}
	return nil
}
