package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

// ClientUseCase casos de uso para el registro de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente; RUT y email deben ser únicos.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.RazonSocial == "" || in.RUT == "" || in.Email == "" || in.Phone == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByRUT(in.RUT); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.repo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		RazonSocial: in.RazonSocial,
		RUT:         in.RUT,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return dto.NewClientResponse(client), nil
}

// List devuelve clientes paginados; search busca en razón social, RUT y email.
func (uc *ClientUseCase) List(search string, page dto.PageRequest) (*dto.ClientsListResponse, error) {
	page.Defaults()
	list, err := uc.repo.List(search, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *dto.NewClientResponse(c))
	}
	return &dto.ClientsListResponse{
		Clients:    out,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// GetByID devuelve un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return dto.NewClientResponse(client), nil
}

// Update aplica una actualización parcial, re-validando RUT y email solo si cambian.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if in.RUT != nil && *in.RUT != client.RUT {
		if existing, _ := uc.repo.GetByRUT(*in.RUT); existing != nil {
			return nil, domain.ErrDuplicate
		}
		client.RUT = *in.RUT
	}
	if in.Email != nil && *in.Email != client.Email {
		if existing, _ := uc.repo.GetByEmail(*in.Email); existing != nil {
			return nil, domain.ErrDuplicate
		}
		client.Email = *in.Email
	}
	if in.RazonSocial != nil {
		client.RazonSocial = *in.RazonSocial
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return dto.NewClientResponse(client), nil
}

// Delete elimina un cliente por ID.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}
	return uc.repo.Delete(id)
}
