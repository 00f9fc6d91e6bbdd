package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

// Texto por defecto cuando el solicitante no deja observaciones.
const observacionesPorDefecto = "Sus comentarios."

// InvoiceRequestUseCase casos de uso para solicitudes de facturación.
type InvoiceRequestUseCase struct {
	repo repository.InvoiceRequestRepository
}

// NewInvoiceRequestUseCase construye el caso de uso.
func NewInvoiceRequestUseCase(repo repository.InvoiceRequestRepository) *InvoiceRequestUseCase {
	return &InvoiceRequestUseCase{repo: repo}
}

// Create registra una solicitud de facturación en estado pendiente. La ruta
// pública y la autenticada comparten este camino.
func (uc *InvoiceRequestUseCase) Create(in dto.CreateInvoiceRequestRequest) (*dto.InvoiceRequestResponse, error) {
	if in.Solicitante == "" || in.Telefono == "" || in.CorreoContacto == "" ||
		in.Obra == "" || in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	observaciones := in.Observaciones
	if observaciones == "" {
		observaciones = observacionesPorDefecto
	}
	now := time.Now()
	req := &entity.InvoiceRequest{
		ID:             uuid.New().String(),
		Solicitante:    in.Solicitante,
		Telefono:       in.Telefono,
		CorreoContacto: in.CorreoContacto,
		Obra:           in.Obra,
		Descripcion:    in.Descripcion,
		FechaSolicitud: now,
		Estado:         entity.InvoiceRequestPendiente,
		Observaciones:  observaciones,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(req); err != nil {
		return nil, err
	}
	return dto.NewInvoiceRequestResponse(req), nil
}

// List devuelve solicitudes de facturación, filtrables por estado y solicitante.
func (uc *InvoiceRequestUseCase) List(filter repository.InvoiceRequestFilter) ([]dto.InvoiceRequestResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *dto.NewInvoiceRequestResponse(r))
	}
	return out, nil
}

// GetByID devuelve una solicitud de facturación por ID.
func (uc *InvoiceRequestUseCase) GetByID(id string) (*dto.InvoiceRequestResponse, error) {
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewInvoiceRequestResponse(req), nil
}

// Update aplica una actualización parcial de los datos de contacto.
func (uc *InvoiceRequestUseCase) Update(id string, in dto.UpdateInvoiceRequestRequest) (*dto.InvoiceRequestResponse, error) {
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if in.Solicitante != nil {
		req.Solicitante = *in.Solicitante
	}
	if in.Telefono != nil {
		req.Telefono = *in.Telefono
	}
	if in.CorreoContacto != nil {
		req.CorreoContacto = *in.CorreoContacto
	}
	if in.Obra != nil {
		req.Obra = *in.Obra
	}
	if in.Descripcion != nil {
		req.Descripcion = *in.Descripcion
	}
	if in.Observaciones != nil {
		req.Observaciones = *in.Observaciones
	}
	req.UpdatedAt = time.Now()
	if err := uc.repo.Update(req); err != nil {
		return nil, err
	}
	return dto.NewInvoiceRequestResponse(req), nil
}

// UpdateEstado cambia solo el estado de la solicitud de facturación.
func (uc *InvoiceRequestUseCase) UpdateEstado(id, estado string) (*dto.InvoiceRequestResponse, error) {
	if !entity.ValidInvoiceRequestEstado(estado) {
		return nil, domain.ErrInvalidInput
	}
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	req.Estado = estado
	req.UpdatedAt = time.Now()
	if err := uc.repo.Update(req); err != nil {
		return nil, err
	}
	return dto.NewInvoiceRequestResponse(req), nil
}

// Delete elimina una solicitud de facturación por ID.
func (uc *InvoiceRequestUseCase) Delete(id string) error {
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
