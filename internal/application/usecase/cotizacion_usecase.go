package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

// CotizacionPDFGenerator genera el documento imprimible de una cotización.
type CotizacionPDFGenerator interface {
	Generate(cot *entity.Cotizacion) ([]byte, error)
}

// CotizacionUseCase casos de uso para cotizaciones.
type CotizacionUseCase struct {
	repo       repository.CotizacionRepository
	clientRepo repository.ClientRepository
	pdfGen     CotizacionPDFGenerator
}

// NewCotizacionUseCase construye el caso de uso.
func NewCotizacionUseCase(repo repository.CotizacionRepository, clientRepo repository.ClientRepository, pdfGen CotizacionPDFGenerator) *CotizacionUseCase {
	return &CotizacionUseCase{repo: repo, clientRepo: clientRepo, pdfGen: pdfGen}
}

// Create crea una cotización manual en estado pendiente para un cliente existente.
func (uc *CotizacionUseCase) Create(in dto.CreateCotizacionRequest) (*dto.CotizacionResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	now := time.Now()
	cot := &entity.Cotizacion{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Items:       itemsFromRequest(in.Items),
		TotalAmount: in.TotalAmount,
		Status:      entity.CotizacionPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(cot); err != nil {
		return nil, err
	}
	cot.Client = client
	return dto.NewCotizacionResponse(cot), nil
}

// List devuelve cotizaciones paginadas, filtrables por estado y cliente.
func (uc *CotizacionUseCase) List(filter repository.CotizacionFilter, page dto.PageRequest) (*dto.CotizacionesListResponse, error) {
	page.Defaults()
	list, err := uc.repo.List(filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CotizacionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *dto.NewCotizacionResponse(c))
	}
	return &dto.CotizacionesListResponse{
		Cotizaciones: out,
		Pagination:   dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// GetByID devuelve una cotización con cliente e items poblados.
func (uc *CotizacionUseCase) GetByID(id string) (*dto.CotizacionResponse, error) {
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewCotizacionResponse(cot), nil
}

// Update aplica una actualización parcial; Items nil conserva los existentes.
func (uc *CotizacionUseCase) Update(id string, in dto.UpdateCotizacionRequest) (*dto.CotizacionResponse, error) {
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClientID != nil && *in.ClientID != cot.ClientID {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrClientNotFound
		}
		cot.ClientID = *in.ClientID
	}
	if in.Items != nil {
		if len(in.Items) == 0 {
			return nil, domain.ErrInvalidInput
		}
		cot.Items = itemsFromRequest(in.Items)
	} else {
		// Items nil indica al repositorio conservar las líneas actuales.
		cot.Items = nil
	}
	if in.TotalAmount != nil {
		cot.TotalAmount = *in.TotalAmount
	}
	if in.Status != nil {
		if !entity.KnownCotizacionStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		cot.Status = *in.Status
	}
	cot.UpdatedAt = time.Now()
	if err := uc.repo.Update(cot); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// UpdateStatus cambia solo el estado de la cotización.
func (uc *CotizacionUseCase) UpdateStatus(id, status string) (*dto.CotizacionResponse, error) {
	if !entity.ValidCotizacionStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNotFound
	}
	cot.Status = status
	cot.Items = nil
	cot.UpdatedAt = time.Now()
	if err := uc.repo.Update(cot); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina una cotización con sus items.
func (uc *CotizacionUseCase) Delete(id string) error {
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cot == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Stats devuelve el total de cotizaciones y el desglose por estado con montos.
func (uc *CotizacionUseCase) Stats() (*dto.CotizacionStatsResponse, error) {
	total, err := uc.repo.CountAll()
	if err != nil {
		return nil, err
	}
	stats, err := uc.repo.StatsByStatus()
	if err != nil {
		return nil, err
	}
	breakdown := make([]dto.CotizacionStatusStatResponse, 0, len(stats))
	for _, s := range stats {
		breakdown = append(breakdown, dto.CotizacionStatusStatResponse{
			Status:      s.Status,
			Count:       s.Count,
			TotalAmount: s.TotalAmount,
		})
	}
	return &dto.CotizacionStatsResponse{
		TotalCotizaciones: total,
		StatusBreakdown:   breakdown,
	}, nil
}

// GeneratePDF arma el documento de la cotización para descarga.
func (uc *CotizacionUseCase) GeneratePDF(id string) ([]byte, error) {
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.Generate(cot)
}

func itemsFromRequest(in []dto.CotizacionItemRequest) []entity.CotizacionItem {
	items := make([]entity.CotizacionItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.CotizacionItem{
			Servicio:       it.Servicio,
			Telefono:       it.Telefono,
			NombreContacto: it.NombreContacto,
			Obra:           it.Obra,
		})
	}
	return items
}
