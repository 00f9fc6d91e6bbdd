package solicitud

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

// UseCase casos de uso del flujo de solicitudes: alta, consulta y la
// aprobación/rechazo que gobierna la generación de cotizaciones.
type UseCase struct {
	txRunner   TxRunner
	solRepo    repository.SolicitudRepository
	cotRepo    repository.CotizacionRepository
	clientRepo repository.ClientRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, solRepo repository.SolicitudRepository, cotRepo repository.CotizacionRepository, clientRepo repository.ClientRepository) *UseCase {
	return &UseCase{txRunner: txRunner, solRepo: solRepo, cotRepo: cotRepo, clientRepo: clientRepo}
}

// Create registra una solicitud en estado en-revisión para un cliente existente.
func (uc *UseCase) Create(in dto.CreateSolicitudRequest) (*dto.SolicitudResponse, error) {
	if in.ClientID == "" || in.NombreContacto == "" || in.Telefono == "" || in.Email == "" ||
		in.NombreObra == "" || in.UbicacionObra == "" || in.DescripcionServicios == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	prioridad := in.Prioridad
	if prioridad == "" {
		prioridad = entity.PrioridadMedia
	}
	if !entity.ValidPrioridad(prioridad) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sol := &entity.Solicitud{
		ID:                   uuid.New().String(),
		ClientID:             in.ClientID,
		NombreContacto:       in.NombreContacto,
		Telefono:             in.Telefono,
		Email:                in.Email,
		NombreObra:           in.NombreObra,
		UbicacionObra:        in.UbicacionObra,
		DescripcionServicios: in.DescripcionServicios,
		Prioridad:            prioridad,
		Status:               entity.SolicitudEnRevision,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.solRepo.Create(sol); err != nil {
		return nil, err
	}
	sol.Client = client
	return dto.NewSolicitudResponse(sol), nil
}

// List devuelve solicitudes paginadas, filtrables por estado y cliente.
func (uc *UseCase) List(filter repository.SolicitudFilter, page dto.PageRequest) (*dto.SolicitudesListResponse, error) {
	page.Defaults()
	list, err := uc.solRepo.List(filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.solRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SolicitudResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *dto.NewSolicitudResponse(s))
	}
	return &dto.SolicitudesListResponse{
		Solicitudes: out,
		Pagination:  dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// GetByID devuelve una solicitud con cliente y aprobador poblados.
func (uc *UseCase) GetByID(id string) (*dto.SolicitudResponse, error) {
	sol, err := uc.solRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewSolicitudResponse(sol), nil
}

// Aprobar transiciona en-revisión → aprobado y genera la cotización derivada:
// un único item sembrado con la descripción de servicios y los datos de
// contacto, monto cero y estado pendiente. Ambas escrituras van en una misma
// transacción (decisión registrada en DESIGN.md).
func (uc *UseCase) Aprobar(ctx context.Context, id, observaciones, actingUserID string) (*dto.AprobarResponse, error) {
	var cotID string
	err := uc.txRunner.Run(ctx, func(solRepo repository.SolicitudRepository, cotRepo repository.CotizacionRepository) error {
		sol, err := solRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sol == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		cot := &entity.Cotizacion{
			ID:       uuid.New().String(),
			ClientID: sol.ClientID,
			Items: []entity.CotizacionItem{{
				Servicio:       sol.DescripcionServicios,
				Telefono:       sol.Telefono,
				NombreContacto: sol.NombreContacto,
				Obra:           sol.NombreObra,
			}},
			TotalAmount: decimal.Zero,
			Status:      entity.CotizacionPendiente,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := sol.Aprobar(cot.ID, actingUserID, observaciones, now); err != nil {
			return err
		}
		if err := cotRepo.Create(cot); err != nil {
			return err
		}
		if err := solRepo.Update(sol); err != nil {
			return err
		}
		cotID = cot.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Releer fuera de la transacción para responder con cliente y aprobador poblados.
	sol, err := uc.solRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	cot, err := uc.cotRepo.GetByID(cotID)
	if err != nil {
		return nil, err
	}
	return &dto.AprobarResponse{
		Message:    "Solicitud aprobada exitosamente",
		Solicitud:  *dto.NewSolicitudResponse(sol),
		Cotizacion: *dto.NewCotizacionResponse(cot),
	}, nil
}

// Rechazar transiciona en-revisión → rechazado dejando registro del aprobador
// y las observaciones. No genera cotización.
func (uc *UseCase) Rechazar(id, observaciones, actingUserID string) (*dto.RechazarResponse, error) {
	sol, err := uc.solRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, domain.ErrNotFound
	}
	if err := sol.Rechazar(actingUserID, observaciones, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.solRepo.Update(sol); err != nil {
		return nil, err
	}
	sol, err = uc.solRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.RechazarResponse{
		Message:   "Solicitud rechazada exitosamente",
		Solicitud: *dto.NewSolicitudResponse(sol),
	}, nil
}

// Stats devuelve el total de solicitudes y el desglose por estado.
func (uc *UseCase) Stats() (*dto.SolicitudStatsResponse, error) {
	total, err := uc.solRepo.CountAll()
	if err != nil {
		return nil, err
	}
	counts, err := uc.solRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	breakdown := make([]dto.StatusCountResponse, 0, len(counts))
	for _, c := range counts {
		breakdown = append(breakdown, dto.StatusCountResponse{Status: c.Status, Count: c.Count})
	}
	return &dto.SolicitudStatsResponse{
		TotalSolicitudes: total,
		StatusBreakdown:  breakdown,
	}, nil
}
