package repository

import "github.com/sgal-lab/sgal-api/internal/domain/entity"

// SolicitudFilter filtros de listado de solicitudes.
type SolicitudFilter struct {
	Status   string
	ClientID string
}

// StatusCount conteo agregado por estado.
type StatusCount struct {
	Status string
	Count  int
}

// SolicitudRepository define el puerto de persistencia para Solicitud.
type SolicitudRepository interface {
	Create(solicitud *entity.Solicitud) error
	// GetByID devuelve la solicitud con cliente y nombre del aprobador poblados.
	GetByID(id string) (*entity.Solicitud, error)
	List(filter SolicitudFilter, limit, offset int) ([]*entity.Solicitud, error)
	Count(filter SolicitudFilter) (int, error)
	Update(solicitud *entity.Solicitud) error
	CountByStatus() ([]StatusCount, error)
	CountAll() (int, error)
}
