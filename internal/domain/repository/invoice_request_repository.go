package repository

import "github.com/sgal-lab/sgal-api/internal/domain/entity"

// InvoiceRequestFilter filtros de listado de solicitudes de facturación.
type InvoiceRequestFilter struct {
	Estado      string
	Solicitante string // búsqueda ILIKE
}

// InvoiceRequestRepository define el puerto de persistencia para InvoiceRequest.
type InvoiceRequestRepository interface {
	Create(request *entity.InvoiceRequest) error
	GetByID(id string) (*entity.InvoiceRequest, error)
	List(filter InvoiceRequestFilter) ([]*entity.InvoiceRequest, error)
	Update(request *entity.InvoiceRequest) error
	Delete(id string) error
}
