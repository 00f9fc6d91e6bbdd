package repository

import (
	"github.com/shopspring/decimal"

	"github.com/sgal-lab/sgal-api/internal/domain/entity"
)

// CotizacionFilter filtros de listado de cotizaciones.
type CotizacionFilter struct {
	Status   string
	ClientID string
}

// CotizacionStatusStat conteo y monto agregados por estado.
type CotizacionStatusStat struct {
	Status      string
	Count       int
	TotalAmount decimal.Decimal
}

// CotizacionRepository define el puerto de persistencia para Cotización.
type CotizacionRepository interface {
	// Create persiste la cotización y sus items.
	Create(cotizacion *entity.Cotizacion) error
	// GetByID devuelve la cotización con items y cliente poblados.
	GetByID(id string) (*entity.Cotizacion, error)
	List(filter CotizacionFilter, limit, offset int) ([]*entity.Cotizacion, error)
	Count(filter CotizacionFilter) (int, error)
	// Update actualiza la cabecera y, si Items no es nil, reemplaza los items.
	Update(cotizacion *entity.Cotizacion) error
	Delete(id string) error
	StatsByStatus() ([]CotizacionStatusStat, error)
	CountAll() (int, error)
}
