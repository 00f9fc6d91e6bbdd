package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una Cotización.
const (
	CotizacionEnRevision = "en-revisión"
	CotizacionPendiente  = "pendiente"
	CotizacionAprobada   = "aprobado"
	CotizacionRechazada  = "rechazado"
)

// ValidCotizacionStatus indica si el estado es asignable vía PATCH /status.
func ValidCotizacionStatus(s string) bool {
	return s == CotizacionPendiente || s == CotizacionAprobada || s == CotizacionRechazada
}

// KnownCotizacionStatus indica si el estado existe; la actualización completa
// vía PUT acepta también en-revisión.
func KnownCotizacionStatus(s string) bool {
	return s == CotizacionEnRevision || ValidCotizacionStatus(s)
}

// CotizacionItem es una línea de servicio cotizado.
type CotizacionItem struct {
	ID             string
	Servicio       string
	Telefono       string
	NombreContacto string
	Obra           string
}

// Cotizacion es una cotización de servicios valorizada, opcionalmente generada
// a partir de una Solicitud aprobada.
type Cotizacion struct {
	ID          string
	ClientID    string
	Client      *Client // poblado en lecturas
	Items       []CotizacionItem
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
