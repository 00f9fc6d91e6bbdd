package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CotizacionItemRequest línea de servicio en una cotización.
type CotizacionItemRequest struct {
	Servicio       string `json:"servicio"`
	Telefono       string `json:"telefono"`
	NombreContacto string `json:"nombreContacto"`
	Obra           string `json:"obra"`
}

// CreateCotizacionRequest alta de cotización.
type CreateCotizacionRequest struct {
	ClientID    string                  `json:"clientId"`
	Items       []CotizacionItemRequest `json:"items"`
	TotalAmount decimal.Decimal         `json:"totalAmount"`
}

// UpdateCotizacionRequest actualización parcial; nil = sin cambio.
type UpdateCotizacionRequest struct {
	ClientID    *string                 `json:"clientId"`
	Items       []CotizacionItemRequest `json:"items"`
	TotalAmount *decimal.Decimal        `json:"totalAmount"`
	Status      *string                 `json:"status"`
}

// CotizacionStatusRequest cambio de estado vía PATCH.
type CotizacionStatusRequest struct {
	Status string `json:"status"`
}

// CotizacionItemResponse línea de servicio expuesta por la API.
type CotizacionItemResponse struct {
	Servicio       string `json:"servicio"`
	Telefono       string `json:"telefono"`
	NombreContacto string `json:"nombreContacto"`
	Obra           string `json:"obra"`
}

// CotizacionResponse cotización con cliente e items poblados.
type CotizacionResponse struct {
	ID          string                   `json:"id"`
	Client      *ClientResponse          `json:"client,omitempty"`
	Items       []CotizacionItemResponse `json:"items"`
	TotalAmount decimal.Decimal          `json:"totalAmount"`
	Status      string                   `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// CotizacionesListResponse listado paginado de cotizaciones.
type CotizacionesListResponse struct {
	Cotizaciones []CotizacionResponse `json:"cotizaciones"`
	Pagination   Pagination           `json:"pagination"`
}

// CotizacionStatusStatResponse conteo y monto por estado.
type CotizacionStatusStatResponse struct {
	Status      string          `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CotizacionStatsResponse estadísticas agregadas de cotizaciones.
type CotizacionStatsResponse struct {
	TotalCotizaciones int                            `json:"totalCotizaciones"`
	StatusBreakdown   []CotizacionStatusStatResponse `json:"statusBreakdown"`
}
