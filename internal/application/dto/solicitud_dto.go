package dto

import "time"

// CreateSolicitudRequest alta de solicitud de cotización.
type CreateSolicitudRequest struct {
	ClientID             string `json:"clientId"`
	NombreContacto       string `json:"nombreContacto"`
	Telefono             string `json:"telefono"`
	Email                string `json:"email"`
	NombreObra           string `json:"nombreObra"`
	UbicacionObra        string `json:"ubicacionObra"`
	DescripcionServicios string `json:"descripcionServicios"`
	Prioridad            string `json:"prioridad"` // Alta/Media/Baja; vacío = Media
}

// DecisionRequest cuerpo de aprobar/rechazar.
type DecisionRequest struct {
	Observaciones string `json:"observaciones"`
}

// SolicitudResponse solicitud con cliente y aprobador poblados.
type SolicitudResponse struct {
	ID                   string          `json:"id"`
	Client               *ClientResponse `json:"client,omitempty"`
	NombreContacto       string          `json:"nombreContacto"`
	Telefono             string          `json:"telefono"`
	Email                string          `json:"email"`
	NombreObra           string          `json:"nombreObra"`
	UbicacionObra        string          `json:"ubicacionObra"`
	DescripcionServicios string          `json:"descripcionServicios"`
	Prioridad            string          `json:"prioridad"`
	Status               string          `json:"status"`
	Observaciones        string          `json:"observaciones,omitempty"`
	CotizacionGenerada   string          `json:"cotizacionGenerada,omitempty"`
	AprobadoPor          string          `json:"aprobadoPor,omitempty"` // nombre del aprobador
	FechaAprobacion      *time.Time      `json:"fechaAprobacion,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// SolicitudesListResponse listado paginado de solicitudes.
type SolicitudesListResponse struct {
	Solicitudes []SolicitudResponse `json:"solicitudes"`
	Pagination  Pagination          `json:"pagination"`
}

// AprobarResponse resultado de la aprobación: solicitud mutada + cotización generada.
type AprobarResponse struct {
	Message    string             `json:"message"`
	Solicitud  SolicitudResponse  `json:"solicitud"`
	Cotizacion CotizacionResponse `json:"cotizacion"`
}

// RechazarResponse resultado del rechazo.
type RechazarResponse struct {
	Message   string            `json:"message"`
	Solicitud SolicitudResponse `json:"solicitud"`
}

// StatusCountResponse conteo por estado.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// SolicitudStatsResponse estadísticas agregadas de solicitudes.
type SolicitudStatsResponse struct {
	TotalSolicitudes int                   `json:"totalSolicitudes"`
	StatusBreakdown  []StatusCountResponse `json:"statusBreakdown"`
}
