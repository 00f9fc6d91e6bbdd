package entity

import "time"

// Estados de una InvoiceRequest.
const (
	InvoiceRequestPendiente = "pendiente"
	InvoiceRequestAprobada  = "aprobado"
	InvoiceRequestRechazada = "rechazado"
)

// ValidInvoiceRequestEstado indica si el estado existe.
func ValidInvoiceRequestEstado(e string) bool {
	return e == InvoiceRequestPendiente || e == InvoiceRequestAprobada || e == InvoiceRequestRechazada
}

// InvoiceRequest es una solicitud de cotización de público general, sin
// cliente registrado de por medio.
type InvoiceRequest struct {
	ID             string
	Solicitante    string
	Telefono       string
	CorreoContacto string
	Obra           string
	Descripcion    string
	FechaSolicitud time.Time
	Estado         string
	Observaciones  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
