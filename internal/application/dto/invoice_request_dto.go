package dto

import "time"

// CreateInvoiceRequestRequest alta de solicitud de facturación.
type CreateInvoiceRequestRequest struct {
	Solicitante    string `json:"solicitante"`
	Telefono       string `json:"telefono"`
	CorreoContacto string `json:"correoContacto"`
	Obra           string `json:"obra"`
	Descripcion    string `json:"descripcion"`
	Observaciones  string `json:"observaciones"`
}

// UpdateInvoiceRequestRequest actualización parcial; nil = sin cambio.
type UpdateInvoiceRequestRequest struct {
	Solicitante    *string `json:"solicitante"`
	Telefono       *string `json:"telefono"`
	CorreoContacto *string `json:"correoContacto"`
	Obra           *string `json:"obra"`
	Descripcion    *string `json:"descripcion"`
	Observaciones  *string `json:"observaciones"`
}

// InvoiceRequestEstadoRequest cambio de estado vía PATCH.
type InvoiceRequestEstadoRequest struct {
	Estado string `json:"estado"`
}

// InvoiceRequestResponse solicitud de facturación expuesta por la API.
type InvoiceRequestResponse struct {
	ID             string    `json:"id"`
	Solicitante    string    `json:"solicitante"`
	Telefono       string    `json:"telefono"`
	CorreoContacto string    `json:"correoContacto"`
	Obra           string    `json:"obra"`
	Descripcion    string    `json:"descripcion"`
	FechaSolicitud time.Time `json:"fechaSolicitud"`
	Estado         string    `json:"estado"`
	Observaciones  string    `json:"observaciones"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
