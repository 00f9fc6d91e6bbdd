package entity

import (
	"time"

	"github.com/sgal-lab/sgal-api/internal/domain"
)

// Estados de una Solicitud. en-revisión es el único estado desde el que se
// puede transicionar; aprobado y rechazado son terminales.
const (
	SolicitudEnRevision = "en-revisión"
	SolicitudAprobada   = "aprobado"
	SolicitudRechazada  = "rechazado"
)

// Prioridades válidas de una Solicitud.
const (
	PrioridadAlta  = "Alta"
	PrioridadMedia = "Media"
	PrioridadBaja  = "Baja"
)

// ValidPrioridad indica si la prioridad existe.
func ValidPrioridad(p string) bool {
	return p == PrioridadAlta || p == PrioridadMedia || p == PrioridadBaja
}

// Solicitud es una petición de cotización de servicios pendiente de revisión
// administrativa. Al aprobarse genera una Cotización.
type Solicitud struct {
	ID                   string
	ClientID             string
	Client               *Client // poblado en lecturas
	NombreContacto       string
	Telefono             string
	Email                string
	NombreObra           string
	UbicacionObra        string
	DescripcionServicios string
	Prioridad            string
	Status               string
	Observaciones        string
	CotizacionGeneradaID string // vacío hasta la aprobación
	AprobadoPorID        string
	AprobadoPorNombre    string // poblado en lecturas
	FechaAprobacion      *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// EnRevision indica si la solicitud admite aprobación o rechazo.
func (s *Solicitud) EnRevision() bool {
	return s.Status == SolicitudEnRevision
}

// Aprobar marca la solicitud como aprobada dejando registro del aprobador,
// la fecha y la cotización generada. Falla si el estado actual no es en-revisión.
func (s *Solicitud) Aprobar(cotizacionID, userID, observaciones string, when time.Time) error {
	if !s.EnRevision() {
		return domain.ErrInvalidState
	}
	s.Status = SolicitudAprobada
	s.CotizacionGeneradaID = cotizacionID
	s.AprobadoPorID = userID
	s.Observaciones = observaciones
	s.FechaAprobacion = &when
	s.UpdatedAt = when
	return nil
}

// Rechazar marca la solicitud como rechazada. Mismas precondiciones que Aprobar;
// no genera cotización.
func (s *Solicitud) Rechazar(userID, observaciones string, when time.Time) error {
	if !s.EnRevision() {
		return domain.ErrInvalidState
	}
	s.Status = SolicitudRechazada
	s.AprobadoPorID = userID
	s.Observaciones = observaciones
	s.FechaAprobacion = &when
	s.UpdatedAt = when
	return nil
}
