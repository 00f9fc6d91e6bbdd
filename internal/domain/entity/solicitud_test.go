package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
)

func solicitudEnRevision() *entity.Solicitud {
	return &entity.Solicitud{
		ID:                   "sol-1",
		ClientID:             "cli-1",
		NombreContacto:       "Juan Pérez",
		Telefono:             "+56 9 1234 5678",
		NombreObra:           "Edificio Central",
		DescripcionServicios: "Ensayo de hormigón",
		Prioridad:            entity.PrioridadMedia,
		Status:               entity.SolicitudEnRevision,
	}
}

func TestAprobar_DesdeEnRevision(t *testing.T) {
	s := solicitudEnRevision()
	when := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	err := s.Aprobar("cot-1", "user-1", "revisado en terreno", when)
	require.NoError(t, err)

	assert.Equal(t, entity.SolicitudAprobada, s.Status)
	assert.Equal(t, "cot-1", s.CotizacionGeneradaID)
	assert.Equal(t, "user-1", s.AprobadoPorID)
	assert.Equal(t, "revisado en terreno", s.Observaciones)
	require.NotNil(t, s.FechaAprobacion)
	assert.Equal(t, when, *s.FechaAprobacion)
}

func TestRechazar_DesdeEnRevision(t *testing.T) {
	s := solicitudEnRevision()
	when := time.Now()

	err := s.Rechazar("user-1", "fuera de cobertura", when)
	require.NoError(t, err)

	assert.Equal(t, entity.SolicitudRechazada, s.Status)
	assert.Empty(t, s.CotizacionGeneradaID, "rechazar no debe generar cotización")
	assert.Equal(t, "user-1", s.AprobadoPorID)
}

// Estados terminales: ni aprobar ni rechazar deben mutar la solicitud.
func TestTransiciones_DesdeEstadoTerminal(t *testing.T) {
	for _, status := range []string{entity.SolicitudAprobada, entity.SolicitudRechazada} {
		t.Run(status, func(t *testing.T) {
			s := solicitudEnRevision()
			s.Status = status
			antes := *s

			err := s.Aprobar("cot-x", "user-2", "obs", time.Now())
			assert.ErrorIs(t, err, domain.ErrInvalidState)
			assert.Equal(t, antes, *s, "una transición inválida no debe mutar la solicitud")

			err = s.Rechazar("user-2", "obs", time.Now())
			assert.ErrorIs(t, err, domain.ErrInvalidState)
			assert.Equal(t, antes, *s)
		})
	}
}

func TestValidPrioridad(t *testing.T) {
	assert.True(t, entity.ValidPrioridad(entity.PrioridadAlta))
	assert.True(t, entity.ValidPrioridad(entity.PrioridadMedia))
	assert.True(t, entity.ValidPrioridad(entity.PrioridadBaja))
	assert.False(t, entity.ValidPrioridad("urgente"))
	assert.False(t, entity.ValidPrioridad("media"), "la prioridad distingue mayúsculas")
}
