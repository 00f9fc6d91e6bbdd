package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/application/usecase"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

type fakeInvoiceRequestRepo struct {
	items map[string]*entity.InvoiceRequest
}

func newFakeInvoiceRequestRepo() *fakeInvoiceRequestRepo {
	return &fakeInvoiceRequestRepo{items: map[string]*entity.InvoiceRequest{}}
}

func (f *fakeInvoiceRequestRepo) Create(r *entity.InvoiceRequest) error {
	f.items[r.ID] = r
	return nil
}

func (f *fakeInvoiceRequestRepo) GetByID(id string) (*entity.InvoiceRequest, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (f *fakeInvoiceRequestRepo) List(filter repository.InvoiceRequestFilter) ([]*entity.InvoiceRequest, error) {
	var list []*entity.InvoiceRequest
	for _, r := range f.items {
		if filter.Estado != "" && r.Estado != filter.Estado {
			continue
		}
		list = append(list, r)
	}
	return list, nil
}

func (f *fakeInvoiceRequestRepo) Update(r *entity.InvoiceRequest) error {
	f.items[r.ID] = r
	return nil
}

func (f *fakeInvoiceRequestRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

func validInvoiceRequest() dto.CreateInvoiceRequestRequest {
	return dto.CreateInvoiceRequestRequest{
		Solicitante:    "María González",
		Telefono:       "+56922222222",
		CorreoContacto: "maria@obra.cl",
		Obra:           "Puente Norte",
		Descripcion:    "Factura por ensayos de compactación",
	}
}

// Sin observaciones el alta debe dejar el texto por defecto y quedar pendiente.
func TestInvoiceRequestCreate_ValoresPorDefecto(t *testing.T) {
	uc := usecase.NewInvoiceRequestUseCase(newFakeInvoiceRequestRepo())

	out, err := uc.Create(validInvoiceRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceRequestPendiente, out.Estado)
	assert.Equal(t, "Sus comentarios.", out.Observaciones)
	assert.False(t, out.FechaSolicitud.IsZero())
}

func TestInvoiceRequestCreate_ObservacionesExplicitas(t *testing.T) {
	uc := usecase.NewInvoiceRequestUseCase(newFakeInvoiceRequestRepo())

	in := validInvoiceRequest()
	in.Observaciones = "Facturar a nombre de la constructora."
	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "Facturar a nombre de la constructora.", out.Observaciones)
}

func TestInvoiceRequestCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewInvoiceRequestUseCase(newFakeInvoiceRequestRepo())

	in := validInvoiceRequest()
	in.CorreoContacto = ""
	_, err := uc.Create(in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceRequestUpdateEstado_EstadoInvalido(t *testing.T) {
	uc := usecase.NewInvoiceRequestUseCase(newFakeInvoiceRequestRepo())

	out, err := uc.Create(validInvoiceRequest())
	require.NoError(t, err)

	_, err = uc.UpdateEstado(out.ID, "en-tramite")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceRequestUpdateEstado_Aprueba(t *testing.T) {
	repo := newFakeInvoiceRequestRepo()
	uc := usecase.NewInvoiceRequestUseCase(repo)

	out, err := uc.Create(validInvoiceRequest())
	require.NoError(t, err)

	updated, err := uc.UpdateEstado(out.ID, entity.InvoiceRequestAprobada)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceRequestAprobada, updated.Estado)

	pendientes, err := uc.List(repository.InvoiceRequestFilter{Estado: entity.InvoiceRequestPendiente})
	require.NoError(t, err)
	assert.Empty(t, pendientes, "no deben quedar solicitudes pendientes tras aprobar")
}
