package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/application/usecase"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

type fakeCotizacionRepo struct {
	items map[string]*entity.Cotizacion
}

func newFakeCotizacionRepo() *fakeCotizacionRepo {
	return &fakeCotizacionRepo{items: map[string]*entity.Cotizacion{}}
}

func (f *fakeCotizacionRepo) Create(c *entity.Cotizacion) error {
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCotizacionRepo) GetByID(id string) (*entity.Cotizacion, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCotizacionRepo) List(filter repository.CotizacionFilter, limit, offset int) ([]*entity.Cotizacion, error) {
	var list []*entity.Cotizacion
	for _, c := range f.items {
		list = append(list, c)
	}
	return list, nil
}

func (f *fakeCotizacionRepo) Count(filter repository.CotizacionFilter) (int, error) {
	return len(f.items), nil
}

// Update replica el contrato del repositorio real: Items nil conserva las
// líneas ya persistidas.
func (f *fakeCotizacionRepo) Update(c *entity.Cotizacion) error {
	prev, ok := f.items[c.ID]
	if !ok {
		return nil
	}
	cp := *c
	if cp.Items == nil {
		cp.Items = prev.Items
	}
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCotizacionRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCotizacionRepo) StatsByStatus() ([]repository.CotizacionStatusStat, error) {
	byStatus := map[string]*repository.CotizacionStatusStat{}
	for _, c := range f.items {
		s, ok := byStatus[c.Status]
		if !ok {
			s = &repository.CotizacionStatusStat{Status: c.Status}
			byStatus[c.Status] = s
		}
		s.Count++
		s.TotalAmount = s.TotalAmount.Add(c.TotalAmount)
	}
	var out []repository.CotizacionStatusStat
	for _, s := range byStatus {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeCotizacionRepo) CountAll() (int, error) { return len(f.items), nil }

func buildCotizacionFixture(t *testing.T) (*usecase.CotizacionUseCase, *fakeCotizacionRepo, string) {
	t.Helper()
	clients := newFakeClientRepo()
	repo := newFakeCotizacionRepo()

	clientID := uuid.New().String()
	clients.items[clientID] = &entity.Client{
		ID:          clientID,
		RazonSocial: "Constructora Acme",
		RUT:         "11111111-1",
		Email:       "a@a.com",
	}
	uc := usecase.NewCotizacionUseCase(repo, clients, nil)
	return uc, repo, clientID
}

func itemHormigon() dto.CotizacionItemRequest {
	return dto.CotizacionItemRequest{
		Servicio:       "Ensayo de hormigón",
		Telefono:       "+56911111111",
		NombreContacto: "Juan Pérez",
		Obra:           "Edificio Central",
	}
}

func TestCotizacionCreate_EstadoPendiente(t *testing.T) {
	uc, _, clientID := buildCotizacionFixture(t)

	cot, err := uc.Create(dto.CreateCotizacionRequest{
		ClientID:    clientID,
		Items:       []dto.CotizacionItemRequest{itemHormigon()},
		TotalAmount: decimal.NewFromInt(150000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CotizacionPendiente, cot.Status)
	require.Len(t, cot.Items, 1)
	assert.Equal(t, "Ensayo de hormigón", cot.Items[0].Servicio)
}

func TestCotizacionCreate_SinItems(t *testing.T) {
	uc, _, clientID := buildCotizacionFixture(t)

	_, err := uc.Create(dto.CreateCotizacionRequest{ClientID: clientID})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCotizacionCreate_ClienteInexistente(t *testing.T) {
	uc, _, _ := buildCotizacionFixture(t)

	_, err := uc.Create(dto.CreateCotizacionRequest{
		ClientID: uuid.New().String(),
		Items:    []dto.CotizacionItemRequest{itemHormigon()},
	})
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestCotizacionUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _, clientID := buildCotizacionFixture(t)

	cot, err := uc.Create(dto.CreateCotizacionRequest{
		ClientID: clientID,
		Items:    []dto.CotizacionItemRequest{itemHormigon()},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(cot.ID, "archivado")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cambiar el estado no debe tocar las líneas de la cotización.
func TestCotizacionUpdateStatus_ConservaItems(t *testing.T) {
	uc, _, clientID := buildCotizacionFixture(t)

	cot, err := uc.Create(dto.CreateCotizacionRequest{
		ClientID: clientID,
		Items:    []dto.CotizacionItemRequest{itemHormigon()},
	})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(cot.ID, entity.CotizacionAprobada)
	require.NoError(t, err)
	assert.Equal(t, entity.CotizacionAprobada, out.Status)
	require.Len(t, out.Items, 1, "el cambio de estado no debe borrar los items")
}

// El PUT completo acepta también en-revisión, a diferencia del PATCH /status.
func TestCotizacionUpdate_AceptaEnRevision(t *testing.T) {
	uc, _, clientID := buildCotizacionFixture(t)

	cot, err := uc.Create(dto.CreateCotizacionRequest{
		ClientID: clientID,
		Items:    []dto.CotizacionItemRequest{itemHormigon()},
	})
	require.NoError(t, err)

	enRevision := entity.CotizacionEnRevision
	out, err := uc.Update(cot.ID, dto.UpdateCotizacionRequest{Status: &enRevision})
	require.NoError(t, err)
	assert.Equal(t, entity.CotizacionEnRevision, out.Status)
}

func TestCotizacionStats_AgregaPorEstado(t *testing.T) {
	uc, _, clientID := buildCotizacionFixture(t)

	for _, monto := range []int64{100000, 250000} {
		_, err := uc.Create(dto.CreateCotizacionRequest{
			ClientID:    clientID,
			Items:       []dto.CotizacionItemRequest{itemHormigon()},
			TotalAmount: decimal.NewFromInt(monto),
		})
		require.NoError(t, err)
	}

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCotizaciones)
	require.Len(t, stats.StatusBreakdown, 1)
	assert.Equal(t, entity.CotizacionPendiente, stats.StatusBreakdown[0].Status)
	assert.True(t, stats.StatusBreakdown[0].TotalAmount.Equal(decimal.NewFromInt(350000)),
		"el monto agregado debe ser la suma de ambas cotizaciones")
}
