package solicitud_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/application/solicitud"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSolicitudRepo struct {
	items map[string]*entity.Solicitud
	// failUpdate fuerza el fallo del Update para probar el rollback.
	failUpdate bool
}

func newFakeSolicitudRepo() *fakeSolicitudRepo {
	return &fakeSolicitudRepo{items: map[string]*entity.Solicitud{}}
}

func (f *fakeSolicitudRepo) Create(s *entity.Solicitud) error {
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSolicitudRepo) List(filter repository.SolicitudFilter, limit, offset int) ([]*entity.Solicitud, error) {
	var list []*entity.Solicitud
	for _, s := range f.items {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		cp := *s
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeSolicitudRepo) Count(filter repository.SolicitudFilter) (int, error) {
	list, _ := f.List(filter, 0, 0)
	return len(list), nil
}

func (f *fakeSolicitudRepo) Update(s *entity.Solicitud) error {
	if f.failUpdate {
		return assert.AnError
	}
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSolicitudRepo) CountByStatus() ([]repository.StatusCount, error) {
	counts := map[string]int{}
	for _, s := range f.items {
		counts[s.Status]++
	}
	var out []repository.StatusCount
	for status, n := range counts {
		out = append(out, repository.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func (f *fakeSolicitudRepo) CountAll() (int, error) {
	return len(f.items), nil
}

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
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeCotizacionRepo) Count(filter repository.CotizacionFilter) (int, error) {
	return len(f.items), nil
}

func (f *fakeCotizacionRepo) Update(c *entity.Cotizacion) error {
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCotizacionRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCotizacionRepo) StatsByStatus() ([]repository.CotizacionStatusStat, error) {
	return nil, nil
}

func (f *fakeCotizacionRepo) CountAll() (int, error) {
	return len(f.items), nil
}

type fakeClientRepo struct {
	items map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{items: map[string]*entity.Client{}}
}

func (f *fakeClientRepo) Create(c *entity.Client) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeClientRepo) GetByRUT(rut string) (*entity.Client, error) { return nil, nil }

func (f *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) { return nil, nil }

func (f *fakeClientRepo) List(search string, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) Count(search string) (int, error) { return len(f.items), nil }

func (f *fakeClientRepo) Update(c *entity.Client) error { return nil }

func (f *fakeClientRepo) Delete(id string) error { return nil }

// fakeTxRunner ejecuta el callback con los mismos repos en memoria. Si el
// callback falla, descarta las escrituras hechas dentro (simula el rollback).
type fakeTxRunner struct {
	solRepo *fakeSolicitudRepo
	cotRepo *fakeCotizacionRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	solRepo repository.SolicitudRepository,
	cotRepo repository.CotizacionRepository,
) error) error {
	solSnapshot := snapshotSolicitudes(r.solRepo.items)
	cotSnapshot := snapshotCotizaciones(r.cotRepo.items)
	if err := fn(r.solRepo, r.cotRepo); err != nil {
		r.solRepo.items = solSnapshot
		r.cotRepo.items = cotSnapshot
		return err
	}
	return nil
}

func snapshotSolicitudes(m map[string]*entity.Solicitud) map[string]*entity.Solicitud {
	out := make(map[string]*entity.Solicitud, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

func snapshotCotizaciones(m map[string]*entity.Cotizacion) map[string]*entity.Cotizacion {
	out := make(map[string]*entity.Cotizacion, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func buildFixture(t *testing.T) (*solicitud.UseCase, *fakeSolicitudRepo, *fakeCotizacionRepo, string, string) {
	t.Helper()
	solRepo := newFakeSolicitudRepo()
	cotRepo := newFakeCotizacionRepo()
	clientRepo := newFakeClientRepo()
	runner := &fakeTxRunner{solRepo: solRepo, cotRepo: cotRepo}

	clientID := uuid.New().String()
	clientRepo.items[clientID] = &entity.Client{
		ID:          clientID,
		RazonSocial: "Constructora Andes",
		RUT:         "76123456-7",
		Email:       "contacto@andes.cl",
	}

	solID := uuid.New().String()
	solRepo.items[solID] = &entity.Solicitud{
		ID:                   solID,
		ClientID:             clientID,
		NombreContacto:       "María Pérez",
		Telefono:             "+56 9 1234 5678",
		Email:                "maria@andes.cl",
		NombreObra:           "Edificio Los Aromos",
		UbicacionObra:        "Av. Central 1200",
		DescripcionServicios: "Ensayos de hormigón y densidad",
		Prioridad:            entity.PrioridadMedia,
		Status:               entity.SolicitudEnRevision,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	uc := solicitud.NewUseCase(runner, solRepo, cotRepo, clientRepo)
	return uc, solRepo, cotRepo, solID, clientID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Aprobar una solicitud en-revisión debe generar exactamente una cotización con
// monto cero y estado pendiente, enlazada desde la solicitud.
func TestAprobar_GeneraCotizacionPendiente(t *testing.T) {
	uc, solRepo, cotRepo, solID, clientID := buildFixture(t)

	out, err := uc.Aprobar(context.Background(), solID, "aprobada para ejecución", "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "Solicitud aprobada exitosamente", out.Message)
	assert.Equal(t, entity.SolicitudAprobada, out.Solicitud.Status)
	assert.Equal(t, entity.CotizacionPendiente, out.Cotizacion.Status)
	assert.True(t, out.Cotizacion.TotalAmount.IsZero(), "la cotización generada debe nacer con monto cero")

	// Exactamente una cotización, enlazada desde la solicitud.
	require.Len(t, cotRepo.items, 1)
	stored := solRepo.items[solID]
	assert.Equal(t, out.Cotizacion.ID, stored.CotizacionGeneradaID)

	cot := cotRepo.items[out.Cotizacion.ID]
	require.NotNil(t, cot)
	assert.Equal(t, clientID, cot.ClientID)
	require.Len(t, cot.Items, 1)
	assert.Equal(t, "Ensayos de hormigón y densidad", cot.Items[0].Servicio)
	assert.Equal(t, "Edificio Los Aromos", cot.Items[0].Obra)
	assert.Equal(t, "María Pérez", cot.Items[0].NombreContacto)
}

// Aprobar una solicitud ya procesada debe fallar sin mutar nada.
func TestAprobar_EstadoTerminal_NoMuta(t *testing.T) {
	uc, solRepo, cotRepo, solID, _ := buildFixture(t)
	solRepo.items[solID].Status = entity.SolicitudRechazada

	_, err := uc.Aprobar(context.Background(), solID, "", "admin-1")
	require.ErrorIs(t, err, domain.ErrInvalidState)

	assert.Equal(t, entity.SolicitudRechazada, solRepo.items[solID].Status)
	assert.Empty(t, cotRepo.items, "no debe quedar ninguna cotización generada")
}

// Si la actualización de la solicitud falla dentro de la transacción, la
// cotización creada debe descartarse con el rollback.
func TestAprobar_FalloEnUpdate_RollbackDeCotizacion(t *testing.T) {
	uc, solRepo, cotRepo, solID, _ := buildFixture(t)
	solRepo.failUpdate = true

	_, err := uc.Aprobar(context.Background(), solID, "", "admin-1")
	require.Error(t, err)

	assert.Empty(t, cotRepo.items, "el rollback debe descartar la cotización")
	assert.Equal(t, entity.SolicitudEnRevision, solRepo.items[solID].Status)
}

// Rechazar deja registro del aprobador y no genera cotización.
func TestRechazar_NoGeneraCotizacion(t *testing.T) {
	uc, solRepo, cotRepo, solID, _ := buildFixture(t)

	out, err := uc.Rechazar(solID, "falta información de la obra", "admin-2")
	require.NoError(t, err)

	assert.Equal(t, "Solicitud rechazada exitosamente", out.Message)
	assert.Equal(t, entity.SolicitudRechazada, out.Solicitud.Status)
	assert.Empty(t, cotRepo.items)
	assert.Equal(t, "admin-2", solRepo.items[solID].AprobadoPorID)
	assert.Equal(t, "falta información de la obra", solRepo.items[solID].Observaciones)
}

// Crear sin prioridad aplica Media por defecto.
func TestCreate_PrioridadPorDefecto(t *testing.T) {
	uc, _, _, _, clientID := buildFixture(t)

	out, err := uc.Create(dto.CreateSolicitudRequest{
		ClientID:             clientID,
		NombreContacto:       "Pedro Soto",
		Telefono:             "+56 9 8765 4321",
		Email:                "pedro@andes.cl",
		NombreObra:           "Bodega Norte",
		UbicacionObra:        "Ruta 5 km 12",
		DescripcionServicios: "Ensayo de compactación",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrioridadMedia, out.Prioridad)
	assert.Equal(t, entity.SolicitudEnRevision, out.Status)
}

// Crear contra un cliente inexistente falla con ClientNotFound.
func TestCreate_ClienteInexistente(t *testing.T) {
	uc, _, _, _, _ := buildFixture(t)

	_, err := uc.Create(dto.CreateSolicitudRequest{
		ClientID:             uuid.New().String(),
		NombreContacto:       "x",
		Telefono:             "x",
		Email:                "x@x.cl",
		NombreObra:           "x",
		UbicacionObra:        "x",
		DescripcionServicios: "x",
	})
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}
