package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgal-lab/sgal-api/internal/application/auth"
	"github.com/sgal-lab/sgal-api/internal/application/solicitud"
	"github.com/sgal-lab/sgal-api/internal/application/usecase"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
	apphttp "github.com/sgal-lab/sgal-api/internal/interfaces/http"
)

// fakeInvoiceRequestRepo repositorio en memoria para probar el router completo.
type fakeInvoiceRequestRepo struct {
	items map[string]*entity.InvoiceRequest
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

// buildRouterApp arma la aplicación con el router real y repos en memoria.
func buildRouterApp() *fiber.App {
	invoiceRepo := &fakeInvoiceRequestRepo{items: map[string]*entity.InvoiceRequest{
		"ir-1": {
			ID:             "ir-1",
			Solicitante:    "María González",
			Telefono:       "+56922222222",
			CorreoContacto: "maria@obra.cl",
			Obra:           "Puente Norte",
			Descripcion:    "Factura por ensayos",
			FechaSolicitud: time.Now(),
			Estado:         entity.InvoiceRequestPendiente,
			Observaciones:  "Sus comentarios.",
		},
	}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           auth.NewAuthUseCase(nil, nil, auth.JWTConfig{Secret: testJWTSecret, ExpHours: testExpHours, Issuer: testIssuer}),
		ClientUC:         usecase.NewClientUseCase(nil),
		GrupoUC:          usecase.NewGrupoUseCase(nil, nil),
		SolicitudUC:      solicitud.NewUseCase(nil, nil, nil, nil),
		CotizacionUC:     usecase.NewCotizacionUseCase(nil, nil, nil),
		InvoiceRequestUC: usecase.NewInvoiceRequestUseCase(invoiceRepo),
		JWTSecret:        testJWTSecret,
		Cookie:           apphttp.CookieConfig{ExpHours: testExpHours},
	})
	return app
}

// El listado público de solicitudes de facturación no exige cookie de sesión.
func TestInvoiceRequestsPublic_ListaSinCookie(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodGet, "/api/invoice-requests/public", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la ruta pública no debe exigir cookie de sesión")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "María González")
}

// El listado autenticado sigue gateado: sin cookie debe dar 403, no 404.
func TestInvoiceRequests_ListadoProtegido(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodGet, "/api/invoice-requests/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// El cambio de estado vive en PATCH /:id/status; sin cookie responde 403,
// lo que confirma que la ruta está registrada.
func TestInvoiceRequests_RutaStatusRegistrada(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodPatch, "/api/invoice-requests/ir-1/status", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"la ruta /status debe existir y exigir sesión")
}

// GET /auth/me devuelve la identidad del token sin tocar la base.
func TestAuthMe_DevuelveIdentidadDelToken(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.CookieName, Value: tokenForRole(t, "admin")})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["userId"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMe_SinCookie_Retorna403(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}
