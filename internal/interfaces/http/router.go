package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sgal-lab/sgal-api/internal/application/auth"
	"github.com/sgal-lab/sgal-api/internal/application/solicitud"
	"github.com/sgal-lab/sgal-api/internal/application/usecase"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ClientUC         *usecase.ClientUseCase
	GrupoUC          *usecase.GrupoUseCase
	SolicitudUC      *solicitud.UseCase
	CotizacionUC     *usecase.CotizacionUseCase
	InvoiceRequestUC *usecase.InvoiceRequestUseCase
	JWTSecret        string
	Cookie           CookieConfig
}

// Router registra las rutas de la API. Las rutas de escritura administrativa
// van gateadas con RequireRole(admin); el resto solo exige sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	admin := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTSecret, deps.Cookie)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/verify", authHandler.Verify)
	authGroup.Post("/register", AuthRequired(deps.JWTSecret), admin, authHandler.Register)
	authGroup.Get("/profile", AuthRequired(deps.JWTSecret), authHandler.Profile)
	authGroup.Get("/me", AuthRequired(deps.JWTSecret), authHandler.Me)
	authGroup.Get("/users", AuthRequired(deps.JWTSecret), admin, authHandler.ListUsers)
	authGroup.Put("/users/:id", AuthRequired(deps.JWTSecret), admin, authHandler.UpdateUser)
	authGroup.Delete("/users/:id", AuthRequired(deps.JWTSecret), admin, authHandler.DeleteUser)

	// Solicitudes de facturación: el listado público queda fuera de la sesión.
	invoiceRequestHandler := NewInvoiceRequestHandler(deps.InvoiceRequestUC)
	api.Get("/invoice-requests/public", invoiceRequestHandler.List)

	// Rutas protegidas (requieren cookie de sesión)
	protected := api.Group("/", AuthRequired(deps.JWTSecret))

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", admin, clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", admin, clientHandler.Update)
	clients.Delete("/:id", admin, clientHandler.Delete)

	// Grupos
	grupos := protected.Group("/grupos")
	grupoHandler := NewGrupoHandler(deps.GrupoUC)
	grupos.Get("/", grupoHandler.List)
	grupos.Post("/", admin, grupoHandler.Create)
	grupos.Get("/:id", grupoHandler.GetByID)
	grupos.Put("/:id", admin, grupoHandler.Update)
	grupos.Delete("/:id", admin, grupoHandler.Delete)
	grupos.Post("/:id/miembros", admin, grupoHandler.AddMiembro)
	grupos.Delete("/:id/miembros/:userId", admin, grupoHandler.RemoveMiembro)

	// Solicitudes (stats antes de :id para que Fiber no lo capture como parámetro)
	solicitudes := protected.Group("/solicitudes")
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC)
	solicitudes.Get("/stats", admin, solicitudHandler.Stats)
	solicitudes.Get("/", solicitudHandler.List)
	solicitudes.Post("/", solicitudHandler.Create)
	solicitudes.Get("/:id", solicitudHandler.GetByID)
	solicitudes.Patch("/:id/aprobar", admin, solicitudHandler.Aprobar)
	solicitudes.Patch("/:id/rechazar", admin, solicitudHandler.Rechazar)

	// Cotizaciones
	cotizaciones := protected.Group("/cotizaciones")
	cotizacionHandler := NewCotizacionHandler(deps.CotizacionUC)
	cotizaciones.Get("/stats", admin, cotizacionHandler.Stats)
	cotizaciones.Get("/", cotizacionHandler.List)
	cotizaciones.Post("/", cotizacionHandler.Create)
	cotizaciones.Get("/:id", cotizacionHandler.GetByID)
	cotizaciones.Get("/:id/pdf", cotizacionHandler.PDF)
	cotizaciones.Put("/:id", cotizacionHandler.Update)
	cotizaciones.Patch("/:id/status", cotizacionHandler.UpdateStatus)
	cotizaciones.Delete("/:id", admin, cotizacionHandler.Delete)

	// Solicitudes de facturación (autenticadas)
	invoiceRequests := protected.Group("/invoice-requests")
	invoiceRequests.Get("/", invoiceRequestHandler.List)
	invoiceRequests.Post("/", invoiceRequestHandler.Create)
	invoiceRequests.Get("/:id", invoiceRequestHandler.GetByID)
	invoiceRequests.Put("/:id", invoiceRequestHandler.Update)
	invoiceRequests.Patch("/:id/status", invoiceRequestHandler.UpdateEstado)
	invoiceRequests.Delete("/:id", admin, invoiceRequestHandler.Delete)
}
