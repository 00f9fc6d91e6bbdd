package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sgal-lab/sgal-api/internal/application/auth"
	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/application/solicitud"
	"github.com/sgal-lab/sgal-api/internal/application/usecase"
	infrapdf "github.com/sgal-lab/sgal-api/internal/infrastructure/pdf"
	"github.com/sgal-lab/sgal-api/internal/infrastructure/postgres"
	httpRouter "github.com/sgal-lab/sgal-api/internal/interfaces/http"
	"github.com/sgal-lab/sgal-api/pkg/config"
	"github.com/sgal-lab/sgal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	grupoRepo := postgres.NewGrupoRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)
	cotizacionRepo := postgres.NewCotizacionRepository(pool)
	invoiceRequestRepo := postgres.NewInvoiceRequestRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, grupoRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo)
	grupoUC := usecase.NewGrupoUseCase(grupoRepo, userRepo)
	solicitudUC := solicitud.NewUseCase(txRunner, solicitudRepo, cotizacionRepo, clientRepo)

	// PDF: documento imprimible de la cotización
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	cotizacionUC := usecase.NewCotizacionUseCase(cotizacionRepo, clientRepo, pdfGenerator)
	invoiceRequestUC := usecase.NewInvoiceRequestUseCase(invoiceRequestRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ClientUC:         clientUC,
		GrupoUC:          grupoUC,
		SolicitudUC:      solicitudUC,
		CotizacionUC:     cotizacionUC,
		InvoiceRequestUC: invoiceRequestUC,
		JWTSecret:        cfg.JWT.Secret,
		Cookie: httpRouter.CookieConfig{
			ExpHours: cfg.JWT.ExpHours,
			Secure:   cfg.JWT.CookieSecure,
		},
	})

	// Fallback 404 en JSON para rutas no registradas.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
