package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/vitrina-api/internal/infrastructure/excel"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/vitrina-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/vitrina-api/internal/interfaces/http"
	"github.com/jhoicas/vitrina-api/pkg/config"
	"github.com/jhoicas/vitrina-api/pkg/logger"
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

	sheetsClient := sheets.NewClient(cfg.Sheets.EndpointURL, cfg.Sheets.Timeout(), log)

	favoritesStore, err := localstore.NewFavoritesStore(cfg.Store.FavoritesDir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de favoritos")
	}

	catalogUC := usecase.NewCatalogUseCase(sheetsClient, log)
	favoritesUC := usecase.NewFavoritesUseCase(favoritesStore, log)
	requestUC := usecase.NewRequestUseCase(catalogUC, favoritesUC, sheetsClient, log)
	exportUC := usecase.NewExportUseCase(catalogUC, favoritesUC, map[string]ports.ListRenderer{
		"xlsx": infraexcel.NewListRenderer(),
		"pdf":  infrapdf.NewMarotoListRenderer(),
	}, log)
	adminUC := usecase.NewAdminUseCase(sheetsClient, log)
	authUC := auth.NewAuthUseCase(cfg.Admin.PasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Carga inicial del catálogo. Si el endpoint remoto no responde arrancamos
	// igual: el catálogo queda vacío y se puede recargar vía POST /api/catalog/reload.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Sheets.Timeout())
	if n, err := catalogUC.Reload(loadCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial del catálogo")
	} else {
		log.Info().Int("items", n).Msg("catálogo cargado")
	}
	cancelLoad()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vitrina API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		FavoritesUC: favoritesUC,
		RequestUC:   requestUC,
		ExportUC:    exportUC,
		AdminUC:     adminUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
