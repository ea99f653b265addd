package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	FavoritesUC *usecase.FavoritesUseCase
	RequestUC   *usecase.RequestUseCase
	ExportUC    *usecase.ExportUseCase
	AdminUC     *usecase.AdminUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas del catálogo (públicas, con sesión por cookie)
	session := api.Group("/", SessionMiddleware())

	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.FavoritesUC)
	catalogGroup := session.Group("/catalog")
	catalogGroup.Get("/", catalogHandler.List)
	catalogGroup.Get("/facets", catalogHandler.Facets)
	catalogGroup.Post("/reload", catalogHandler.Reload)
	catalogGroup.Get("/:id", catalogHandler.GetByID)

	favoritesHandler := NewFavoritesHandler(deps.CatalogUC, deps.FavoritesUC, deps.ExportUC)
	favoritesGroup := session.Group("/favorites")
	favoritesGroup.Get("/", favoritesHandler.List)
	favoritesGroup.Get("/export", favoritesHandler.Export)
	favoritesGroup.Post("/:itemId/toggle", favoritesHandler.Toggle)

	requestHandler := NewRequestHandler(deps.RequestUC)
	requestsGroup := session.Group("/requests")
	requestsGroup.Post("/price/open", requestHandler.OpenPrice)
	requestsGroup.Post("/price", requestHandler.SubmitPrice)
	requestsGroup.Post("/edit/open", requestHandler.OpenEdit)
	requestsGroup.Post("/edit", requestHandler.SubmitEdit)
	requestsGroup.Post("/list/open", requestHandler.OpenList)
	requestsGroup.Post("/list", requestHandler.SubmitList)
	requestsGroup.Post("/:kind/cancel", requestHandler.Cancel)

	// Panel admin: login público, el resto requiere Bearer Token
	adminGroup := api.Group("/admin")
	authHandler := NewAuthHandler(deps.AuthUC)
	adminGroup.Post("/login", authHandler.Login)

	protected := adminGroup.Group("/", AuthMiddleware(deps.JWTSecret))
	adminHandler := NewAdminHandler(deps.AdminUC)
	protected.Get("/restaurants", adminHandler.ListRestaurants)
	protected.Post("/export", adminHandler.Export)
}
