package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain/catalog"
)

// CatalogHandler maneja las peticiones HTTP del catálogo.
type CatalogHandler struct {
	catalogUC   *usecase.CatalogUseCase
	favoritesUC *usecase.FavoritesUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, favoritesUC *usecase.FavoritesUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, favoritesUC: favoritesUC}
}

// List godoc
// @Summary      Listar el catálogo filtrado
// @Tags         catalog
// @Produce      json
// @Param        search     query  string  false  "Texto de búsqueda"
// @Param        types      query  string  false  "Tipos seleccionados, separados por coma"
// @Param        in_stock   query  bool    false  "Solo con stock"
// @Param        favorites  query  bool    false  "Solo favoritos"
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	cfg := catalog.FilterConfig{
		SearchText:    c.Query("search"),
		SelectedTypes: splitTypes(c.Query("types")),
		InStockOnly:   c.QueryBool("in_stock"),
		FavoritesOnly: c.QueryBool("favorites"),
	}
	favs := h.favoritesUC.ForSession(GetSessionID(c))
	return c.JSON(h.catalogUC.List(cfg, favs))
}

// GetByID godoc
// @Summary      Obtener un ítem del catálogo
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.CatalogItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := h.catalogUC.Find(id)
	if err != nil {
		return respondError(c, err)
	}
	fav := h.favoritesUC.Contains(GetSessionID(c), item.ID())
	return c.JSON(dto.ToCatalogItemResponse(item, fav))
}

// Facets godoc
// @Summary      Facetas de tipo del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.FacetListResponse
// @Router       /api/catalog/facets [get]
func (h *CatalogHandler) Facets(c *fiber.Ctx) error {
	return c.JSON(dto.FacetListResponse{Facets: h.catalogUC.Facets()})
}

// Reload godoc
// @Summary      Recargar el catálogo desde el endpoint remoto
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ReloadResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog/reload [post]
func (h *CatalogHandler) Reload(c *fiber.Ctx) error {
	total, err := h.catalogUC.Reload(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReloadResponse{Status: "ok", Total: total})
}

// splitTypes parsea el parámetro types (lista separada por comas, entradas vacías fuera).
func splitTypes(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
