package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
)

// FavoritesHandler maneja las peticiones HTTP de favoritos de la sesión.
type FavoritesHandler struct {
	catalogUC   *usecase.CatalogUseCase
	favoritesUC *usecase.FavoritesUseCase
	exportUC    *usecase.ExportUseCase
}

// NewFavoritesHandler construye el handler.
func NewFavoritesHandler(catalogUC *usecase.CatalogUseCase, favoritesUC *usecase.FavoritesUseCase, exportUC *usecase.ExportUseCase) *FavoritesHandler {
	return &FavoritesHandler{catalogUC: catalogUC, favoritesUC: favoritesUC, exportUC: exportUC}
}

// List godoc
// @Summary      Favoritos de la sesión resueltos contra el catálogo
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  dto.FavoriteListResponse
// @Router       /api/favorites [get]
func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	favs := h.favoritesUC.ForSession(sid)

	items := []dto.CatalogItemResponse{}
	for _, item := range h.catalogUC.Snapshot() {
		if favs.Contains(item.ID()) {
			items = append(items, dto.ToCatalogItemResponse(item, true))
		}
	}
	return c.JSON(dto.FavoriteListResponse{Items: items, Total: len(items)})
}

// Toggle godoc
// @Summary      Alternar un favorito
// @Tags         favorites
// @Produce      json
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ToggleFavoriteResponse
// @Router       /api/favorites/{itemId}/toggle [post]
func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "itemId es requerido"})
	}
	// No se exige que el ítem exista en el catálogo vigente: los favoritos
	// sobreviven recargas y un ítem puede desaparecer de la hoja.
	added := h.favoritesUC.Toggle(GetSessionID(c), itemID)
	msg := "Quitado de favoritos."
	if added {
		msg = "Agregado a favoritos."
	}
	return c.JSON(dto.ToggleFavoriteResponse{ItemID: itemID, Favorite: added, Message: msg})
}

// Export godoc
// @Summary      Descargar la lista de favoritos como archivo
// @Tags         favorites
// @Produce      application/octet-stream
// @Param        format  query  string  false  "xlsx o pdf"  default(xlsx)
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/favorites/export [get]
func (h *FavoritesHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", "xlsx")
	file, err := h.exportUC.ExportFavorites(c.Context(), GetSessionID(c), format)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)
	return c.Send(file.Content)
}
