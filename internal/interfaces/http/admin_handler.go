package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
)

// AdminHandler maneja las peticiones HTTP del panel admin (protegido).
type AdminHandler struct {
	adminUC *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(adminUC *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// ListRestaurants godoc
// @Summary      Listar restaurantes con pricebook
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RestaurantListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/admin/restaurants [get]
func (h *AdminHandler) ListRestaurants(c *fiber.Ctx) error {
	out, err := h.adminUC.ListRestaurants(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar y enviar por email la vista de un restaurante
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExportRequest  true  "Restaurante objetivo"
// @Success      200  {object}  dto.StatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/admin/export [post]
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.adminUC.ExportCustomerView(c.Context(), in.Restaurant); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok", Message: "Exportado y enviado: " + in.Restaurant})
}
