package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
)

// AuthHandler maneja el login del panel admin.
type AuthHandler struct {
	authUC *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(authUC *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login godoc
// @Summary      Login del panel admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credencial"
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password es requerido"})
	}
	out, err := h.authUC.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
