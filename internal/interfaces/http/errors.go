package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
)

// respondError traduce los errores de dominio a la respuesta HTTP.
// Ningún error aquí es fatal para la sesión: validación y transporte dejan la
// solicitud abierta para reintento, y un catálogo caído se reintenta recargando.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado en el catálogo"})
	case errors.Is(err, domain.ErrNoFavorites):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_FAVORITES", Message: "aún no hay favoritos; agrega ítems primero"})
	case errors.Is(err, domain.ErrWorkflowNotOpen):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "WORKFLOW_NOT_OPEN", Message: "no hay una solicitud abierta de ese tipo"})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "LOAD_ERROR", Message: err.Error()})
	case errors.Is(err, domain.ErrTransport):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "TRANSPORT", Message: "no se pudo contactar el endpoint remoto; reintenta"})
	case errors.Is(err, domain.ErrRemote):
		// El mensaje remoto se muestra textual (solo rutas admin).
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
