package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
)

// RequestHandler maneja las tres solicitudes del catálogo (precio, lista, edición).
// Abrir congela el ítem (o los favoritos) en la solicitud; enviar valida y
// dispara el fire-and-forget hacia el endpoint remoto.
type RequestHandler struct {
	requestUC *usecase.RequestUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(requestUC *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{requestUC: requestUC}
}

// OpenPrice godoc
// @Summary      Abrir una solicitud de precio
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenItemRequest  true  "Ítem objetivo"
// @Success      200  {object}  dto.WorkflowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requests/price/open [post]
func (h *RequestHandler) OpenPrice(c *fiber.Ctx) error {
	var in dto.OpenItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id es requerido"})
	}
	out, err := h.requestUC.OpenPrice(GetSessionID(c), in.ItemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SubmitPrice godoc
// @Summary      Enviar la solicitud de precio abierta
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PriceRequestForm  true  "Formulario"
// @Success      200  {object}  dto.SubmitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/requests/price [post]
func (h *RequestHandler) SubmitPrice(c *fiber.Ctx) error {
	var in dto.PriceRequestForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.requestUC.SubmitPrice(c.Context(), GetSessionID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OpenEdit godoc
// @Summary      Abrir una solicitud de edición
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenItemRequest  true  "Ítem objetivo"
// @Success      200  {object}  dto.WorkflowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requests/edit/open [post]
func (h *RequestHandler) OpenEdit(c *fiber.Ctx) error {
	var in dto.OpenItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id es requerido"})
	}
	out, err := h.requestUC.OpenEdit(GetSessionID(c), in.ItemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SubmitEdit godoc
// @Summary      Enviar la solicitud de edición abierta
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EditRequestForm  true  "Formulario (reason opcional)"
// @Success      200  {object}  dto.SubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/requests/edit [post]
func (h *RequestHandler) SubmitEdit(c *fiber.Ctx) error {
	var in dto.EditRequestForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.requestUC.SubmitEdit(c.Context(), GetSessionID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OpenList godoc
// @Summary      Abrir la solicitud de guardar lista (congela los favoritos)
// @Tags         requests
// @Produce      json
// @Success      200  {object}  dto.WorkflowResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requests/list/open [post]
func (h *RequestHandler) OpenList(c *fiber.Ctx) error {
	out, err := h.requestUC.OpenList(GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SubmitList godoc
// @Summary      Enviar la lista abierta
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveListForm  true  "Formulario"
// @Success      200  {object}  dto.SubmitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/requests/list [post]
func (h *RequestHandler) SubmitList(c *fiber.Ctx) error {
	var in dto.SaveListForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.requestUC.SubmitList(c.Context(), GetSessionID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar la solicitud abierta del tipo dado
// @Tags         requests
// @Produce      json
// @Param        kind  path  string  true  "price | list | edit"
// @Success      200  {object}  dto.WorkflowResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requests/{kind}/cancel [post]
func (h *RequestHandler) Cancel(c *fiber.Ctx) error {
	kind := c.Params("kind")
	switch kind {
	case usecase.KindPrice, usecase.KindList, usecase.KindEdit:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_KIND", Message: "tipo de solicitud desconocido: " + kind})
	}
	out, err := h.requestUC.Cancel(GetSessionID(c), kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
