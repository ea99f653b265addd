package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// OpenItemRequest apertura de una solicitud sobre un ítem concreto (precio / edición).
type OpenItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// PriceRequestForm formulario de solicitud de precio.
type PriceRequestForm struct {
	RestaurantName string `json:"restaurant_name" validate:"required"`
	ContactName    string `json:"contact_name"`
	ContactPhone   string `json:"contact_phone"`
	ContactEmail   string `json:"contact_email"`
	Notes          string `json:"notes"`
}

// SaveListForm formulario para guardar la lista de favoritos.
type SaveListForm struct {
	ListName       string             `json:"list_name" validate:"required"`
	RestaurantName string             `json:"restaurant_name" validate:"required"`
	ContactName    string             `json:"contact_name"`
	ContactPhone   string             `json:"contact_phone"`
	ContactEmail   string             `json:"contact_email"`
	Items          []SaveListItemForm `json:"items"`
}

// SaveListItemForm una fila de la lista con su cantidad.
type SaveListItemForm struct {
	ItemID   string   `json:"item_id"`
	Quantity Quantity `json:"quantity"`
}

// EditRequestForm formulario de solicitud de edición. Reason puede ir vacío.
type EditRequestForm struct {
	Reason string `json:"reason"`
}

// ListLineResponse una fila del estado de la solicitud de lista.
type ListLineResponse struct {
	ItemID      string `json:"item_id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// WorkflowResponse estado de una solicitud abierta.
type WorkflowResponse struct {
	Kind   string               `json:"kind"`   // price | list | edit
	Status string               `json:"status"` // open | closed
	Item   *CatalogItemResponse `json:"item,omitempty"`
	Lines  []ListLineResponse   `json:"lines,omitempty"`
}

// SubmitResponse resultado de un envío aceptado.
type SubmitResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

// Quantity cantidad tolerante: en el navegador el input llega como string y
// aquí puede venir como número o como string. Coerce aplica la misma regla que
// la vista original: no numérico o menor o igual a cero vale 1.
type Quantity struct {
	raw string
}

// UnmarshalJSON acepta número, string o null.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		q.raw = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		q.raw = s
		return nil
	}
	q.raw = string(b)
	return nil
}

// MarshalJSON serializa la cantidad ya coercionada.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Coerce())
}

// Coerce devuelve la cantidad como entero positivo, con 1 como valor por defecto.
func (q Quantity) Coerce() int {
	raw := strings.TrimSpace(q.raw)
	if raw == "" {
		return 1
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.GreaterThan(decimal.Zero) {
		return 1
	}
	n := int(d.IntPart())
	if n < 1 {
		return 1
	}
	return n
}
