package ports

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// CatalogSource origen del catálogo: el Web App de Apps Script sobre la hoja de cálculo.
type CatalogSource interface {
	// FetchCatalog trae el catálogo completo. Falla con domain.ErrCatalogUnavailable
	// (envuelto) si la llamada no completa o el remoto responde success:false.
	FetchCatalog(ctx context.Context) ([]entity.CatalogItem, error)
}

// RequestSubmitter envío de solicitudes al endpoint remoto.
//
// El contrato es fire-and-forget: el endpoint está desplegado para navegadores
// en modo no-cors y su respuesta POST no trae un resultado legible por máquina,
// así que Submit reporta éxito si y solo si el round-trip HTTP completa. Un
// fallo de transporte retorna domain.ErrTransport (envuelto) y el llamador
// conserva los datos para reintento.
type RequestSubmitter interface {
	Submit(ctx context.Context, payload any) error
}

// PricebookAdmin operaciones del panel admin contra el endpoint remoto.
// Un campo `error` en la respuesta JSON se devuelve como domain.ErrRemote
// con el mensaje textual del remoto.
type PricebookAdmin interface {
	ListRestaurants(ctx context.Context) ([]string, error)
	// ExportCustomerView dispara en el remoto la exportación y envío por email
	// de la vista de cliente del restaurante dado.
	ExportCustomerView(ctx context.Context, restaurant string) error
}

// ── Payloads de solicitud (formato de cable del Apps Script, camelCase) ───────

// PriceRequestPayload solicitud de precio sobre un ítem.
type PriceRequestPayload struct {
	Action         string `json:"action"` // siempre "priceRequest"
	RequestID      string `json:"requestId"`
	ItemID         string `json:"itemId"`
	SKU            string `json:"sku"`
	ProductName    string `json:"productName"`
	RestaurantName string `json:"restaurantName"`
	ContactName    string `json:"contactName"`
	ContactPhone   string `json:"contactPhone"`
	ContactEmail   string `json:"contactEmail"`
	Notes          string `json:"notes"`
}

// SaveListPayload lista de compras guardada por el usuario.
type SaveListPayload struct {
	Action         string                `json:"action"` // siempre "saveList"
	RequestID      string                `json:"requestId"`
	ListName       string                `json:"listName"`
	RestaurantName string                `json:"restaurantName"`
	ContactName    string                `json:"contactName"`
	ContactPhone   string                `json:"contactPhone"`
	ContactEmail   string                `json:"contactEmail"`
	Items          []SaveListPayloadItem `json:"items"`
}

// SaveListPayloadItem una fila de la lista.
type SaveListPayloadItem struct {
	ItemID      string `json:"itemId"`
	SKU         string `json:"sku"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// EditRequestPayload solicitud de corrección de un ítem del catálogo.
type EditRequestPayload struct {
	Action      string `json:"action"` // siempre "editRequest"
	RequestID   string `json:"requestId"`
	ItemID      string `json:"itemId"`
	SKU         string `json:"sku"`
	ProductName string `json:"productName"`
	Reason      string `json:"reason"`
}
