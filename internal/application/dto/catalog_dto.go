package dto

import "github.com/jhoicas/vitrina-api/internal/domain/entity"

// CatalogItemResponse un ítem del catálogo listo para mostrar.
// StockLabel y UnitsPerBox conservan el texto original de la hoja ("N/A" / "-"
// cuando la celda venía vacía), igual que la vista original.
type CatalogItemResponse struct {
	ID          string   `json:"id"`
	ProductName string   `json:"product_name"`
	SKU         string   `json:"sku"`
	Description string   `json:"description"`
	Supplier    string   `json:"supplier"`
	Dimension   string   `json:"dimension,omitempty"`
	Volume      string   `json:"volume,omitempty"`
	Memo        string   `json:"memo,omitempty"`
	Types       []string `json:"types"`
	StockLabel  string   `json:"stock_label"`
	InStock     bool     `json:"in_stock"`
	PictureURL  string   `json:"picture_url,omitempty"`
	UnitsPerBox string   `json:"units_per_box"`
	Favorite    bool     `json:"favorite"`
}

// CatalogListResponse resultado del catálogo filtrado más las facetas vigentes.
type CatalogListResponse struct {
	Items  []CatalogItemResponse `json:"items"`
	Facets []string              `json:"facets"`
	Total  int                   `json:"total"`
}

// FacetListResponse facetas de tipo del catálogo cargado.
type FacetListResponse struct {
	Facets []string `json:"facets"`
}

// ReloadResponse resultado de recargar el catálogo desde el remoto.
type ReloadResponse struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

// ToCatalogItemResponse convierte la entidad a su forma de presentación.
func ToCatalogItemResponse(item entity.CatalogItem, favorite bool) CatalogItemResponse {
	types := item.Types
	if types == nil {
		types = []string{}
	}
	return CatalogItemResponse{
		ID:          item.ID(),
		ProductName: item.ProductName,
		SKU:         item.SKU,
		Description: item.Description,
		Supplier:    item.Supplier,
		Dimension:   item.Dimension,
		Volume:      item.Volume,
		Memo:        item.Memo,
		Types:       types,
		StockLabel:  item.Stock.Label("N/A"),
		InStock:     item.InStock(),
		PictureURL:  item.PictureURL,
		UnitsPerBox: item.UnitsPerBox.Label("-"),
		Favorite:    favorite,
	}
}
