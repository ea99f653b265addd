package dto

// ToggleFavoriteResponse resultado de alternar un favorito.
// Message replica los avisos de la vista original ("agregado" / "quitado").
type ToggleFavoriteResponse struct {
	ItemID   string `json:"item_id"`
	Favorite bool   `json:"favorite"`
	Message  string `json:"message"`
}

// FavoriteListResponse los favoritos de la sesión resueltos contra el catálogo.
type FavoriteListResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Total int                   `json:"total"`
}
