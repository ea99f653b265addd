package dto

// LoginRequest credencial del panel admin.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión admin.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}

// RestaurantResponse una fila del listado de restaurantes (pricebooks).
type RestaurantResponse struct {
	Restaurant string `json:"restaurant"`
}

// RestaurantListResponse listado de restaurantes del panel admin.
type RestaurantListResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	Total       int                  `json:"total"`
}

// ExportRequest dispara la exportación y envío por email de la vista de un restaurante.
type ExportRequest struct {
	Restaurant string `json:"restaurant" validate:"required"`
}
