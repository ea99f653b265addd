package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// AdminUseCase operaciones del panel admin: listar restaurantes y disparar la
// exportación con envío de email del lado remoto. Ambas son llamadas legibles
// (a diferencia de las solicitudes del catálogo): un campo error del remoto se
// muestra textual al usuario.
type AdminUseCase struct {
	admin ports.PricebookAdmin
	log   *logger.Logger
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(admin ports.PricebookAdmin, log *logger.Logger) *AdminUseCase {
	return &AdminUseCase{admin: admin, log: log}
}

// ListRestaurants lista los restaurantes con pricebook en la hoja.
func (uc *AdminUseCase) ListRestaurants(ctx context.Context) (*dto.RestaurantListResponse, error) {
	names, err := uc.admin.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestaurantResponse, 0, len(names))
	for _, n := range names {
		out = append(out, dto.RestaurantResponse{Restaurant: n})
	}
	return &dto.RestaurantListResponse{Restaurants: out, Total: len(out)}, nil
}

// ExportCustomerView dispara en el remoto la exportación y el email de la vista
// de cliente del restaurante. El efecto ocurre del lado remoto; aquí solo se
// reporta el resultado.
func (uc *AdminUseCase) ExportCustomerView(ctx context.Context, restaurant string) error {
	restaurant = strings.TrimSpace(restaurant)
	if restaurant == "" {
		return domain.NewValidationError("el restaurante es requerido")
	}
	if err := uc.admin.ExportCustomerView(ctx, restaurant); err != nil {
		return err
	}
	uc.log.Info().Str("restaurant", restaurant).Msg("exportación remota disparada")
	return nil
}
