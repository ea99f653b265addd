package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/catalog"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// CatalogUseCase mantiene el catálogo en memoria durante la sesión del servicio.
// El catálogo es inmutable una vez cargado; Reload lo reemplaza de forma atómica
// junto con las facetas derivadas. Si la recarga falla, el catálogo anterior
// queda intacto y el usuario puede reintentar.
type CatalogUseCase struct {
	source ports.CatalogSource
	log    *logger.Logger

	mu       sync.RWMutex
	items    []entity.CatalogItem
	facets   []string
	loadedAt time.Time
}

// NewCatalogUseCase construye el caso de uso. El catálogo inicia vacío hasta el primer Reload.
func NewCatalogUseCase(source ports.CatalogSource, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{source: source, log: log, items: []entity.CatalogItem{}, facets: []string{}}
}

// Reload trae el catálogo completo del remoto y lo reemplaza atómicamente.
// Devuelve la cantidad de ítems cargados.
func (uc *CatalogUseCase) Reload(ctx context.Context) (int, error) {
	items, err := uc.source.FetchCatalog(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("recarga de catálogo fallida")
		return 0, err
	}
	facets := catalog.BuildFacets(items)

	uc.mu.Lock()
	uc.items = items
	uc.facets = facets
	uc.loadedAt = time.Now()
	uc.mu.Unlock()

	uc.log.Info().Int("items", len(items)).Int("facets", len(facets)).Msg("catálogo cargado")
	return len(items), nil
}

// Snapshot devuelve el catálogo vigente. El slice no debe mutarse.
func (uc *CatalogUseCase) Snapshot() []entity.CatalogItem {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.items
}

// Facets devuelve las facetas de tipo del catálogo vigente.
func (uc *CatalogUseCase) Facets() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.facets
}

// Find busca un ítem por id (forma string, sin importar cómo vino de la hoja).
func (uc *CatalogUseCase) Find(itemID string) (entity.CatalogItem, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, item := range uc.items {
		if item.ID() == itemID {
			return item, nil
		}
	}
	return entity.CatalogItem{}, domain.ErrNotFound
}

// List aplica el filtro sobre el catálogo vigente y arma la respuesta con facetas.
func (uc *CatalogUseCase) List(cfg catalog.FilterConfig, favs catalog.Favorites) *dto.CatalogListResponse {
	items := uc.Snapshot()
	visible := catalog.Filter(items, cfg, favs)

	out := make([]dto.CatalogItemResponse, 0, len(visible))
	for _, item := range visible {
		fav := favs != nil && favs.Contains(item.ID())
		out = append(out, dto.ToCatalogItemResponse(item, fav))
	}
	return &dto.CatalogListResponse{
		Items:  out,
		Facets: uc.Facets(),
		Total:  len(out),
	}
}
