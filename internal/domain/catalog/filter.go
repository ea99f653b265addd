// Package catalog contiene la lógica pura de filtrado y facetas del catálogo.
// No toca red ni estado: funciones deterministas sobre el catálogo en memoria.
package catalog

import (
	"strings"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// FilterConfig configuración de filtro derivada del estado de la UI en cada cambio.
// Es un objeto valor: se recalcula, se consume y se descarta; no se persiste.
type FilterConfig struct {
	SearchText    string
	SelectedTypes []string
	InStockOnly   bool
	FavoritesOnly bool
}

// Favorites acceso de solo lectura al set de favoritos de la sesión.
type Favorites interface {
	Contains(itemID string) bool
}

// Filter devuelve el subconjunto visible del catálogo: AND de los predicados
// activos, preservando el orden original (filtro estable, sin reordenar).
// Catálogo vacío o todo filtrado produce un resultado vacío válido.
func Filter(items []entity.CatalogItem, cfg FilterConfig, favs Favorites) []entity.CatalogItem {
	search := strings.ToLower(strings.TrimSpace(cfg.SearchText))
	selected := make(map[string]struct{}, len(cfg.SelectedTypes))
	for _, t := range cfg.SelectedTypes {
		selected[t] = struct{}{}
	}

	out := make([]entity.CatalogItem, 0, len(items))
	for _, item := range items {
		if search != "" && !strings.Contains(haystack(item), search) {
			continue
		}
		if len(selected) > 0 && !matchesAnyType(item.Types, selected) {
			continue
		}
		if cfg.InStockOnly && !item.InStock() {
			continue
		}
		if cfg.FavoritesOnly && (favs == nil || !favs.Contains(item.ID())) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// haystack concatena los campos buscables en minúsculas, separados por espacio.
// Incluye las etiquetas de tipo: la versión original buscaba un campo singular
// `type` que nunca existió, así que la búsqueda jamás encontraba por tipo; aquí
// se corrige a propósito usando la lista `types`.
func haystack(item entity.CatalogItem) string {
	fields := []string{
		item.ProductName,
		item.Description,
		item.Supplier,
		item.SKU,
		item.Dimension,
		item.Volume,
		strings.Join(item.Types, " "),
		item.Memo,
	}
	nonEmpty := fields[:0]
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.ToLower(strings.Join(nonEmpty, " "))
}

// matchesAnyType semántica OR: basta con que un tipo del ítem esté seleccionado.
func matchesAnyType(itemTypes []string, selected map[string]struct{}) bool {
	for _, t := range itemTypes {
		if _, ok := selected[t]; ok {
			return true
		}
	}
	return false
}
