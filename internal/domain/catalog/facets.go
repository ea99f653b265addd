package catalog

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// BuildFacets deriva las facetas de tipo: unión de todas las etiquetas `types`
// del catálogo, sin duplicados, ordenadas con colación de locale (equivalente
// al localeCompare del navegador). Determinista para un mismo catálogo.
//
// Las facetas alimentan los chips de filtro de la UI; el filtrado en sí usa el
// set de tipos seleccionados que mantiene el llamador (ver Filter).
func BuildFacets(items []entity.CatalogItem) []string {
	seen := make(map[string]struct{})
	facets := []string{}
	for _, item := range items {
		for _, t := range item.Types {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			facets = append(facets, t)
		}
	}
	collate.New(language.English, collate.Loose).SortStrings(facets)
	return facets
}
