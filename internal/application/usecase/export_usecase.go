package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// ExportFile archivo renderizado listo para descargar.
type ExportFile struct {
	Content     []byte
	ContentType string
	FileName    string
}

// ExportUseCase exportación local de la lista de favoritos como archivo
// descargable (XLSX o PDF). El equivalente remoto (exportar y enviar por email
// la vista de un restaurante) vive en AdminUseCase; esto le da al usuario del
// catálogo una copia local inmediata.
type ExportUseCase struct {
	catalogUC   *CatalogUseCase
	favoritesUC *FavoritesUseCase
	renderers   map[string]ports.ListRenderer // formato -> renderer
	log         *logger.Logger
}

// NewExportUseCase construye el caso de uso con los renderers disponibles por formato.
func NewExportUseCase(catalogUC *CatalogUseCase, favoritesUC *FavoritesUseCase, renderers map[string]ports.ListRenderer, log *logger.Logger) *ExportUseCase {
	return &ExportUseCase{catalogUC: catalogUC, favoritesUC: favoritesUC, renderers: renderers, log: log}
}

// ExportFavorites resuelve los favoritos de la sesión contra el catálogo y los
// renderiza en el formato pedido. Cantidad 1 por fila, igual que una lista
// recién abierta.
func (uc *ExportUseCase) ExportFavorites(ctx context.Context, sessionID, format string) (*ExportFile, error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, domain.NewValidationError(fmt.Sprintf("formato de exportación no soportado: %q", format))
	}

	favs := uc.favoritesUC.ForSession(sessionID)
	export := ports.ListExport{
		Title:       "Lista de favoritos",
		GeneratedAt: time.Now(),
	}
	for _, item := range uc.catalogUC.Snapshot() {
		if !favs.Contains(item.ID()) {
			continue
		}
		export.Lines = append(export.Lines, ports.ListExportLine{
			ItemID:      item.ID(),
			SKU:         item.SKU,
			ProductName: item.ProductName,
			Supplier:    item.Supplier,
			StockLabel:  item.Stock.Label("N/A"),
			Quantity:    1,
		})
	}
	if len(export.Lines) == 0 {
		return nil, domain.ErrNoFavorites
	}

	content, err := renderer.Render(ctx, export)
	if err != nil {
		return nil, fmt.Errorf("renderizar lista (%s): %w", format, err)
	}
	uc.log.Info().Str("format", format).Int("lines", len(export.Lines)).Msg("lista de favoritos exportada")

	return &ExportFile{
		Content:     content,
		ContentType: renderer.ContentType(),
		FileName:    fmt.Sprintf("favoritos-%s.%s", export.GeneratedAt.Format("20060102"), renderer.FileExt()),
	}, nil
}
