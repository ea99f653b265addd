// Package pdf renderiza una lista de favoritos como documento imprimible:
// título, fecha de generación, tabla de ítems y conteo al pie.
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Verificar en tiempo de compilación que MarotoListRenderer implementa el puerto.
var _ ports.ListRenderer = (*MarotoListRenderer)(nil)

// MarotoListRenderer renderer PDF basado en Maroto v2.
type MarotoListRenderer struct{}

// NewMarotoListRenderer construye el renderer.
func NewMarotoListRenderer() *MarotoListRenderer { return &MarotoListRenderer{} }

// Render genera el PDF y devuelve sus bytes.
func (r *MarotoListRenderer) Render(_ context.Context, export ports.ListExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(export.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(export))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, lr := range lineRows(export.Lines) {
		m.AddRows(lr)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(export.Lines)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ContentType tipo MIME del PDF.
func (r *MarotoListRenderer) ContentType() string { return "application/pdf" }

// FileExt extensión del archivo.
func (r *MarotoListRenderer) FileExt() string { return "pdf" }

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: título de la lista (izq) y fecha de generación (der).
func titleRow(export ports.ListExport) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(export.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generada: "+export.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("SKU", 2, align.Left),
		h("Proveedor", 2, align.Left),
		h("Stock", 2, align.Right),
	)
}

// lineRows: una fila por línea de la lista.
func lineRows(lines []ports.ListExportLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.SKU,
				props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				l.Supplier,
				props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				l.StockLabel,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: conteo total de ítems.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d ítems en la lista", total), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}
