// Package excel renderiza una lista como libro XLSX, el formato natural para
// un negocio que vive en hojas de cálculo.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
)

// Verificar en tiempo de compilación que ListRenderer implementa el puerto.
var _ ports.ListRenderer = (*ListRenderer)(nil)

// ListRenderer renderer XLSX basado en excelize con StreamWriter.
type ListRenderer struct{}

// NewListRenderer construye el renderer.
func NewListRenderer() *ListRenderer { return &ListRenderer{} }

// Render produce el libro con una fila por línea de la lista.
func (r *ListRenderer) Render(_ context.Context, export ports.ListExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: stream writer: %w", err)
	}

	header := []any{"Item ID", "SKU", "Producto", "Proveedor", "Stock", "Cantidad"}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("excel: encabezado: %w", err)
	}
	for i, line := range export.Lines {
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		row := []any{line.ItemID, line.SKU, line.ProductName, line.Supplier, line.StockLabel, line.Quantity}
		if err := sw.SetRow(cellAddr, row); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("excel: flush: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType tipo MIME del XLSX.
func (r *ListRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExt extensión del archivo.
func (r *ListRenderer) FileExt() string { return "xlsx" }
