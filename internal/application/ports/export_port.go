package ports

import (
	"context"
	"time"
)

// ListExport datos ya resueltos de una lista para renderizar como archivo descargable.
type ListExport struct {
	Title       string
	GeneratedAt time.Time
	Lines       []ListExportLine
}

// ListExportLine una fila de la exportación.
type ListExportLine struct {
	ItemID      string
	SKU         string
	ProductName string
	Supplier    string
	StockLabel  string
	Quantity    int
}

// ListRenderer renderiza una lista a un formato de archivo concreto (XLSX, PDF).
type ListRenderer interface {
	Render(ctx context.Context, export ListExport) ([]byte, error)
	ContentType() string
	FileExt() string
}
