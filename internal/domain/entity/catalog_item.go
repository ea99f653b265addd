package entity

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogItem representa un ítem del catálogo tal como lo entrega la hoja de cálculo remota.
// Es de solo lectura para este servicio: la hoja es el sistema de registro.
// Los campos numéricos llegan sin tipo estable (número, string numérico, string vacío o
// ausente, según cómo esté escrita la celda), por eso FlexID y FlexNumber.
type CatalogItem struct {
	ItemID      FlexID     `json:"itemId"`
	ProductName string     `json:"productName"`
	SKU         string     `json:"sku"`
	Description string     `json:"description"`
	Supplier    string     `json:"supplier"`
	Dimension   string     `json:"dimension"`
	Volume      string     `json:"volume"`
	Memo        string     `json:"memo"`
	Types       []string   `json:"types"`
	Stock       FlexNumber `json:"stock"`
	PictureURL  string     `json:"pictureUrl"`
	UnitsPerBox FlexNumber `json:"unitsPerBox"`
}

// ID devuelve el identificador en forma de string.
// Toda referencia cruzada (favoritos, filas de lista, solicitudes) usa esta forma.
func (i CatalogItem) ID() string { return string(i.ItemID) }

// InStock indica si el ítem tiene stock estrictamente mayor que cero.
// Stock ausente o no numérico cuenta como sin stock.
func (i CatalogItem) InStock() bool { return i.Stock.Positive() }

// FlexID identificador que en la hoja puede venir como string o como número.
// Se normaliza siempre a string.
type FlexID string

// UnmarshalJSON acepta string, número o null.
func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// MarshalJSON serializa siempre como string.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// FlexNumber valor numérico tolerante: acepta número, string numérico, string
// vacío o null. Conserva el texto original para mostrarlo tal cual llegó.
type FlexNumber struct {
	raw     string
	value   decimal.Decimal
	present bool
}

// NewFlexNumber construye un FlexNumber con valor conocido (para tests y fixtures).
func NewFlexNumber(d decimal.Decimal) FlexNumber {
	return FlexNumber{raw: d.String(), value: d, present: true}
}

// UnmarshalJSON decodifica sin fallar ante celdas mal escritas: un valor no
// numérico queda como "no presente" con el texto original conservado.
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = FlexNumber{}
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = s
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*n = FlexNumber{}
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		*n = FlexNumber{raw: raw}
		return nil
	}
	*n = FlexNumber{raw: raw, value: d, present: true}
	return nil
}

// MarshalJSON serializa el texto original (o null si nunca hubo valor).
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if n.raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(n.raw)
}

// Decimal devuelve el valor numérico; cero si no es utilizable.
func (n FlexNumber) Decimal() decimal.Decimal {
	if !n.present {
		return decimal.Zero
	}
	return n.value
}

// Positive indica si hay un valor numérico estrictamente mayor que cero.
func (n FlexNumber) Positive() bool {
	return n.present && n.value.GreaterThan(decimal.Zero)
}

// Label devuelve el texto para mostrar, o fallback si la celda venía vacía.
func (n FlexNumber) Label(fallback string) string {
	if n.raw == "" {
		return fallback
	}
	return n.raw
}
