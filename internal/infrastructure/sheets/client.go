// Package sheets implementa el cliente del Web App de Apps Script que expone la
// hoja de cálculo: catálogo, solicitudes del catálogo y acciones del panel admin.
// Usa net/http de la librería estándar de Go; no hay SDK para Apps Script.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa los tres puertos.
var (
	_ ports.CatalogSource    = (*Client)(nil)
	_ ports.RequestSubmitter = (*Client)(nil)
	_ ports.PricebookAdmin   = (*Client)(nil)
)

// Client adaptador HTTP del endpoint remoto.
type Client struct {
	endpointURL string
	httpClient  *http.Client
	log         *logger.Logger
}

// NewClient construye el cliente. timeout limita cada llamada completa
// (además del context que imponga el llamador).
func NewClient(endpointURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: timeout},
		log:         log,
	}
}

// ── Estructuras del protocolo del Apps Script ─────────────────────────────────

type catalogResponse struct {
	Success bool                 `json:"success"`
	Data    []entity.CatalogItem `json:"data"`
	Error   string               `json:"error"`
}

type restaurantsResponse struct {
	Restaurants []struct {
		Restaurant string `json:"restaurant"`
	} `json:"restaurants"`
	Error string `json:"error"`
}

type exportResponse struct {
	Error string `json:"error"`
}

// ── CatalogSource ─────────────────────────────────────────────────────────────

// FetchCatalog trae el catálogo completo (GET ?action=catalog).
func (c *Client) FetchCatalog(ctx context.Context) ([]entity.CatalogItem, error) {
	var out catalogResponse
	if err := c.getJSON(ctx, url.Values{"action": {"catalog"}}, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "el remoto respondió success:false sin detalle"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, msg)
	}
	if out.Data == nil {
		out.Data = []entity.CatalogItem{}
	}
	return out.Data, nil
}

// ── RequestSubmitter ──────────────────────────────────────────────────────────

// Submit envía una solicitud como POST JSON en modo fire-and-forget.
//
// El Apps Script está desplegado para navegadores no-cors: su respuesta POST es
// una redirección sin resultado legible por máquina. Por eso el éxito es
// completar el round-trip; el status se registra en debug y no se interpreta.
func (c *Client) Submit(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sheets: serializar solicitud: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sheets: construir request: %w", err)
	}
	// El Apps Script espera text/plain (así lo envía el frontend no-cors).
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Debug().Int("status", resp.StatusCode).Msg("solicitud entregada al endpoint remoto")
	return nil
}

// ── PricebookAdmin ────────────────────────────────────────────────────────────

// ListRestaurants lista los restaurantes con pricebook (GET ?action=listRestaurants).
func (c *Client) ListRestaurants(ctx context.Context) ([]string, error) {
	var out restaurantsResponse
	if err := c.getJSON(ctx, url.Values{"action": {"listRestaurants"}}, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrRemote, out.Error)
	}
	names := make([]string, 0, len(out.Restaurants))
	for _, r := range out.Restaurants {
		names = append(names, r.Restaurant)
	}
	return names, nil
}

// ExportCustomerView dispara la exportación y email de la vista del restaurante
// (GET ?action=exportCustomerView&restaurant=...). El efecto corre del lado remoto.
func (c *Client) ExportCustomerView(ctx context.Context, restaurant string) error {
	var out exportResponse
	q := url.Values{"action": {"exportCustomerView"}, "restaurant": {restaurant}}
	if err := c.getJSON(ctx, q, &out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	if out.Error != "" {
		return fmt.Errorf("%w: %s", domain.ErrRemote, out.Error)
	}
	return nil
}

// getJSON hace un GET con query y decodifica la respuesta JSON.
func (c *Client) getJSON(ctx context.Context, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}
