package sheets_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/sheets"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

func newClient(t *testing.T, handler http.HandlerFunc) (*sheets.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return sheets.NewClient(srv.URL, 5*time.Second, logger.Nop()), srv
}

// ──────────────────────────────────────────────────────────────────────────────
// FetchCatalog
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchCatalog_DecodificaElCatalogo(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "catalog", r.URL.Query().Get("action"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success": true, "data": [
			{"itemId": 1, "productName": "Aceite", "stock": "5"},
			{"itemId": "2", "productName": "Harina", "stock": 0}
		]}`)
	})

	items, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID())
	assert.True(t, items[0].InStock())
	assert.False(t, items[1].InStock())
}

// success:false es un fallo de carga, aunque el HTTP haya sido 200.
func TestFetchCatalog_SuccessFalse(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": false, "error": "hoja en mantenimiento"}`)
	})

	_, err := client.FetchCatalog(context.Background())
	require.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "hoja en mantenimiento")
}

func TestFetchCatalog_DataNullQuedaComoListaVacia(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": true, "data": null}`)
	})

	items, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFetchCatalog_HTTPNo200(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestFetchCatalog_ServidorCaido(t *testing.T) {
	client, srv := newClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit (fire-and-forget)
// ──────────────────────────────────────────────────────────────────────────────

// El envío es POST JSON con Content-Type text/plain, como lo hace un navegador no-cors.
func TestSubmit_EnviaJSONConContentTypeTextPlain(t *testing.T) {
	var gotBody map[string]any
	var gotContentType string
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	})

	err := client.Submit(context.Background(), map[string]string{"action": "priceRequest"})
	require.NoError(t, err)
	assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
	assert.Equal(t, "priceRequest", gotBody["action"])
}

// Un round-trip completo es éxito aunque el status no sea 2xx; la respuesta del
// Apps Script no es legible y no se interpreta.
func TestSubmit_StatusNo2xxSigueSiendoExito(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})

	err := client.Submit(context.Background(), map[string]string{"action": "saveList"})
	assert.NoError(t, err, "el éxito es completar el round-trip, no el status")
}

func TestSubmit_FalloDeConexion(t *testing.T) {
	client, srv := newClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	err := client.Submit(context.Background(), map[string]string{"action": "saveList"})
	assert.ErrorIs(t, err, domain.ErrTransport)
}

// ──────────────────────────────────────────────────────────────────────────────
// Panel admin
// ──────────────────────────────────────────────────────────────────────────────

func TestListRestaurants_DecodificaNombres(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "listRestaurants", r.URL.Query().Get("action"))
		io.WriteString(w, `{"restaurants": [{"restaurant": "La Trattoria"}, {"restaurant": "El Fogón"}]}`)
	})

	names, err := client.ListRestaurants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"La Trattoria", "El Fogón"}, names)
}

// El campo error del remoto se propaga textual para mostrarlo al admin.
func TestListRestaurants_ErrorRemotoTextual(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"error": "pricebook sheet not found"}`)
	})

	_, err := client.ListRestaurants(context.Background())
	require.ErrorIs(t, err, domain.ErrRemote)
	assert.Contains(t, err.Error(), "pricebook sheet not found")
}

func TestExportCustomerView_PasaElRestaurantePorQuery(t *testing.T) {
	var gotRestaurant string
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "exportCustomerView", r.URL.Query().Get("action"))
		gotRestaurant = r.URL.Query().Get("restaurant")
		io.WriteString(w, `{}`)
	})

	err := client.ExportCustomerView(context.Background(), "La Trattoria")
	require.NoError(t, err)
	assert.Equal(t, "La Trattoria", gotRestaurant)
}

func TestExportCustomerView_ErroresDeTransporteYRemoto(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"error": "restaurant not found"}`)
	})
	err := client.ExportCustomerView(context.Background(), "Inexistente")
	assert.ErrorIs(t, err, domain.ErrRemote)

	client2, srv := newClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()
	err = client2.ExportCustomerView(context.Background(), "La Trattoria")
	assert.ErrorIs(t, err, domain.ErrTransport)
}
