package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	apphttp "github.com/jhoicas/vitrina-api/internal/interfaces/http"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de puertos
// ──────────────────────────────────────────────────────────────────────────────

type stubSource struct{ items []entity.CatalogItem }

func (s *stubSource) FetchCatalog(ctx context.Context) ([]entity.CatalogItem, error) {
	return s.items, nil
}

type stubSubmitter struct{ payloads []any }

func (s *stubSubmitter) Submit(ctx context.Context, payload any) error {
	s.payloads = append(s.payloads, payload)
	return nil
}

type stubAdmin struct{ restaurants []string }

func (s *stubAdmin) ListRestaurants(ctx context.Context) ([]string, error) {
	return s.restaurants, nil
}

func (s *stubAdmin) ExportCustomerView(ctx context.Context, restaurant string) error {
	return nil
}

type memFavRepo struct{ data map[string][]string }

func (r *memFavRepo) Load(sessionID string) ([]string, error) { return r.data[sessionID], nil }
func (r *memFavRepo) Save(sessionID string, itemIDs []string) error {
	r.data[sessionID] = itemIDs
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Montaje de la aplicación de prueba
// ──────────────────────────────────────────────────────────────────────────────

const testAdminPassword = "clave-admin-de-test"

// testApp aplicación completa con el router real y puertos falsos.
type testApp struct {
	app       *fiber.App
	submitter *stubSubmitter
	cookie    string // cookie de sesión capturada de la primera respuesta
}

func buildApp(t *testing.T) *testApp {
	t.Helper()

	raw := `[
		{"itemId": "1", "productName": "Aceite de Oliva", "sku": "ACE-1", "types": ["Aceites"], "stock": "5"},
		{"itemId": "2", "productName": "Harina 000", "sku": "HAR-2", "types": ["Harinas"], "stock": "0"}
	]`
	var items []entity.CatalogItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))

	log := logger.Nop()
	catalogUC := usecase.NewCatalogUseCase(&stubSource{items: items}, log)
	_, err := catalogUC.Reload(context.Background())
	require.NoError(t, err)

	favoritesUC := usecase.NewFavoritesUseCase(&memFavRepo{data: make(map[string][]string)}, log)
	submitter := &stubSubmitter{}
	requestUC := usecase.NewRequestUseCase(catalogUC, favoritesUC, submitter, log)
	adminUC := usecase.NewAdminUseCase(&stubAdmin{restaurants: []string{"La Trattoria"}}, log)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase(string(hash), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:   catalogUC,
		FavoritesUC: favoritesUC,
		RequestUC:   requestUC,
		ExportUC:    usecase.NewExportUseCase(catalogUC, favoritesUC, map[string]ports.ListRenderer{}, log),
		AdminUC:     adminUC,
		AuthUC:      authUC,
		JWTSecret:   testJWTSecret,
	})
	return &testApp{app: app, submitter: submitter}
}

// do lanza una petición reutilizando la cookie de sesión entre llamadas.
func (ta *testApp) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ta.cookie != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: ta.cookie})
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.SessionCookie {
			ta.cookie = ck.Value
		}
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

// La primera visita recibe un cookie de sesión; las siguientes lo conservan.
func TestRouter_SesionPorCookie(t *testing.T) {
	ta := buildApp(t)

	resp := ta.do(t, http.MethodGet, "/api/catalog", nil)
	resp.Body.Close()
	require.NotEmpty(t, ta.cookie, "la primera respuesta debe asignar cookie de sesión")
	first := ta.cookie

	resp = ta.do(t, http.MethodGet, "/api/catalog", nil)
	resp.Body.Close()
	assert.Equal(t, first, ta.cookie, "una sesión existente no debe reemplazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_CatalogoFiltrado(t *testing.T) {
	ta := buildApp(t)

	resp := ta.do(t, http.MethodGet, "/api/catalog?in_stock=true", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.EqualValues(t, 1, body["total"])
	items := body["items"].([]any)
	first := items[0].(map[string]any)
	assert.Equal(t, "Aceite de Oliva", first["product_name"])
	assert.Equal(t, true, first["in_stock"])
}

func TestRouter_DetalleInexistente_404(t *testing.T) {
	ta := buildApp(t)

	resp := ta.do(t, http.MethodGet, "/api/catalog/999", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Favoritos
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ToggleYListadoDeFavoritos(t *testing.T) {
	ta := buildApp(t)

	resp := ta.do(t, http.MethodPost, "/api/favorites/1/toggle", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	toggle := decode[map[string]any](t, resp)
	assert.Equal(t, true, toggle["favorite"])
	assert.Equal(t, "Agregado a favoritos.", toggle["message"])

	resp = ta.do(t, http.MethodGet, "/api/favorites", nil)
	list := decode[map[string]any](t, resp)
	assert.EqualValues(t, 1, list["total"])

	// El catálogo marca el favorito en su respuesta.
	resp = ta.do(t, http.MethodGet, "/api/catalog?favorites=true", nil)
	filtered := decode[map[string]any](t, resp)
	assert.EqualValues(t, 1, filtered["total"])

	// Segundo toggle quita.
	resp = ta.do(t, http.MethodPost, "/api/favorites/1/toggle", nil)
	toggle = decode[map[string]any](t, resp)
	assert.Equal(t, false, toggle["favorite"])
	assert.Equal(t, "Quitado de favoritos.", toggle["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Solicitudes
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_FlujoDeSolicitudDePrecio(t *testing.T) {
	ta := buildApp(t)

	resp := ta.do(t, http.MethodPost, "/api/requests/price/open", map[string]string{"item_id": "1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	opened := decode[map[string]any](t, resp)
	assert.Equal(t, "open", opened["status"])

	// Formulario inválido: 400 con código VALIDATION y la solicitud sigue abierta.
	resp = ta.do(t, http.MethodPost, "/api/requests/price", map[string]string{"contact_phone": "555"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[map[string]string](t, resp)
	assert.Equal(t, "VALIDATION", errBody["code"])

	resp = ta.do(t, http.MethodPost, "/api/requests/price", map[string]string{
		"restaurant_name": "La Trattoria",
		"contact_phone":   "555",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sent := decode[map[string]any](t, resp)
	assert.Equal(t, "closed", sent["status"])
	assert.NotEmpty(t, sent["request_id"])
	assert.Len(t, ta.submitter.payloads, 1)

	// Cerrada: reenviar es 409.
	resp = ta.do(t, http.MethodPost, "/api/requests/price", map[string]string{
		"restaurant_name": "La Trattoria",
		"contact_phone":   "555",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_ListaSinFavoritos_409(t *testing.T) {
	ta := buildApp(t)

	resp := ta.do(t, http.MethodPost, "/api/requests/list/open", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "NO_FAVORITES", body["code"])
}

func TestRouter_CancelarTipoDesconocido_400(t *testing.T) {
	ta := buildApp(t)

	resp := ta.do(t, http.MethodPost, "/api/requests/otro/cancel", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Panel admin
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_AdminLoginYAcceso(t *testing.T) {
	ta := buildApp(t)

	// Contraseña incorrecta: 401.
	resp := ta.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Login correcto entrega un token.
	resp = ta.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": testAdminPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[map[string]any](t, resp)
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	// Sin token la ruta protegida es 401.
	resp = ta.do(t, http.MethodGet, "/api/admin/restaurants", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Con el Bearer Token el listado responde.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/restaurants", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authResp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, authResp.StatusCode)
	body := decode[map[string]any](t, authResp)
	assert.EqualValues(t, 1, body["total"])
}

func TestRouter_AdminExportRequiereRestaurante(t *testing.T) {
	ta := buildApp(t)

	resp := ta.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": testAdminPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[map[string]any](t, resp)
	token := login["token"].(string)

	raw, _ := json.Marshal(map[string]string{"restaurant": "  "})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/export", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	exportResp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer exportResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, exportResp.StatusCode)
}
