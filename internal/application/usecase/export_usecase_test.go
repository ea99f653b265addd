package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// fakeRenderer renderer trivial que captura el export recibido.
type fakeRenderer struct {
	got ports.ListExport
}

func (r *fakeRenderer) Render(ctx context.Context, export ports.ListExport) ([]byte, error) {
	r.got = export
	return []byte("contenido"), nil
}

func (r *fakeRenderer) ContentType() string { return "application/test" }
func (r *fakeRenderer) FileExt() string     { return "tst" }

func newExportEnv(t *testing.T) (*usecase.ExportUseCase, *usecase.FavoritesUseCase, *fakeRenderer) {
	t.Helper()
	catalogUC := loadedCatalogUC(t)
	favsUC := usecase.NewFavoritesUseCase(newFakeFavRepo(), logger.Nop())
	renderer := &fakeRenderer{}
	uc := usecase.NewExportUseCase(catalogUC, favsUC, map[string]ports.ListRenderer{"tst": renderer}, logger.Nop())
	return uc, favsUC, renderer
}

func TestExport_FavoritosComoLineasConCantidadUno(t *testing.T) {
	uc, favs, renderer := newExportEnv(t)
	favs.Toggle("s1", "1")
	favs.Toggle("s1", "3")

	file, err := uc.ExportFavorites(context.Background(), "s1", "tst")
	require.NoError(t, err)

	assert.Equal(t, "application/test", file.ContentType)
	assert.Equal(t, []byte("contenido"), file.Content)
	assert.Regexp(t, `^favoritos-\d{8}\.tst$`, file.FileName)

	require.Len(t, renderer.got.Lines, 2)
	assert.Equal(t, "Aceite de Oliva", renderer.got.Lines[0].ProductName)
	assert.Equal(t, 1, renderer.got.Lines[0].Quantity)
}

func TestExport_SinFavoritos(t *testing.T) {
	uc, _, _ := newExportEnv(t)
	_, err := uc.ExportFavorites(context.Background(), "s1", "tst")
	assert.ErrorIs(t, err, domain.ErrNoFavorites)
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc, favs, _ := newExportEnv(t)
	favs.Toggle("s1", "1")

	var vErr *domain.ValidationError
	_, err := uc.ExportFavorites(context.Background(), "s1", "docx")
	assert.ErrorAs(t, err, &vErr)
}
