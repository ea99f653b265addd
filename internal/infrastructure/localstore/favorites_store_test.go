package localstore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/infrastructure/localstore"
)

func newStore(t *testing.T) *localstore.FavoritesStore {
	t.Helper()
	store, err := localstore.NewFavoritesStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFavoritesStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.NewFavoritesStore(dir)
	require.NoError(t, err)
	sid := uuid.New().String()

	require.NoError(t, store.Save(sid, []string{"1", "3", "7"}))
	ids, err := store.Load(sid)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "7"}, ids)

	// Los favoritos sobreviven a un reinicio del servicio (nueva instancia, mismo directorio).
	reopened, err := localstore.NewFavoritesStore(dir)
	require.NoError(t, err)
	ids, err = reopened.Load(sid)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "7"}, ids)
}

// Sesión sin archivo devuelve lista vacía sin error.
func TestFavoritesStore_SesionNueva(t *testing.T) {
	store := newStore(t)

	ids, err := store.Load(uuid.New().String())
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

// Guardar dos veces el mismo set es idempotente; un set nil persiste como [].
func TestFavoritesStore_SaveIdempotenteYNilComoVacio(t *testing.T) {
	store := newStore(t)
	sid := uuid.New().String()

	require.NoError(t, store.Save(sid, []string{"1"}))
	require.NoError(t, store.Save(sid, []string{"1"}))
	ids, err := store.Load(sid)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)

	require.NoError(t, store.Save(sid, nil))
	ids, err = store.Load(sid)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// Un archivo corrupto devuelve error; degradar o no es decisión del llamador.
func TestFavoritesStore_ArchivoCorrupto(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.NewFavoritesStore(dir)
	require.NoError(t, err)
	sid := uuid.New().String()
	require.NoError(t, os.WriteFile(filepath.Join(dir, sid+".json"), []byte("{no es json"), 0o644))

	_, err = store.Load(sid)
	assert.Error(t, err)
}

// Un id de sesión manipulado no puede salirse del directorio de datos.
func TestFavoritesStore_IDDeSesionInvalido(t *testing.T) {
	store := newStore(t)

	for _, sid := range []string{"", "../escape", "a/b", strings.Repeat("a", 65)} {
		_, err := store.Load(sid)
		assert.Error(t, err, "id %q debe rechazarse", sid)
		assert.Error(t, store.Save(sid, []string{"1"}))
	}
}
