// Package localstore persiste los favoritos de cada sesión como un archivo
// JSON plano, el equivalente servidor del localStorage del navegador.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que FavoritesStore implementa el puerto.
var _ repository.FavoritesRepository = (*FavoritesStore)(nil)

// sessionIDRe los ids de sesión son UUIDs; cualquier otra cosa se rechaza para
// que un cookie manipulado no pueda salirse del directorio de datos.
var sessionIDRe = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

// FavoritesStore repositorio de favoritos sobre el sistema de archivos:
// un archivo <dir>/<sessionID>.json con el array de ids.
type FavoritesStore struct {
	dir string
}

// NewFavoritesStore crea el directorio de datos si no existe.
func NewFavoritesStore(dir string) (*FavoritesStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	return &FavoritesStore{dir: dir}, nil
}

// Load lee los ids persistidos. Archivo ausente devuelve lista vacía sin error;
// un archivo corrupto devuelve error (el llamador decide degradar, no fallar).
func (s *FavoritesStore) Load(sessionID string) ([]string, error) {
	path, err := s.path(sessionID)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: leer %s: %w", path, err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("localstore: decodificar %s: %w", path, err)
	}
	return ids, nil
}

// Save persiste el set completo con escritura atómica (archivo temporal +
// rename), así una caída a mitad de escritura nunca deja un JSON corrupto.
// Reescribir el mismo set es idempotente.
func (s *FavoritesStore) Save(sessionID string, itemIDs []string) error {
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}
	if itemIDs == nil {
		itemIDs = []string{}
	}
	raw, err := json.Marshal(itemIDs)
	if err != nil {
		return fmt.Errorf("localstore: serializar favoritos: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, "fav-*.tmp")
	if err != nil {
		return fmt.Errorf("localstore: crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("localstore: escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("localstore: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("localstore: renombrar a %s: %w", path, err)
	}
	return nil
}

func (s *FavoritesStore) path(sessionID string) (string, error) {
	if !sessionIDRe.MatchString(sessionID) {
		return "", fmt.Errorf("localstore: id de sesión inválido")
	}
	return filepath.Join(s.dir, sessionID+".json"), nil
}
