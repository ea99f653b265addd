package usecase

import (
	"sort"
	"sync"

	"github.com/jhoicas/vitrina-api/internal/domain/catalog"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// FavoritesUseCase set de favoritos por sesión, persistido tras cada mutación.
// La persistencia es una caché de mejor esfuerzo: un fallo de lectura o
// escritura se registra y se traga, nunca tumba la sesión (el peor caso es un
// set vacío, igual que perder el localStorage del navegador).
type FavoritesUseCase struct {
	repo repository.FavoritesRepository
	log  *logger.Logger

	mu   sync.Mutex
	sets map[string]map[string]struct{} // sessionID -> ids favoritos
}

// NewFavoritesUseCase construye el caso de uso.
func NewFavoritesUseCase(repo repository.FavoritesRepository, log *logger.Logger) *FavoritesUseCase {
	return &FavoritesUseCase{repo: repo, log: log, sets: make(map[string]map[string]struct{})}
}

// set devuelve el set de la sesión, cargándolo del repositorio la primera vez.
// Debe llamarse con el mutex tomado.
func (uc *FavoritesUseCase) set(sessionID string) map[string]struct{} {
	if s, ok := uc.sets[sessionID]; ok {
		return s
	}
	s := make(map[string]struct{})
	ids, err := uc.repo.Load(sessionID)
	if err != nil {
		uc.log.Warn().Err(err).Str("session", sessionID).Msg("favoritos ilegibles, se parte de un set vacío")
	}
	for _, id := range ids {
		s[id] = struct{}{}
	}
	uc.sets[sessionID] = s
	return s
}

// Toggle agrega el id si no estaba, lo quita si estaba, y persiste el set
// completo. Devuelve si el ítem quedó como favorito (guía el mensaje
// "agregado" / "quitado" de la UI).
func (uc *FavoritesUseCase) Toggle(sessionID, itemID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.set(sessionID)
	_, had := s[itemID]
	if had {
		delete(s, itemID)
	} else {
		s[itemID] = struct{}{}
	}
	if err := uc.repo.Save(sessionID, sortedIDs(s)); err != nil {
		uc.log.Warn().Err(err).Str("session", sessionID).Msg("no se pudieron persistir los favoritos")
	}
	return !had
}

// Contains indica si el ítem es favorito de la sesión.
func (uc *FavoritesUseCase) Contains(sessionID, itemID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.set(sessionID)[itemID]
	return ok
}

// List devuelve los ids favoritos de la sesión, ordenados para determinismo.
func (uc *FavoritesUseCase) List(sessionID string) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return sortedIDs(uc.set(sessionID))
}

// ForSession devuelve una vista de solo lectura apta para el motor de filtrado.
func (uc *FavoritesUseCase) ForSession(sessionID string) catalog.Favorites {
	return sessionFavorites{uc: uc, sessionID: sessionID}
}

type sessionFavorites struct {
	uc        *FavoritesUseCase
	sessionID string
}

func (f sessionFavorites) Contains(itemID string) bool {
	return f.uc.Contains(f.sessionID, itemID)
}

func sortedIDs(s map[string]struct{}) []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
