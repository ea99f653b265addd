package repository

// FavoritesRepository define el puerto de persistencia para los favoritos de una sesión (DIP).
// Es una caché local de mejor esfuerzo: perderla degrada a un set vacío, nunca es fatal.
type FavoritesRepository interface {
	// Load lee los ids persistidos de la sesión. Archivo ausente -> lista vacía sin error.
	Load(sessionID string) ([]string, error)
	// Save persiste el set completo. Escribir dos veces el mismo set es idempotente.
	Save(sessionID string, itemIDs []string) error
}
