package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrNoFavorites     = errors.New("no hay favoritos en la sesión")
	ErrWorkflowNotOpen = errors.New("no hay una solicitud abierta de ese tipo")
	ErrUnauthorized    = errors.New("no autorizado")

	// ErrCatalogUnavailable: el endpoint remoto falló o respondió success:false.
	// El catálogo en memoria queda como estaba; el usuario puede reintentar.
	ErrCatalogUnavailable = errors.New("catálogo no disponible")

	// ErrTransport: la llamada de red no completó (timeout, conexión rechazada).
	// Los datos de la solicitud quedan intactos para reintento.
	ErrTransport = errors.New("error de transporte hacia el endpoint remoto")

	// ErrRemote: el endpoint respondió con un campo error legible (solo admin).
	// El mensaje remoto se muestra textual al usuario.
	ErrRemote = errors.New("error reportado por el endpoint remoto")
)

// ValidationError error de validación de un formulario, con mensaje para el usuario.
// La solicitud permanece abierta y no se hace ninguna llamada de red.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError construye un ValidationError.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
