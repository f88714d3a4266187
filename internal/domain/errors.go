package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidCredential = errors.New("credenciales inválidas")
	ErrUnauthorized      = errors.New("no autorizado")

	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// ErrSourceUnavailable indica que la fuente de registros crudos falló.
	// El ciclo de agregación en curso se aborta completo: nunca se publica
	// un agregado parcial ni se reutiliza un resultado viejo.
	ErrSourceUnavailable = errors.New("fuente de ventas no disponible")
)
