package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El cálculo de promedio nunca falla: estos errores solo aplican a persistencia, auth y transporte.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUnknownField       = errors.New("campo de formulario desconocido")
)
