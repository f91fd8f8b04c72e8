package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// BusinessError regla de negocio violada, con mensaje apto para mostrar al usuario.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string { return e.Message }

// NewBusinessError construye un error de regla de negocio.
func NewBusinessError(message string) error {
	return &BusinessError{Message: message}
}

// IsBusiness indica si err es una violación de regla de negocio.
func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}
