package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrAmbiguous    = errors.New("la consulta devolvió más de un registro")
	ErrInvalidInput = errors.New("entrada inválida")
)

// ValidationError indica que una entrada no cumple una regla de negocio.
// Detail es el mensaje que se expone al cliente.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Detail
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NotFoundError asocia ErrNotFound con el recurso buscado.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " " + e.Key + ": " + ErrNotFound.Error()
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
