package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/brackets-api/internal/domain"
)

// singleRowError traduce los errores de pgx.CollectExactlyOneRow a errores de dominio.
func singleRowError(resource, key string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return &domain.NotFoundError{Resource: resource, Key: key}
	case errors.Is(err, pgx.ErrTooManyRows):
		return fmt.Errorf("%s %s: %w", resource, key, domain.ErrAmbiguous)
	default:
		return fmt.Errorf("get %s: %w", resource, err)
	}
}
