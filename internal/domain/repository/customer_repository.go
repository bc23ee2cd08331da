package repository

import (
	"context"

	"github.com/jhoicas/brackets-api/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura para Customer.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]entity.Customer, error)
	// FindByName devuelve domain.ErrNotFound si no hay filas y domain.ErrAmbiguous si hay varias.
	FindByName(ctx context.Context, name string) (*entity.Customer, error)
}
