package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/brackets-api/internal/domain/entity"
	"github.com/jhoicas/brackets-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// FindAll lista todos los clientes en el orden que devuelve la base.
func (r *CustomerRepo) FindAll(ctx context.Context) ([]entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanCustomer)
	if err != nil {
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return list, nil
}

// FindByName obtiene el único cliente cuyo nombre coincide exactamente.
func (r *CustomerRepo) FindByName(ctx context.Context, name string) (*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers WHERE name = $1`, name)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCustomer)
	if err != nil {
		return nil, singleRowError("customer", name, err)
	}
	return &c, nil
}
