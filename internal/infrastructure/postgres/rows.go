package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/brackets-api/internal/domain/entity"
)

const (
	customerColumns = `id, name`
	bracketColumns  = `id, name, customer_id`
)

// scanCustomer convierte una fila (id, name) en entity.Customer.
func scanCustomer(row pgx.CollectableRow) (entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name)
	return c, err
}

// scanBracket convierte una fila (id, name, customer_id) en entity.Bracket.
func scanBracket(row pgx.CollectableRow) (entity.Bracket, error) {
	var b entity.Bracket
	err := row.Scan(&b.ID, &b.Name, &b.CustomerID)
	return b, err
}
