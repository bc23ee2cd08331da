package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/brackets-api/internal/domain/entity"
	"github.com/jhoicas/brackets-api/internal/domain/repository"
)

var _ repository.BracketRepository = (*BracketRepo)(nil)

// BracketRepo implementación del puerto BracketRepository sobre PostgreSQL.
type BracketRepo struct {
	q Querier
}

// NewBracketRepository construye el adaptador de persistencia para brackets.
func NewBracketRepository(q Querier) *BracketRepo {
	return &BracketRepo{q: q}
}

// FindAll lista todos los brackets.
func (r *BracketRepo) FindAll(ctx context.Context) ([]entity.Bracket, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bracketColumns+` FROM brackets`)
	if err != nil {
		return nil, fmt.Errorf("list brackets: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanBracket)
	if err != nil {
		return nil, fmt.Errorf("scan bracket: %w", err)
	}
	return list, nil
}

// FindByName obtiene un bracket por nombre exacto.
func (r *BracketRepo) FindByName(ctx context.Context, name string) (*entity.Bracket, error) {
	return r.findOne(ctx, name, `SELECT `+bracketColumns+` FROM brackets WHERE name = $1`, name)
}

// FindByCustomerID obtiene el bracket del cliente. Se espera a lo sumo uno por cliente.
func (r *BracketRepo) FindByCustomerID(ctx context.Context, customerID int64) (*entity.Bracket, error) {
	return r.findOne(ctx, "customer "+strconv.FormatInt(customerID, 10),
		`SELECT `+bracketColumns+` FROM brackets WHERE customer_id = $1`, customerID)
}

func (r *BracketRepo) findOne(ctx context.Context, key, query string, arg any) (*entity.Bracket, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get bracket: %w", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBracket)
	if err != nil {
		return nil, singleRowError("bracket", key, err)
	}
	return &b, nil
}
