package repository

import (
	"context"

	"github.com/jhoicas/brackets-api/internal/domain/entity"
)

// BracketRepository define el puerto de lectura para Bracket.
type BracketRepository interface {
	FindAll(ctx context.Context) ([]entity.Bracket, error)
	FindByName(ctx context.Context, name string) (*entity.Bracket, error)
	FindByCustomerID(ctx context.Context, customerID int64) (*entity.Bracket, error)
}
