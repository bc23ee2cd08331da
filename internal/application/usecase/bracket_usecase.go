package usecase

import (
	"context"

	"github.com/jhoicas/brackets-api/internal/application/dto"
	"github.com/jhoicas/brackets-api/internal/domain/entity"
	"github.com/jhoicas/brackets-api/internal/domain/repository"
)

// BracketUseCase casos de uso de lectura para brackets.
type BracketUseCase struct {
	repo repository.BracketRepository
}

// NewBracketUseCase construye el caso de uso.
func NewBracketUseCase(repo repository.BracketRepository) *BracketUseCase {
	return &BracketUseCase{repo: repo}
}

// FindAll lista todos los brackets; colección vacía si no hay ninguno.
func (uc *BracketUseCase) FindAll(ctx context.Context) ([]dto.BracketResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BracketResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBracketResponse(b))
	}
	return out, nil
}

// ByName obtiene un bracket por nombre exacto.
func (uc *BracketUseCase) ByName(ctx context.Context, name string) (*dto.BracketResponse, error) {
	b, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	out := toBracketResponse(*b)
	return &out, nil
}

// GetBracketByCustomerID obtiene el bracket del cliente indicado.
func (uc *BracketUseCase) GetBracketByCustomerID(ctx context.Context, customerID int64) (*dto.BracketResponse, error) {
	b, err := uc.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := toBracketResponse(*b)
	return &out, nil
}

func toBracketResponse(b entity.Bracket) dto.BracketResponse {
	return dto.BracketResponse{ID: b.ID, Name: b.Name, CustomerID: b.CustomerID}
}
