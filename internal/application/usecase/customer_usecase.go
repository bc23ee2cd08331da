package usecase

import (
	"context"

	"github.com/jhoicas/brackets-api/internal/application/dto"
	"github.com/jhoicas/brackets-api/internal/domain/entity"
	"github.com/jhoicas/brackets-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de lectura para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	brackets *BracketUseCase
}

// NewCustomerUseCase construye el caso de uso. brackets resuelve GetCustomerBracket.
func NewCustomerUseCase(repo repository.CustomerRepository, brackets *BracketUseCase) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, brackets: brackets}
}

// FindAll lista todos los clientes; colección vacía si no hay ninguno.
func (uc *CustomerUseCase) FindAll(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// ByName obtiene el cliente cuyo nombre coincide exactamente.
// Falla con domain.ErrNotFound si no existe y domain.ErrAmbiguous si el nombre está repetido.
func (uc *CustomerUseCase) ByName(ctx context.Context, name string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	out := toCustomerResponse(*c)
	return &out, nil
}

// GetCustomerBracket delega en BracketUseCase.GetBracketByCustomerID.
func (uc *CustomerUseCase) GetCustomerBracket(ctx context.Context, customerID int64) (*dto.BracketResponse, error) {
	return uc.brackets.GetBracketByCustomerID(ctx, customerID)
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{ID: c.ID, Name: c.Name}
}
