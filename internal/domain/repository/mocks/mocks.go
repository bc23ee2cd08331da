// Package mocks contiene dobles de prueba (testify/mock) para los puertos de repository.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/brackets-api/internal/domain/entity"
	"github.com/jhoicas/brackets-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerRepository)(nil)
	_ repository.BracketRepository  = (*BracketRepository)(nil)
)

// CustomerRepository mock de repository.CustomerRepository.
type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) FindAll(ctx context.Context) ([]entity.Customer, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entity.Customer)
	return list, args.Error(1)
}

func (m *CustomerRepository) FindByName(ctx context.Context, name string) (*entity.Customer, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

// BracketRepository mock de repository.BracketRepository.
type BracketRepository struct {
	mock.Mock
}

func (m *BracketRepository) FindAll(ctx context.Context) ([]entity.Bracket, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entity.Bracket)
	return list, args.Error(1)
}

func (m *BracketRepository) FindByName(ctx context.Context, name string) (*entity.Bracket, error) {
	args := m.Called(ctx, name)
	b, _ := args.Get(0).(*entity.Bracket)
	return b, args.Error(1)
}

func (m *BracketRepository) FindByCustomerID(ctx context.Context, customerID int64) (*entity.Bracket, error) {
	args := m.Called(ctx, customerID)
	b, _ := args.Get(0).(*entity.Bracket)
	return b, args.Error(1)
}
