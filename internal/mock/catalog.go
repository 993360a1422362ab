package mock

import (
	"context"

	"github.com/sonuudigital/microservices/catalog-service/internal/repository"
	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
	"github.com/stretchr/testify/mock"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListProducts(ctx context.Context, order string, category *string) ([]repository.Product, error) {
	args := m.Called(ctx, order, category)
	if p, ok := args.Get(0).([]repository.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) GetProduct(ctx context.Context, id int64) (repository.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(repository.Product); ok {
		return p, args.Error(1)
	}
	return repository.Product{}, args.Error(1)
}

func (m *MockCatalog) CreateProduct(ctx context.Context, in validation.ProductInput) (repository.Product, error) {
	args := m.Called(ctx, in)
	if p, ok := args.Get(0).(repository.Product); ok {
		return p, args.Error(1)
	}
	return repository.Product{}, args.Error(1)
}

func (m *MockCatalog) UpdateProduct(ctx context.Context, id int64, in validation.ProductInput) (repository.Product, error) {
	args := m.Called(ctx, id, in)
	if p, ok := args.Get(0).(repository.Product); ok {
		return p, args.Error(1)
	}
	return repository.Product{}, args.Error(1)
}

func (m *MockCatalog) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalog) ListCategories(ctx context.Context) ([]repository.Category, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]repository.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) GetCategory(ctx context.Context, id int64) (repository.Category, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(repository.Category); ok {
		return c, args.Error(1)
	}
	return repository.Category{}, args.Error(1)
}

func (m *MockCatalog) CreateCategory(ctx context.Context, in validation.CategoryInput) (repository.Category, error) {
	args := m.Called(ctx, in)
	if c, ok := args.Get(0).(repository.Category); ok {
		return c, args.Error(1)
	}
	return repository.Category{}, args.Error(1)
}

func (m *MockCatalog) UpdateCategory(ctx context.Context, id int64, in validation.CategoryInput) (repository.Category, error) {
	args := m.Called(ctx, id, in)
	if c, ok := args.Get(0).(repository.Category); ok {
		return c, args.Error(1)
	}
	return repository.Category{}, args.Error(1)
}

func (m *MockCatalog) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
