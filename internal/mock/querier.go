package mock

import (
	"context"

	"github.com/sonuudigital/microservices/catalog-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockQuerier struct {
	mock.Mock
}

var _ repository.Querier = (*MockQuerier)(nil)

func (m *MockQuerier) CategoryExists(ctx context.Context, category string) (bool, error) {
	args := m.Called(ctx, category)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) CreateCategory(ctx context.Context, category string) (repository.Category, error) {
	args := m.Called(ctx, category)
	if c, ok := args.Get(0).(repository.Category); ok {
		return c, args.Error(1)
	}
	return repository.Category{}, args.Error(1)
}

func (m *MockQuerier) CreateProduct(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error) {
	args := m.Called(ctx, arg)
	if p, ok := args.Get(0).(repository.Product); ok {
		return p, args.Error(1)
	}
	return repository.Product{}, args.Error(1)
}

func (m *MockQuerier) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) DeleteProduct(ctx context.Context, productNo int64) (int64, error) {
	args := m.Called(ctx, productNo)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) GetCategory(ctx context.Context, id int64) (repository.Category, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(repository.Category); ok {
		return c, args.Error(1)
	}
	return repository.Category{}, args.Error(1)
}

func (m *MockQuerier) GetProduct(ctx context.Context, productNo int64) (repository.Product, error) {
	args := m.Called(ctx, productNo)
	if p, ok := args.Get(0).(repository.Product); ok {
		return p, args.Error(1)
	}
	return repository.Product{}, args.Error(1)
}

func (m *MockQuerier) ListCategories(ctx context.Context) ([]repository.Category, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]repository.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuerier) ListProducts(ctx context.Context, descending bool) ([]repository.Product, error) {
	args := m.Called(ctx, descending)
	if p, ok := args.Get(0).([]repository.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuerier) ListProductsByCategory(ctx context.Context, category string) ([]repository.Product, error) {
	args := m.Called(ctx, category)
	if p, ok := args.Get(0).([]repository.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuerier) ProductTitleExists(ctx context.Context, arg repository.ProductTitleExistsParams) (bool, error) {
	args := m.Called(ctx, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) UpdateCategory(ctx context.Context, arg repository.UpdateCategoryParams) (repository.Category, error) {
	args := m.Called(ctx, arg)
	if c, ok := args.Get(0).(repository.Category); ok {
		return c, args.Error(1)
	}
	return repository.Category{}, args.Error(1)
}

func (m *MockQuerier) UpdateProduct(ctx context.Context, arg repository.UpdateProductParams) (repository.Product, error) {
	args := m.Called(ctx, arg)
	if p, ok := args.Get(0).(repository.Product); ok {
		return p, args.Error(1)
	}
	return repository.Product{}, args.Error(1)
}
