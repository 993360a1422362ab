package repository

import (
	"context"
)

type Querier interface {
	CategoryExists(ctx context.Context, category string) (bool, error)
	CreateCategory(ctx context.Context, category string) (Category, error)
	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	DeleteCategory(ctx context.Context, id int64) (int64, error)
	DeleteProduct(ctx context.Context, productNo int64) (int64, error)
	GetCategory(ctx context.Context, id int64) (Category, error)
	GetProduct(ctx context.Context, productNo int64) (Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListProducts(ctx context.Context, descending bool) ([]Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]Product, error)
	ProductTitleExists(ctx context.Context, arg ProductTitleExistsParams) (bool, error)
	UpdateCategory(ctx context.Context, arg UpdateCategoryParams) (Category, error)
	UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error)
}

var _ Querier = (*Queries)(nil)
