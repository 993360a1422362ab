package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sonuudigital/microservices/catalog-service/internal/events"
	"github.com/sonuudigital/microservices/catalog-service/internal/repository"
	"github.com/sonuudigital/microservices/catalog-service/internal/sanitize"
	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
)

const OrderDesc = "desc"

// ListProducts orders by date. When category is set the list is filtered by
// it and always ascending; order is ignored in that case.
func (s *Service) ListProducts(ctx context.Context, order string, category *string) ([]repository.Product, error) {
	var (
		products []repository.Product
		err      error
	)

	if category != nil {
		products, err = s.queries.ListProductsByCategory(ctx, *category)
	} else {
		products, err = s.queries.ListProducts(ctx, strings.EqualFold(order, OrderDesc))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// GetProduct reports ErrNotFound both for a missing row and for a failed
// lookup; the failure is only logged.
func (s *Service) GetProduct(ctx context.Context, id int64) (repository.Product, error) {
	key := productCacheKey(id)

	var product repository.Product
	if s.fromCache(ctx, key, &product) {
		return product, nil
	}

	gen, cacheable := s.generation(ctx, key)

	product, err := s.queries.GetProduct(ctx, id)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("failed to fetch product", "id", id, "error", err)
		}
		return repository.Product{}, ErrNotFound
	}

	if cacheable {
		s.toCache(ctx, key, gen, product)
	}

	return product, nil
}

func (s *Service) CreateProduct(ctx context.Context, in validation.ProductInput) (repository.Product, error) {
	if errs := validation.ValidateProduct(in, true); len(errs) > 0 {
		return repository.Product{}, invalid(errs)
	}

	category, ok := in.Category.Str()
	if !ok {
		return repository.Product{}, ErrCategoryNotFound
	}

	title, titleOK := in.Title.Str()
	price, priceOK := in.Price.Number()
	text, textOK := in.Text.Str()
	if !titleOK || !priceOK || !textOK {
		return repository.Product{}, invalid(validation.MissingRequired())
	}

	params := repository.CreateProductParams{
		Title:    sanitize.String(title),
		Price:    sanitize.Price(price),
		Text:     sanitize.String(text),
		Category: sanitize.String(category),
	}
	if imgURL, ok := in.ImgURL.Str(); ok {
		escaped := sanitize.String(imgURL)
		params.ImgURL = &escaped
	}

	exists, err := s.queries.CategoryExists(ctx, params.Category)
	if err != nil {
		return repository.Product{}, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return repository.Product{}, ErrCategoryNotFound
	}

	taken, err := s.queries.ProductTitleExists(ctx, repository.ProductTitleExistsParams{Title: params.Title})
	if err != nil {
		return repository.Product{}, fmt.Errorf("failed to check product title: %w", err)
	}
	if taken {
		return repository.Product{}, ErrProductExists
	}

	product, err := s.queries.CreateProduct(ctx, params)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return repository.Product{}, ErrProductExists
		}
		return repository.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.publish(ctx, events.ProductCreated, product)

	return product, nil
}

// UpdateProduct rejects a category that already exists and a title held by
// another product before validating the input. Only the fields sent with a
// non-null value are written.
func (s *Service) UpdateProduct(ctx context.Context, id int64, in validation.ProductInput) (repository.Product, error) {
	if category, ok := in.Category.Str(); ok {
		exists, err := s.queries.CategoryExists(ctx, sanitize.String(category))
		if err != nil {
			return repository.Product{}, fmt.Errorf("failed to check category: %w", err)
		}
		if exists {
			return repository.Product{}, ErrCategoryExists
		}
	}

	if title, ok := in.Title.Str(); ok {
		taken, err := s.queries.ProductTitleExists(ctx, repository.ProductTitleExistsParams{
			Title:           sanitize.String(title),
			ExceptProductNo: id,
		})
		if err != nil {
			return repository.Product{}, fmt.Errorf("failed to check product title: %w", err)
		}
		if taken {
			return repository.Product{}, ErrProductExists
		}
	}

	if errs := validation.ValidateProduct(in, false); len(errs) > 0 {
		return repository.Product{}, invalid(errs)
	}

	params := productUpdate(id, in)
	product, err := s.queries.UpdateProduct(ctx, params)
	switch {
	case errors.Is(err, repository.ErrEmptyUpdate):
		return s.currentProduct(ctx, id)
	case errors.Is(err, pgx.ErrNoRows):
		return repository.Product{}, ErrNotFound
	case repository.IsUniqueViolation(err):
		return repository.Product{}, ErrProductExists
	case err != nil:
		return repository.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidate(ctx, productCacheKey(id))
	s.publish(ctx, events.ProductUpdated, product)

	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	removed, err := s.queries.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if removed != 1 {
		return ErrNotFound
	}

	s.invalidate(ctx, productCacheKey(id))
	s.publish(ctx, events.ProductDeleted, events.Deleted{ID: id})

	return nil
}

func (s *Service) currentProduct(ctx context.Context, id int64) (repository.Product, error) {
	product, err := s.queries.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Product{}, ErrNotFound
		}
		return repository.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// productUpdate maps the validated input to column values. Every field sent
// with a non-null value is written, including a price of 0.
func productUpdate(id int64, in validation.ProductInput) repository.UpdateProductParams {
	params := repository.UpdateProductParams{ProductNo: id}

	escaped := func(f validation.Field) *string {
		s, ok := f.Str()
		if !ok {
			return nil
		}
		v := sanitize.String(s)
		return &v
	}

	params.Title = escaped(in.Title)
	params.Text = escaped(in.Text)
	params.ImgURL = escaped(in.ImgURL)
	params.Category = escaped(in.Category)
	if price, ok := in.Price.Number(); ok {
		v := sanitize.Price(price)
		params.Price = &v
	}

	return params
}
