package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sonuudigital/microservices/catalog-service/internal/events"
	"github.com/sonuudigital/microservices/catalog-service/internal/repository"
	"github.com/sonuudigital/microservices/catalog-service/internal/sanitize"
	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
)

func (s *Service) ListCategories(ctx context.Context) ([]repository.Category, error) {
	var categories []repository.Category
	if s.fromCache(ctx, allCategoriesCacheKey, &categories) {
		return categories, nil
	}

	gen, cacheable := s.generation(ctx, allCategoriesCacheKey)

	categories, err := s.queries.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if cacheable {
		s.toCache(ctx, allCategoriesCacheKey, gen, categories)
	}

	return categories, nil
}

// GetCategory reports ErrNotFound both for a missing row and for a failed
// lookup; the failure is only logged.
func (s *Service) GetCategory(ctx context.Context, id int64) (repository.Category, error) {
	key := categoryCacheKey(id)

	var category repository.Category
	if s.fromCache(ctx, key, &category) {
		return category, nil
	}

	gen, cacheable := s.generation(ctx, key)

	category, err := s.queries.GetCategory(ctx, id)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("failed to fetch category", "id", id, "error", err)
		}
		return repository.Category{}, ErrNotFound
	}

	if cacheable {
		s.toCache(ctx, key, gen, category)
	}

	return category, nil
}

func (s *Service) CreateCategory(ctx context.Context, in validation.CategoryInput) (repository.Category, error) {
	if !in.Category.Set() {
		return repository.Category{}, invalid(validation.CategoryNameRequired())
	}

	if errs := validation.ValidateCategory(in); len(errs) > 0 {
		return repository.Category{}, invalid(errs)
	}

	name, _ := in.Category.Str()
	name = sanitize.String(name)

	exists, err := s.queries.CategoryExists(ctx, name)
	if err != nil {
		return repository.Category{}, fmt.Errorf("failed to check category: %w", err)
	}
	if exists {
		return repository.Category{}, ErrCategoryExists
	}

	category, err := s.queries.CreateCategory(ctx, name)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return repository.Category{}, ErrCategoryExists
		}
		return repository.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	s.invalidate(ctx, allCategoriesCacheKey)
	s.publish(ctx, events.CategoryCreated, category)

	return category, nil
}

// UpdateCategory renames a category. Products keep the old name; renames are
// not cascaded.
func (s *Service) UpdateCategory(ctx context.Context, id int64, in validation.CategoryInput) (repository.Category, error) {
	if errs := validation.ValidateCategory(in); len(errs) > 0 {
		return repository.Category{}, invalid(errs)
	}

	name, ok := in.Category.Str()
	if !ok {
		return s.currentCategory(ctx, id)
	}
	name = sanitize.String(name)

	exists, err := s.queries.CategoryExists(ctx, name)
	if err != nil {
		return repository.Category{}, fmt.Errorf("failed to check category: %w", err)
	}
	if exists {
		return repository.Category{}, ErrCategoryExists
	}

	category, err := s.queries.UpdateCategory(ctx, repository.UpdateCategoryParams{ID: id, Category: name})
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return repository.Category{}, ErrNotFound
	case repository.IsUniqueViolation(err):
		return repository.Category{}, ErrCategoryExists
	case err != nil:
		return repository.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	s.invalidate(ctx, categoryCacheKey(id), allCategoriesCacheKey)
	s.publish(ctx, events.CategoryUpdated, category)

	return category, nil
}

// DeleteCategory removes only the category row; products that name it are
// left untouched.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	removed, err := s.queries.DeleteCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if removed != 1 {
		return ErrNotFound
	}

	s.invalidate(ctx, categoryCacheKey(id), allCategoriesCacheKey)
	s.publish(ctx, events.CategoryDeleted, events.Deleted{ID: id})

	return nil
}

func (s *Service) currentCategory(ctx context.Context, id int64) (repository.Category, error) {
	category, err := s.queries.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Category{}, ErrNotFound
		}
		return repository.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}
