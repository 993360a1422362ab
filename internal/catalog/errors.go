package catalog

import (
	"errors"
	"fmt"

	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
)

var (
	ErrNotFound         = errors.New("item not found")
	ErrProductExists    = errors.New("product already exists")
	ErrCategoryNotFound = errors.New("category does not exist")
	ErrCategoryExists   = errors.New("category already exists")
)

// ValidationError carries the field level problems of a rejected write.
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d field error(s)", len(e.Errors))
}

func invalid(errs []validation.FieldError) error {
	return &ValidationError{Errors: errs}
}
