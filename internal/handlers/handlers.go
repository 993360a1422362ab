package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/sonuudigital/microservices/catalog-service/internal/catalog"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
	"github.com/sonuudigital/microservices/catalog-service/internal/repository"
	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
	"github.com/sonuudigital/microservices/catalog-service/internal/web"
)

const (
	itemNotFoundMsg       = "Item not found"
	productExistsMsg      = "Product already exists"
	categoryNotFoundMsg   = "Category does not exist"
	categoryExistsMsg     = "Category already exists"
	invalidRequestBodyMsg = "Invalid Request Body"

	requestTimeoutTitleMsg      = "Request Timeout"
	internalServerErrorTitleMsg = "Internal Server Error"
)

type Catalog interface {
	ListProducts(ctx context.Context, order string, category *string) ([]repository.Product, error)
	GetProduct(ctx context.Context, id int64) (repository.Product, error)
	CreateProduct(ctx context.Context, in validation.ProductInput) (repository.Product, error)
	UpdateProduct(ctx context.Context, id int64, in validation.ProductInput) (repository.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]repository.Category, error)
	GetCategory(ctx context.Context, id int64) (repository.Category, error)
	CreateCategory(ctx context.Context, in validation.CategoryInput) (repository.Category, error)
	UpdateCategory(ctx context.Context, id int64, in validation.CategoryInput) (repository.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// decodeBody reads the JSON request body into dst. An empty body leaves dst
// untouched so the catalog reports which fields are missing.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type Handler struct {
	catalog Catalog
	logger  logs.Logger
}

func NewHandler(catalog Catalog, logger logs.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// pathID reads the {id} segment. Ids that are not integers cannot name a row,
// so they are answered like any other missing item.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.logger.Debug("invalid id in path", "id", r.PathValue("id"))
		web.RespondWithMessage(w, h.logger, http.StatusNotFound, itemNotFoundMsg)
		return 0, false
	}
	return id, true
}

func (h *Handler) checkContext(w http.ResponseWriter, r *http.Request) bool {
	if !web.CheckContext(r.Context(), h.logger) {
		web.RespondWithError(w, h.logger, r, http.StatusRequestTimeout, requestTimeoutTitleMsg, web.ReqCancelledMsg)
		return false
	}
	return true
}

// respondWithCatalogError maps the catalog's errors to the status table.
// Anything unrecognised is a store fault and becomes a 500.
func (h *Handler) respondWithCatalogError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		web.RespondWithJSON(w, h.logger, http.StatusBadRequest, verr.Errors)
	case errors.Is(err, catalog.ErrNotFound):
		web.RespondWithMessage(w, h.logger, http.StatusNotFound, itemNotFoundMsg)
	case errors.Is(err, catalog.ErrProductExists):
		web.RespondWithMessage(w, h.logger, http.StatusBadRequest, productExistsMsg)
	case errors.Is(err, catalog.ErrCategoryNotFound):
		web.RespondWithMessage(w, h.logger, http.StatusBadRequest, categoryNotFoundMsg)
	case errors.Is(err, catalog.ErrCategoryExists):
		web.RespondWithMessage(w, h.logger, http.StatusBadRequest, categoryExistsMsg)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("request cancelled during "+action, "error", err)
		web.RespondWithError(w, h.logger, r, http.StatusRequestTimeout, requestTimeoutTitleMsg, web.ReqCancelledMsg)
	default:
		h.logger.Error("failed to "+action, "error", err)
		web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to "+action+".")
	}
}
