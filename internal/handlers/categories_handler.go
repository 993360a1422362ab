package handlers

import (
	"net/http"

	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
	"github.com/sonuudigital/microservices/catalog-service/internal/web"
)

func (h *Handler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if !h.checkContext(w, r) {
		return
	}

	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.respondWithCatalogError(w, r, err, "list categories")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, categories)
}

func (h *Handler) GetCategoryHandler(w http.ResponseWriter, r *http.Request) {
	if !h.checkContext(w, r) {
		return
	}

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	category, err := h.catalog.GetCategory(r.Context(), id)
	if err != nil {
		h.respondWithCatalogError(w, r, err, "get category")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, category)
}

func (h *Handler) CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	if !h.checkContext(w, r) {
		return
	}

	var in validation.CategoryInput
	if err := decodeBody(r, &in); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyMsg, err.Error())
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), in)
	if err != nil {
		h.respondWithCatalogError(w, r, err, "create category")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusCreated, category)
}

func (h *Handler) UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	if !h.checkContext(w, r) {
		return
	}

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in validation.CategoryInput
	if err := decodeBody(r, &in); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyMsg, err.Error())
		return
	}

	category, err := h.catalog.UpdateCategory(r.Context(), id, in)
	if err != nil {
		h.respondWithCatalogError(w, r, err, "update category")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusCreated, category)
}

func (h *Handler) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	if !h.checkContext(w, r) {
		return
	}

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		h.respondWithCatalogError(w, r, err, "delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
