package handlers

import (
	"net/http"

	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
	"github.com/sonuudigital/microservices/catalog-service/internal/web"
)

// UpdateProductHandler answers a successful PATCH with 201, matching create.
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	if !h.checkContext(w, r) {
		return
	}

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in validation.ProductInput
	if err := decodeBody(r, &in); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyMsg, err.Error())
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, in)
	if err != nil {
		h.respondWithCatalogError(w, r, err, "update product")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusCreated, product)
}
