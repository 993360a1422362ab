package handlers

import (
	"net/http"

	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
	"github.com/sonuudigital/microservices/catalog-service/internal/web"
)

func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	if !h.checkContext(w, r) {
		return
	}

	var in validation.ProductInput
	if err := decodeBody(r, &in); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyMsg, err.Error())
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), in)
	if err != nil {
		h.respondWithCatalogError(w, r, err, "create product")
		return
	}

	h.logger.Debug("product created", "productNo", product.ProductNo)
	web.RespondWithJSON(w, h.logger, http.StatusCreated, product)
}
