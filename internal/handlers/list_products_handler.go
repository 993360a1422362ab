package handlers

import (
	"net/http"

	"github.com/sonuudigital/microservices/catalog-service/internal/web"
)

func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	if !h.checkContext(w, r) {
		return
	}

	query := r.URL.Query()
	var category *string
	if query.Has("category") {
		c := query.Get("category")
		category = &c
	}

	products, err := h.catalog.ListProducts(r.Context(), query.Get("order"), category)
	if err != nil {
		h.respondWithCatalogError(w, r, err, "list products")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, products)
}
