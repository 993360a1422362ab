package handlers

import (
	"net/http"
)

func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if !h.checkContext(w, r) {
		return
	}

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		h.respondWithCatalogError(w, r, err, "delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
