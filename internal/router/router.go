package router

import (
	"context"
	"net/http"
	"time"

	"github.com/sonuudigital/microservices/catalog-service/internal/db"
	"github.com/sonuudigital/microservices/catalog-service/internal/handlers"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
	"github.com/sonuudigital/microservices/catalog-service/internal/middlewares"
	"github.com/sonuudigital/microservices/catalog-service/internal/web/health"
)

const readinessTimeout = 1 * time.Second

// ConfigRoutes registers the probes and the catalog routes. Extra readiness
// checks (redis, broker) are run after the database ping.
func ConfigRoutes(database db.DB, catalog handlers.Catalog, rateLimiter *middlewares.RateLimiterMiddleware, logger logs.Logger, checks ...health.CheckFunc) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /api/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := database.Ping(ctx); err != nil {
			logger.Warn("database not ready", "error", err)
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		for _, check := range checks {
			if err := check(ctx); err != nil {
				logger.Warn("dependency not ready", "error", err)
				http.Error(w, "dependency not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	h := handlers.NewHandler(catalog, logger)
	limit := func(fn http.HandlerFunc) http.Handler {
		return rateLimiter.Middleware(fn)
	}

	registerProductRoutes(mux, h, limit)
	registerCategoryRoutes(mux, h, limit)

	return mux
}

func registerProductRoutes(mux *http.ServeMux, h *handlers.Handler, limit func(http.HandlerFunc) http.Handler) {
	mux.Handle("GET /products", limit(h.ListProductsHandler))
	mux.Handle("GET /products/{id}", limit(h.GetProductHandler))
	mux.Handle("POST /products", limit(h.CreateProductHandler))
	mux.Handle("PATCH /products/{id}", limit(h.UpdateProductHandler))
	mux.Handle("DELETE /products/{id}", limit(h.DeleteProductHandler))
}

func registerCategoryRoutes(mux *http.ServeMux, h *handlers.Handler, limit func(http.HandlerFunc) http.Handler) {
	mux.Handle("GET /categories", limit(h.ListCategoriesHandler))
	mux.Handle("GET /categories/{id}", limit(h.GetCategoryHandler))
	mux.Handle("POST /categories", limit(h.CreateCategoryHandler))
	mux.Handle("PATCH /categories/{id}", limit(h.UpdateCategoryHandler))
	mux.Handle("DELETE /categories/{id}", limit(h.DeleteCategoryHandler))
}
