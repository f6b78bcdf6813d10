// Package app wires the storefront handlers into an HTTP router.
package app

import (
	"net/http"
	"time"

	"github.com/mytheresa/go-storefront/app/cart"
	"github.com/mytheresa/go-storefront/app/catalog"
	"github.com/mytheresa/go-storefront/app/reviews"
	"github.com/mytheresa/go-storefront/storefront"
	"go.uber.org/zap"
)

func NewRouter(store *storefront.App, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	catalogHandler := catalog.NewCatalogHandler(store, logger)
	cartHandler := cart.NewCartHandler(store, logger)
	reviewHandler := reviews.NewReviewHandler(store, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /product", catalogHandler.HandleGet)
	mux.HandleFunc("POST /product/variants/{index}", catalogHandler.HandleSelectVariant)
	mux.HandleFunc("POST /product/cart", catalogHandler.HandleAddToCart)
	mux.HandleFunc("GET /product/reviews", reviewHandler.HandleGetAll)
	mux.HandleFunc("POST /product/reviews", reviewHandler.HandleCreate)
	mux.HandleFunc("GET /cart", cartHandler.HandleGet)
	mux.HandleFunc("DELETE /cart/{position}", cartHandler.HandleRemove)
	mux.HandleFunc("POST /cart/toggle", cartHandler.HandleToggle)

	return logRequests(mux, logger)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
