package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/pehchaan/marketplace-demo/internal/app"
)

// NewRouter wires every handler over the shared application state.
func NewRouter(a *app.App) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)
	r.Use(RateLimit(rate.NewLimiter(rate.Limit(50), 100)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	NewCatalogHandler(a.Catalog).RegisterRoutes(r)
	NewCartHandler(a.Catalog, a.Cart).RegisterRoutes(r)
	NewCheckoutHandler(a.Checkout).RegisterRoutes(r)
	NewAuthHandler(a.Session).RegisterRoutes(r)
	NewSellerHandler(a.Seller, a.Session).RegisterRoutes(r)
	NewProfileHandler(a.Session, a.Checkout).RegisterRoutes(r)
	NewAppHandler(a).RegisterRoutes(r)

	return r
}
