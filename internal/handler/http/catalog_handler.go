package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/catalog"
)

// CatalogHandler serves the storefront: product list with filters, product
// detail, categories and artisan stories.
type CatalogHandler struct {
	catalog *catalog.Store
}

func NewCatalogHandler(cat *catalog.Store) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) RegisterRoutes(router chi.Router) {
	router.Get("/products", h.handleListProducts)
	router.Get("/products/{id}", h.handleGetProduct)
	router.Get("/categories", h.handleListCategories)
	router.Get("/artisans", h.handleListArtisans)
}

type ProductListResponse struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
}

// handleListProducts applies the sidebar filters and the search query to
// the catalog. An empty result is a valid response, shown as "0 products
// found", never an error.
func (h *CatalogHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilterState(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	products := h.catalog.List()
	if query := r.URL.Query().Get("q"); query != "" {
		products = h.catalog.Search(query)
	}

	filtered := catalog.Apply(products, filter)

	respondWithJSON(w, http.StatusOK, ProductListResponse{Products: filtered, Count: len(filtered)})
}

type ProductDetailResponse struct {
	Product catalog.Product  `json:"product"`
	Reviews []catalog.Review `json:"reviews"`
}

// handleGetProduct renders nothing but a NotFound for an unknown ID; the
// detail view must never crash on a stale link.
func (h *CatalogHandler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.catalog.FindByID(id)
	if err != nil {
		log.Warn().Str("product_id", id).Msg("Product not found")
		respondWithError(w, mapErrorToStatusCode(err), "Product not found")
		return
	}

	respondWithJSON(w, http.StatusOK, ProductDetailResponse{
		Product: p,
		Reviews: h.catalog.ReviewsFor(id),
	})
}

type CategorySummary struct {
	Name     string            `json:"name"`
	Count    int               `json:"count"`
	Featured []catalog.Product `json:"featured"`
}

func (h *CatalogHandler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.List()

	summaries := make([]CategorySummary, 0, len(h.catalog.Categories()))
	for _, name := range h.catalog.Categories() {
		var featured []catalog.Product
		for _, p := range all {
			if p.Category == name {
				featured = append(featured, p)
			}
		}
		summaries = append(summaries, CategorySummary{Name: name, Count: len(featured), Featured: featured})
	}

	respondWithJSON(w, http.StatusOK, summaries)
}

func (h *CatalogHandler) handleListArtisans(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.ArtisanStories())
}

// parseFilterState reads the filter query params, starting from the
// storefront defaults so an absent param leaves its predicate inactive.
func parseFilterState(r *http.Request) (catalog.FilterState, error) {
	filter := catalog.NewFilterState()
	query := r.URL.Query()

	filter.Category = query.Get("category")

	var err error
	if filter.PriceMin, err = intParam(query.Get("price_min"), 0); err != nil {
		return catalog.FilterState{}, err
	}
	if filter.PriceMax, err = intParam(query.Get("price_max"), catalog.DefaultPriceMax); err != nil {
		return catalog.FilterState{}, err
	}
	if filter.MinRating, err = intParam(query.Get("min_rating"), 0); err != nil {
		return catalog.FilterState{}, err
	}

	return filter, nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
