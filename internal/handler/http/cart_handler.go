package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/cart"
	"github.com/pehchaan/marketplace-demo/internal/catalog"
)

// CartHandler exposes the cart aggregator. Quantity clamping to stock
// happens here, in the detail-view path, not inside the aggregator.
type CartHandler struct {
	catalog *catalog.Store
	cart    *cart.Service
}

func NewCartHandler(cat *catalog.Store, cartSvc *cart.Service) *CartHandler {
	return &CartHandler{catalog: cat, cart: cartSvc}
}

func (h *CartHandler) RegisterRoutes(router chi.Router) {
	router.Get("/cart", h.handleGetCart)
	router.Post("/cart/items", h.handleAddItem)
	router.Put("/cart/items/{id}", h.handleSetQuantity)
	router.Delete("/cart/items/{id}", h.handleRemoveItem)
	router.Delete("/cart", h.handleClear)
}

type CartResponse struct {
	Lines []cart.Line `json:"lines"`
	Total int         `json:"total"`
	Count int         `json:"count"`
}

func cartResponse(c cart.Cart) CartResponse {
	return CartResponse{Lines: c.Lines, Total: c.Total(), Count: c.Count()}
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var requestPayload AddItemRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	p, err := h.catalog.FindByID(requestPayload.ProductID)
	if err != nil {
		respondWithError(w, mapErrorToStatusCode(err), "Product not found")
		return
	}

	// The detail-view stepper keeps the chosen quantity within [1, stock];
	// the add defaults to one, as the card button does.
	quantity := requestPayload.Quantity
	if quantity < 1 {
		quantity = 1
	}
	if quantity > p.Stock {
		quantity = p.Stock
	}

	respondWithJSON(w, http.StatusOK, cartResponse(h.cart.Add(p, quantity)))
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var requestPayload SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	c, ok := h.cart.SetQuantity(id, requestPayload.Quantity)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Product not in cart")
		return
	}

	respondWithJSON(w, http.StatusOK, cartResponse(c))
}

// handleRemoveItem deletes a line. Removing an absent product still answers
// with the current cart: a no-op, not an error.
func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, cartResponse(h.cart.Remove(chi.URLParam(r, "id"))))
}

func (h *CartHandler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, cartResponse(h.cart.Get()))
}

func (h *CartHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	respondWithJSON(w, http.StatusOK, cartResponse(h.cart.Get()))
}
