package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/seller"
	"github.com/pehchaan/marketplace-demo/internal/session"
)

// SellerHandler serves the dashboard. It is gated on a seller session the
// way the original only showed the dashboard to sellers; there is no real
// authorization behind it.
type SellerHandler struct {
	seller   *seller.Service
	session  *session.Service
	validate *validator.Validate
}

func NewSellerHandler(sellerSvc *seller.Service, sessionSvc *session.Service) *SellerHandler {
	return &SellerHandler{
		seller:   sellerSvc,
		session:  sessionSvc,
		validate: validator.New(),
	}
}

func (h *SellerHandler) RegisterRoutes(router chi.Router) {
	router.Get("/seller/listings", h.handleListings)
	router.Post("/seller/listings", h.handleAddListing)
	router.Get("/seller/stats", h.handleStats)
}

func (h *SellerHandler) currentSeller(w http.ResponseWriter) (session.User, bool) {
	u, ok := h.session.Current()
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Sign in required")
		return session.User{}, false
	}
	if u.Type != session.TypeSeller {
		respondWithError(w, http.StatusForbidden, "Seller account required")
		return session.User{}, false
	}
	return u, true
}

func (h *SellerHandler) handleListings(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentSeller(w); !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, h.seller.Listings())
}

func (h *SellerHandler) handleAddListing(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentSeller(w)
	if !ok {
		return
	}

	var form seller.ListingForm

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&form); err != nil {
		log.Error().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(form); err != nil {
		respondWithValidationError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, h.seller.AddListing(form, u.Name))
}

func (h *SellerHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentSeller(w); !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, h.seller.Stats())
}
