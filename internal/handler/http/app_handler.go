package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/app"
)

// AppHandler exposes the navigation state of the application-state object.
type AppHandler struct {
	app *app.App
}

func NewAppHandler(a *app.App) *AppHandler {
	return &AppHandler{app: a}
}

func (h *AppHandler) RegisterRoutes(router chi.Router) {
	router.Get("/location", h.handleGetLocation)
	router.Post("/navigate", h.handleNavigate)
}

type LocationResponse struct {
	Page      app.Page `json:"page"`
	ProductID string   `json:"product_id,omitempty"`
}

type NavigateRequest struct {
	Page      app.Page `json:"page"`
	ProductID string   `json:"product_id"`
}

func (h *AppHandler) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	page, productID := h.app.Location()
	respondWithJSON(w, http.StatusOK, LocationResponse{Page: page, ProductID: productID})
}

func (h *AppHandler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var requestPayload NavigateRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.app.Navigate(requestPayload.Page, requestPayload.ProductID); err != nil {
		respondWithError(w, mapErrorToStatusCode(err), "Unknown page")
		return
	}

	page, productID := h.app.Location()
	respondWithJSON(w, http.StatusOK, LocationResponse{Page: page, ProductID: productID})
}
