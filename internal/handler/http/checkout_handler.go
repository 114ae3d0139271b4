package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/checkout"
)

// CheckoutHandler drives the payment stepper.
type CheckoutHandler struct {
	stepper  *checkout.Stepper
	validate *validator.Validate
}

func NewCheckoutHandler(stepper *checkout.Stepper) *CheckoutHandler {
	return &CheckoutHandler{
		stepper:  stepper,
		validate: validator.New(),
	}
}

func (h *CheckoutHandler) RegisterRoutes(router chi.Router) {
	router.Get("/checkout", h.handleGetState)
	router.Post("/checkout", h.handleSubmit)
	router.Post("/checkout/reset", h.handleReset)
}

type SubmitRequest struct {
	PaymentMethod checkout.PaymentMethod   `json:"payment_method" validate:"required,oneof=card upi cod"`
	Shipping      checkout.ShippingAddress `json:"shipping" validate:"required"`
}

type CheckoutStateResponse struct {
	Step  checkout.Step   `json:"step"`
	Order *checkout.Order `json:"order,omitempty"`
}

func (h *CheckoutHandler) stateResponse() CheckoutStateResponse {
	resp := CheckoutStateResponse{Step: h.stepper.State()}
	if order, ok := h.stepper.Current(); ok {
		resp.Order = &order
	}
	return resp
}

// handleSubmit places the order. A second submission while one is
// processing is not an error: it answers with the checkout in flight.
func (h *CheckoutHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var requestPayload SubmitRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidationError(w, err)
		return
	}

	order, accepted := h.stepper.Submit(requestPayload.PaymentMethod, requestPayload.Shipping)
	if !accepted {
		respondWithJSON(w, http.StatusOK, h.stateResponse())
		return
	}

	respondWithJSON(w, http.StatusAccepted, CheckoutStateResponse{
		Step:  h.stepper.State(),
		Order: &order,
	})
}

func (h *CheckoutHandler) handleGetState(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.stateResponse())
}

// handleReset starts a new checkout after settlement. While processing it
// answers with the current state: no cancellation once processing begins.
func (h *CheckoutHandler) handleReset(w http.ResponseWriter, r *http.Request) {
	if !h.stepper.Reset() {
		respondWithJSON(w, http.StatusConflict, h.stateResponse())
		return
	}
	respondWithJSON(w, http.StatusOK, h.stateResponse())
}
