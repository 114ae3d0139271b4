package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pehchaan/marketplace-demo/internal/checkout"
	"github.com/pehchaan/marketplace-demo/internal/session"
)

// ProfileHandler serves the buyer profile: the session user plus the order
// history read from the persisted order log.
type ProfileHandler struct {
	session *session.Service
	orders  interface{ Orders() []checkout.Order }
}

func NewProfileHandler(sessionSvc *session.Service, orders interface{ Orders() []checkout.Order }) *ProfileHandler {
	return &ProfileHandler{session: sessionSvc, orders: orders}
}

func (h *ProfileHandler) RegisterRoutes(router chi.Router) {
	router.Get("/profile", h.handleGetProfile)
}

type ProfileResponse struct {
	User   session.User     `json:"user"`
	Orders []checkout.Order `json:"orders"`
}

func (h *ProfileHandler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.session.Current()
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Sign in required")
		return
	}

	respondWithJSON(w, http.StatusOK, ProfileResponse{
		User:   u,
		Orders: h.orders.Orders(),
	})
}
