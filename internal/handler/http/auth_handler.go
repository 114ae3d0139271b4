package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/session"
)

// AuthHandler wraps the simulated login/signup flows.
type AuthHandler struct {
	session  *session.Service
	validate *validator.Validate
}

func NewAuthHandler(sessionSvc *session.Service) *AuthHandler {
	return &AuthHandler{
		session:  sessionSvc,
		validate: validator.New(),
	}
}

func (h *AuthHandler) RegisterRoutes(router chi.Router) {
	router.Post("/auth/login", h.handleLogin)
	router.Post("/auth/signup", h.handleSignup)
	router.Post("/auth/logout", h.handleLogout)
	router.Get("/auth/session", h.handleGetSession)
}

type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *session.User `json:"user,omitempty"`
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var form session.LoginForm

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

	u, err := h.session.Login(form)
	if err != nil {
		statusCode := mapErrorToStatusCode(err)

		var clientMessage string
		if errors.Is(err, session.ErrInvalidCredentials) {
			clientMessage = "Invalid credentials"
		} else {
			log.Error().Err(err).Msg("Failed to log in")
			clientMessage = "Failed to log in"
		}

		respondWithError(w, statusCode, clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{Authenticated: true, User: &u})
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var form session.SignupForm

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

	u, err := h.session.Signup(form)
	if err != nil {
		statusCode := mapErrorToStatusCode(err)

		var clientMessage string
		if errors.Is(err, session.ErrEmailExists) {
			clientMessage = "Email already registered"
		} else {
			log.Error().Err(err).Msg("Failed to sign up")
			clientMessage = "Failed to sign up"
		}

		respondWithError(w, statusCode, clientMessage)
		return
	}

	respondWithJSON(w, http.StatusCreated, SessionResponse{Authenticated: true, User: &u})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout()
	respondWithJSON(w, http.StatusOK, SessionResponse{Authenticated: false})
}

func (h *AuthHandler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	u, ok := h.session.Current()
	if !ok {
		respondWithJSON(w, http.StatusOK, SessionResponse{Authenticated: false})
		return
	}
	respondWithJSON(w, http.StatusOK, SessionResponse{Authenticated: true, User: &u})
}
