// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/opshrm/hrms/internal/domain"
	"github.com/opshrm/hrms/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	dev         bool
}

func NewAuthHandler(authService *service.AuthService, dev bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		dev:         dev,
	}
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.authService.Register(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			respondWithError(w, http.StatusConflict, "User already exists")
		default:
			respondInternalError(w, r, h.dev, err)
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, output)
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.authService.Login(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInvalidCredentials):
			// Never reveals whether the email is registered
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			slog.ErrorContext(r.Context(), "User login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondInternalError(w, r, h.dev, err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}

// LogoutHandler never fails client-visibly: a missing, invalid or expired
// token is already logged out.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var token string
	if parts := strings.Split(r.Header.Get("Authorization"), " "); len(parts) == 2 && parts[0] == "Bearer" {
		token = parts[1]
	}

	h.authService.Logout(r.Context(), token)

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}
