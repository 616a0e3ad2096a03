package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/opshrm/hrms/internal/middleware"
)

type ErrorResponse struct {
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondInternalError logs the failure and keeps the client message
// generic. Underlying detail is exposed only in development mode.
func respondInternalError(w http.ResponseWriter, r *http.Request, dev bool, err error) {
	slog.ErrorContext(r.Context(), "internal error",
		"error", err,
		"path", r.URL.Path,
		"requestID", chmw.GetReqID(r.Context()),
	)

	if dev {
		details := []string{err.Error()}
		respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error",
			Details: &details,
		})
		return
	}

	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}

// principalFrom extracts the authenticated principal placed in the request
// context by the auth middleware.
func principalFrom(w http.ResponseWriter, r *http.Request) (middleware.Principal, bool) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return principal, ok
}
