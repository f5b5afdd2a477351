package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-token-swap/internal/jwt"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
)

// CloseSessionTokener defines only the methods needed by this handler.
type CloseSessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionCloser tears down a user's open swap session.
type SessionCloser interface {
	Close(userID uuid.UUID) bool
}

// CloseSessionResponse represents a successful session close
// swagger:model CloseSessionResponse
type CloseSessionResponse struct {
	// Success message
	// default: Session closed
	Message string `json:"message"`
}

// CloseSessionErrorResponse represents an error response when closing a session
// swagger:model CloseSessionErrorResponse
type CloseSessionErrorResponse struct {
	// Error message
	// default: No open session
	Error string `json:"error"`
}

// NewCloseSessionHandler closes the authenticated user's swap session.
// Pending toggle timers are cancelled and in-flight work is dropped.
// @Summary Close swap session
// @Description Closes the open swap session, cancelling pending state changes
// @Tags session
// @Produce json
// @Success 200 {object} handlers.CloseSessionResponse "Session closed"
// @Failure 401 {object} handlers.CloseSessionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.CloseSessionErrorResponse "No open session"
// @Router /swap/session [delete]
// @Security BearerAuth
func NewCloseSessionHandler(
	tokener CloseSessionTokener,
	closer SessionCloser,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CloseSessionErrorResponse{Error: "Unauthorized"})
			return
		}

		if !closer.Close(claims.UserID) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(CloseSessionErrorResponse{Error: "No open session"})
			return
		}
		logger.Log.Infow("swap session closed", "userID", claims.UserID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CloseSessionResponse{Message: "Session closed"})
	}
}
