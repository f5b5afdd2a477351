package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-token-swap/internal/jwt"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/sessions"
)

// OpenSessionTokener defines only the methods needed by this handler.
type OpenSessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionOpener creates a fresh swap session for a user.
type SessionOpener interface {
	Open(userID uuid.UUID) *sessions.Session
}

// OpenSessionResponse represents a freshly opened swap session
// swagger:model OpenSessionResponse
type OpenSessionResponse struct {
	// Session state
	Session SessionView `json:"session"`
}

// OpenSessionErrorResponse represents an error response when opening a session
// swagger:model OpenSessionErrorResponse
type OpenSessionErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewOpenSessionHandler opens a swap session for the authenticated user.
// Any previously open session is closed first, so a reopened dialog always
// starts from a clean state.
// @Summary Open swap session
// @Description Opens a fresh swap session, replacing any existing one
// @Tags session
// @Produce json
// @Success 201 {object} handlers.OpenSessionResponse "Session opened"
// @Failure 401 {object} handlers.OpenSessionErrorResponse "Unauthorized"
// @Router /swap/session [post]
// @Security BearerAuth
func NewOpenSessionHandler(
	tokener OpenSessionTokener,
	opener SessionOpener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OpenSessionErrorResponse{Error: "Unauthorized"})
			return
		}

		sess := opener.Open(claims.UserID)
		logger.Log.Infow("swap session opened", "userID", claims.UserID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(OpenSessionResponse{Session: newSessionView(sess.View())})
	}
}

// claimsFromRequest extracts and validates the caller's token claims.
func claimsFromRequest(
	ctx context.Context,
	tokener OpenSessionTokener,
	r *http.Request,
) (*jwt.Claims, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		return nil, err
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		return nil, err
	}
	return claims, nil
}
