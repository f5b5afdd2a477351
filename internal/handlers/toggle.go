package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-token-swap/internal/jwt"
)

// ToggleTokener defines only the methods needed by this handler.
type ToggleTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ToggleResponse represents the session state after a direction toggle
// swagger:model ToggleResponse
type ToggleResponse struct {
	// The toggle was accepted; false when one is already in flight
	// default: true
	Accepted bool `json:"accepted"`

	// Session state
	Session SessionView `json:"session"`
}

// ToggleErrorResponse represents an error response for a direction toggle
// swagger:model ToggleErrorResponse
type ToggleErrorResponse struct {
	// Error message
	// default: No open session
	Error string `json:"error"`
}

// NewToggleHandler flips the swap direction of the open session. The swap
// of roles and amounts happens at the midpoint of the animation window; a
// toggle requested while one is in flight is ignored, not queued.
// @Summary Toggle swap direction
// @Description Swaps the sold and bought assets and their amounts
// @Tags session
// @Produce json
// @Success 200 {object} handlers.ToggleResponse "Toggle state"
// @Failure 401 {object} handlers.ToggleErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ToggleErrorResponse "No open session"
// @Router /swap/session/toggle [post]
// @Security BearerAuth
func NewToggleHandler(
	tokener ToggleTokener,
	getter SessionGetter,
	prices PriceProvider,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ToggleErrorResponse{Error: "Unauthorized"})
			return
		}

		sess, ok := getter.Get(claims.UserID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ToggleErrorResponse{Error: "No open session"})
			return
		}

		// The asset currently being bought becomes the sold asset once the
		// toggle lands, so its balance drives the insufficiency re-check.
		newFromAvailable := prices.Available(sess.View().SwapType.ToAsset())
		accepted := sess.Toggle(newFromAvailable)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ToggleResponse{
			Accepted: accepted,
			Session:  newSessionView(sess.View()),
		})
	}
}
