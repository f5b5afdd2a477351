package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/jwt"
	"github.com/sbilibin2017/gw-token-swap/internal/sessions"
)

// AmountTokener defines only the methods needed by this handler.
type AmountTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionGetter looks up a user's open swap session.
type SessionGetter interface {
	Get(userID uuid.UUID) (*sessions.Session, bool)
}

// PriceProvider exposes the current pair price and per-asset balances.
type PriceProvider interface {
	Price(ctx context.Context) decimal.Decimal
	Available(asset string) decimal.Decimal
}

// SetAmountRequest represents the JSON body for an amount update
// swagger:model SetAmountRequest
type SetAmountRequest struct {
	// Raw amount input for the sold asset
	// default: 2
	Amount string `json:"amount"`

	// Use the full available balance instead of Amount
	// default: false
	Max bool `json:"max"`
}

// SetAmountResponse represents the session state after an amount update
// swagger:model SetAmountResponse
type SetAmountResponse struct {
	// Session state
	Session SessionView `json:"session"`
}

// SetAmountErrorResponse represents an error response for an amount update
// swagger:model SetAmountErrorResponse
type SetAmountErrorResponse struct {
	// Error message
	// default: No open session
	Error string `json:"error"`
}

// NewSetAmountHandler applies raw amount input to the open session. Input
// failing the amount grammar is ignored and the previous state is returned
// unchanged, mirroring an input field that refuses the keystroke.
// @Summary Set swap amount
// @Description Updates the sold amount, derives the bought amount at the current price and re-evaluates the insufficiency flag
// @Tags session
// @Accept json
// @Produce json
// @Param request body handlers.SetAmountRequest true "Amount update"
// @Success 200 {object} handlers.SetAmountResponse "Updated session state"
// @Failure 400 {object} handlers.SetAmountErrorResponse "Malformed request body"
// @Failure 401 {object} handlers.SetAmountErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SetAmountErrorResponse "No open session"
// @Router /swap/session/amount [put]
// @Security BearerAuth
func NewSetAmountHandler(
	tokener AmountTokener,
	getter SessionGetter,
	prices PriceProvider,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SetAmountErrorResponse{Error: "Unauthorized"})
			return
		}

		sess, ok := getter.Get(claims.UserID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SetAmountErrorResponse{Error: "No open session"})
			return
		}

		var req SetAmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetAmountErrorResponse{Error: "Invalid request body"})
			return
		}

		price := prices.Price(ctx)
		available := prices.Available(sess.View().SwapType.FromAsset())

		var view sessions.View
		if req.Max {
			view = sess.UseMax(price, available)
		} else {
			view = sess.SetAmount(req.Amount, price, available)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetAmountResponse{Session: newSessionView(view)})
	}
}
