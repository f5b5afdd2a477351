package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/jwt"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BalanceProvider exposes the latest balance/price snapshot.
type BalanceProvider interface {
	Snapshot() map[string]models.AssetBalance
	Price(ctx context.Context) decimal.Decimal
}

// TokenBalance represents one asset's holdings
// swagger:model TokenBalance
type TokenBalance struct {
	// Available amount
	// default: 2.5
	Amount string `json:"amount"`

	// USD price of the asset
	// default: 190
	PriceUSD string `json:"price_usd"`
}

// BalanceResponse represents a successful response with token balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// SOL holdings
	SOL TokenBalance `json:"SOL"`

	// USDT holdings
	USDT TokenBalance `json:"USDT"`

	// Price of SOL in USDT
	// default: 190
	Price string `json:"price"`
}

// BalanceErrorResponse represents an error response when fetching balances
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching token balances.
// @Summary Get token balances
// @Description Returns the latest SOL and USDT holdings and the SOL/USDT price
// @Tags balance
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Token balances"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	balances BalanceProvider,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized balance request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		snapshot := balances.Snapshot()

		resp := BalanceResponse{
			Price: balances.Price(ctx).String(),
		}
		if sol, ok := snapshot[models.SOL]; ok {
			resp.SOL = TokenBalance{Amount: sol.Balance.String(), PriceUSD: sol.PriceUSD.String()}
		}
		if usdt, ok := snapshot[models.USDT]; ok {
			resp.USDT = TokenBalance{Amount: usdt.Balance.String(), PriceUSD: usdt.PriceUSD.String()}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
