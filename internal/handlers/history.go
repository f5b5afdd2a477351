package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-token-swap/internal/jwt"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// HistoryTokener defines only the methods needed by this handler.
type HistoryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// HistoryProvider returns past swap executions formatted for display.
type HistoryProvider interface {
	History(ctx context.Context, userID uuid.UUID) ([]models.SwapHistoryItem, error)
}

// HistoryResponse represents fetched swap history. Status is always
// "ready": an empty Swaps list means the user has no past swaps, which is
// distinct from the fetch still being in flight on the caller's side.
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Fetch status
	// default: ready
	Status string `json:"status"`

	// Past swaps, newest first
	Swaps []models.SwapHistoryItem `json:"swaps"`
}

// HistoryErrorResponse represents an error response when fetching history
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// default: Failed to fetch swap history
	Error string `json:"error"`
}

// NewSwapHistoryHandler returns the authenticated user's swap history.
// A successful fetch marks the open session's history fresh, if one exists.
// @Summary Get swap history
// @Description Returns past swap executions with display-formatted times and amounts
// @Tags history
// @Produce json
// @Success 200 {object} handlers.HistoryResponse "Swap history"
// @Failure 401 {object} handlers.HistoryErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.HistoryErrorResponse "History unavailable"
// @Router /swap/history [get]
// @Security BearerAuth
func NewSwapHistoryHandler(
	tokener HistoryTokener,
	provider HistoryProvider,
	getter SessionGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		items, err := provider.History(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to fetch swap history", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Failed to fetch swap history"})
			return
		}

		if getter != nil {
			if sess, ok := getter.Get(claims.UserID); ok {
				sess.MarkHistoryFresh()
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryResponse{
			Status: "ready",
			Swaps:  items,
		})
	}
}
