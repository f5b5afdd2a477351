package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-token-swap/internal/facades"
	"github.com/sbilibin2017/gw-token-swap/internal/jwt"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
	"github.com/sbilibin2017/gw-token-swap/internal/sessions"
)

// SubmitTokener defines only the methods needed by this handler.
type SubmitTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Submitter executes the swap described by the session.
type Submitter interface {
	Submit(ctx context.Context, sess *sessions.Session) (*models.SwapOrder, error)
}

// SubmitResponse represents a successfully executed swap
// swagger:model SubmitResponse
type SubmitResponse struct {
	// Success message
	// default: Swap completed successfully
	Message string `json:"message"`

	// The accepted swap order
	Order models.SwapOrder `json:"order"`

	// Session state after the swap
	Session SessionView `json:"session"`
}

// SubmitErrorResponse represents a failed swap submission
// swagger:model SubmitErrorResponse
type SubmitErrorResponse struct {
	// Error message
	// default: Swap failed. Please try again
	Error string `json:"error"`
}

// NewSubmitHandler submits the open session's swap to the execution
// engine. Exactly one submission may be in flight per session; a second
// one is refused with 409. Engine failures keep the entered amounts so
// the user can retry.
// @Summary Submit swap
// @Description Executes the swap described by the open session
// @Tags session
// @Produce json
// @Success 200 {object} handlers.SubmitResponse "Swap executed"
// @Failure 400 {object} handlers.SubmitErrorResponse "Invalid amounts or insufficient balance"
// @Failure 401 {object} handlers.SubmitErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SubmitErrorResponse "No open session"
// @Failure 409 {object} handlers.SubmitErrorResponse "Submission already in flight"
// @Failure 502 {object} handlers.SubmitErrorResponse "Engine rejected the swap"
// @Router /swap/session/submit [post]
// @Security BearerAuth
func NewSubmitHandler(
	tokener SubmitTokener,
	getter SessionGetter,
	submitter Submitter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Unauthorized"})
			return
		}

		sess, ok := getter.Get(claims.UserID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "No open session"})
			return
		}

		order, err := submitter.Submit(ctx, sess)
		if err != nil {
			var engineErr *facades.EngineError
			switch {
			case errors.Is(err, services.ErrInvalidAmounts):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Invalid swap amounts"})
			case errors.Is(err, services.ErrInsufficientBalance):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Insufficient balance"})
			case errors.Is(err, services.ErrSubmitInFlight):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Swap already in progress"})
			case errors.As(err, &engineErr):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(SubmitErrorResponse{Error: services.FailureMessage(err)})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SubmitErrorResponse{Error: services.MsgSwapFailed})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SubmitResponse{
			Message: services.MsgSwapSuccess,
			Order:   *order,
			Session: newSessionView(sess.View()),
		})
	}
}
