package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

func newTestFacade(url string) *SwapEngineFacade {
	f := NewSwapEngineFacade(url, 2*time.Second)
	f.retryBackoff = time.Millisecond
	return f
}

func TestSwapEngineFacade_GetBalances(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/balances", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"SOL":  {"token_balance": "1.5", "token_price_usd": "190.00"},
			"USDT": {"token_balance": "250.10", "token_price_usd": "1.00"},
		})
	}))
	defer srv.Close()

	balances, err := newTestFacade(srv.URL).GetBalances(context.Background())

	assert.NoError(t, err)
	assert.Len(t, balances, 2)
	assert.Equal(t, "SOL", balances["SOL"].AssetID)
	assert.Equal(t, "1.5", balances["SOL"].Balance.String())
	assert.Equal(t, "190", balances["SOL"].PriceUSD.String())
	assert.Equal(t, "250.1", balances["USDT"].Balance.String())
}

func TestSwapEngineFacade_GetBalances_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"SOL": {"token_balance": "1", "token_price_usd": "190"},
		})
	}))
	defer srv.Close()

	balances, err := newTestFacade(srv.URL).GetBalances(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Len(t, balances, 1)
}

func TestSwapEngineFacade_CreateSwap(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        any
		expectErr   string
		expectOrder bool
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: map[string]string{
				"swap_order_id":    "ord-1",
				"status":           "completed",
				"output_amount":    "380.00",
				"transaction_hash": "0xabc",
			},
			expectOrder: true,
		},
		{
			name:      "engine_failure_with_message",
			status:    http.StatusBadRequest,
			body:      map[string]string{"message": "Insufficient SOL for transaction fees"},
			expectErr: "Insufficient SOL for transaction fees",
		},
		{
			name:      "engine_failure_without_message",
			status:    http.StatusBadGateway,
			body:      map[string]string{},
			expectErr: http.StatusText(http.StatusBadGateway),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/swaps", r.URL.Path)

				var req map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "sol_to_usdt", req["swap_type"])
				assert.Equal(t, "2", req["input_amount"])

				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			order, err := newTestFacade(srv.URL).CreateSwap(context.Background(), models.SwapSolToUsdt, "2")

			if tt.expectOrder {
				assert.NoError(t, err)
				assert.Equal(t, "ord-1", order.SwapOrderID)
				assert.Equal(t, "completed", order.Status)
				assert.Equal(t, "380.00", order.OutputAmount)
				assert.Equal(t, models.SwapSolToUsdt, order.SwapType)
				return
			}

			assert.Nil(t, order)
			var engineErr *EngineError
			assert.ErrorAs(t, err, &engineErr)
			assert.Equal(t, tt.status, engineErr.StatusCode)
			assert.Equal(t, tt.expectErr, engineErr.Message)
		})
	}
}

func TestSwapEngineFacade_GetSwapHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/swaps/history", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]string{
			{
				"swap_order_id":    "ord-2",
				"created_at":       "2025-03-01T14:05:00Z",
				"swap_type":        "usdt_to_sol",
				"input_amount":     "190",
				"output_amount":    "1.000000",
				"status":           "completed",
				"transaction_hash": "0xdef",
			},
		})
	}))
	defer srv.Close()

	records, err := newTestFacade(srv.URL).GetSwapHistory(context.Background())

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "ord-2", records[0].SwapOrderID)
	assert.Equal(t, models.SwapUsdtToSol, records[0].SwapType)
	assert.Equal(t, "0xdef", records[0].TransactionHash)
}

func TestSwapEngineFacade_GetSwapHistory_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no history"})
	}))
	defer srv.Close()

	_, err := newTestFacade(srv.URL).GetSwapHistory(context.Background())

	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
