package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// EngineError is a failure reported by the swap engine. Message carries
// the engine's error text and is used for client-side classification.
type EngineError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("swap engine error (status %d): %s", e.StatusCode, e.Message)
}

// SwapEngineFacade is an HTTP client for the remote swap execution engine:
// balances and prices, swap execution, and swap history.
type SwapEngineFacade struct {
	baseURL string
	client  *http.Client

	retryAttempts int
	retryBackoff  time.Duration
}

// NewSwapEngineFacade creates a facade for the engine at baseURL.
func NewSwapEngineFacade(baseURL string, timeout time.Duration) *SwapEngineFacade {
	return &SwapEngineFacade{
		baseURL:       baseURL,
		client:        &http.Client{Timeout: timeout},
		retryAttempts: 3,
		retryBackoff:  200 * time.Millisecond,
	}
}

// balanceEntry mirrors the engine's balance response for one asset.
type balanceEntry struct {
	TokenBalance  decimal.Decimal `json:"token_balance"`
	TokenPriceUSD decimal.Decimal `json:"token_price_usd"`
}

// GetBalances fetches current holdings and prices for all assets.
func (f *SwapEngineFacade) GetBalances(ctx context.Context) (map[string]models.AssetBalance, error) {
	var raw map[string]balanceEntry
	if err := f.getWithRetry(ctx, "/balances", &raw); err != nil {
		logger.Log.Errorw("failed to fetch balances from swap engine", "error", err)
		return nil, err
	}

	balances := make(map[string]models.AssetBalance, len(raw))
	for assetID, entry := range raw {
		balances[assetID] = models.AssetBalance{
			AssetID:  assetID,
			Balance:  entry.TokenBalance,
			PriceUSD: entry.TokenPriceUSD,
		}
	}
	return balances, nil
}

// swapRequest is the engine's swap execution request body.
type swapRequest struct {
	SwapType    models.SwapType `json:"swap_type"`
	InputAmount string          `json:"input_amount"`
}

// swapResponse is the engine's swap execution response body.
type swapResponse struct {
	SwapOrderID     string `json:"swap_order_id"`
	Status          string `json:"status"`
	OutputAmount    string `json:"output_amount"`
	TransactionHash string `json:"transaction_hash"`
}

// CreateSwap submits a swap for execution. Engine failures are returned as
// *EngineError carrying the engine's message field.
func (f *SwapEngineFacade) CreateSwap(ctx context.Context, swapType models.SwapType, inputAmount string) (*models.SwapOrder, error) {
	body, err := json.Marshal(swapRequest{SwapType: swapType, InputAmount: inputAmount})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/swaps", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("swap execution request failed", "swap_type", swapType, "error", err)
		return nil, fmt.Errorf("swap execution request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeEngineError(resp)
	}

	var sr swapResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode swap response: %w", err)
	}

	return &models.SwapOrder{
		SwapOrderID:     sr.SwapOrderID,
		SwapType:        swapType,
		InputAmount:     inputAmount,
		OutputAmount:    sr.OutputAmount,
		Status:          sr.Status,
		TransactionHash: sr.TransactionHash,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// GetSwapHistory fetches the ordered list of past swap executions.
func (f *SwapEngineFacade) GetSwapHistory(ctx context.Context) ([]models.SwapRecord, error) {
	var records []models.SwapRecord
	if err := f.getWithRetry(ctx, "/swaps/history", &records); err != nil {
		logger.Log.Errorw("failed to fetch swap history from swap engine", "error", err)
		return nil, err
	}
	return records, nil
}

// getWithRetry performs a GET with simple exponential backoff on transport
// errors and 5xx responses. Engine 4xx responses are not retried.
func (f *SwapEngineFacade) getWithRetry(ctx context.Context, path string, out any) error {
	var err error
	backoff := f.retryBackoff
	for attempt := 0; attempt < f.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			if backoff < 5*time.Second {
				backoff *= 2
			}
		}

		var retryable bool
		retryable, err = f.getOnce(ctx, path, out)
		if err == nil || !retryable {
			return err
		}
	}
	return err
}

func (f *SwapEngineFacade) getOnce(ctx context.Context, path string, out any) (retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return false, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body)
		return true, &EngineError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, decodeEngineError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode engine response: %w", err)
	}
	return false, nil
}

// decodeEngineError reads an error response body into an *EngineError.
func decodeEngineError(resp *http.Response) error {
	engineErr := &EngineError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(engineErr); err != nil || engineErr.Message == "" {
		engineErr.Message = http.StatusText(resp.StatusCode)
	}
	return engineErr
}
