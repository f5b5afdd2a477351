package models

import "github.com/shopspring/decimal"

// Supported assets of the swap pair. SOL is the base asset, USDT the quote asset.
const (
	SOL  = "SOL"
	USDT = "USDT"
)

// AssetBalance represents holdings of a single asset together with its
// latest price in the quote currency, as reported by the swap engine.
type AssetBalance struct {
	AssetID  string          `json:"asset_id"`
	Balance  decimal.Decimal `json:"token_balance"`
	PriceUSD decimal.Decimal `json:"token_price_usd"`
}
