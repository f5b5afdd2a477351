package models

import "time"

// SwapType identifies the direction of a swap between the pair assets.
type SwapType string

const (
	SwapSolToUsdt SwapType = "sol_to_usdt"
	SwapUsdtToSol SwapType = "usdt_to_sol"
)

// Reverse returns the opposite swap direction.
func (t SwapType) Reverse() SwapType {
	if t == SwapSolToUsdt {
		return SwapUsdtToSol
	}
	return SwapSolToUsdt
}

// FromAsset returns the asset being sold.
func (t SwapType) FromAsset() string {
	if t == SwapSolToUsdt {
		return SOL
	}
	return USDT
}

// ToAsset returns the asset being bought.
func (t SwapType) ToAsset() string {
	if t == SwapSolToUsdt {
		return USDT
	}
	return SOL
}

// BaseToQuote reports whether the swap sells the base asset for the quote asset.
func (t SwapType) BaseToQuote() bool {
	return t == SwapSolToUsdt
}

// SwapOrder is a swap accepted by the execution engine, persisted locally
// as an audit record of what this gateway submitted.
type SwapOrder struct {
	SwapOrderID     string    `db:"swap_order_id" json:"swap_order_id"`
	UserID          string    `db:"user_id" json:"user_id"`
	SwapType        SwapType  `db:"swap_type" json:"swap_type"`
	InputAmount     string    `db:"input_amount" json:"input_amount"`
	OutputAmount    string    `db:"output_amount" json:"output_amount"`
	Status          string    `db:"status" json:"status"`
	TransactionHash string    `db:"transaction_hash" json:"transaction_hash"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// SwapRecord is a raw history entry as returned by the swap engine.
type SwapRecord struct {
	SwapOrderID     string   `json:"swap_order_id"`
	CreatedAt       string   `json:"created_at"` // ISO-8601
	SwapType        SwapType `json:"swap_type"`
	InputAmount     string   `json:"input_amount"`
	OutputAmount    string   `json:"output_amount"`
	Status          string   `json:"status"`
	TransactionHash string   `json:"transaction_hash,omitempty"`
}

// SwapHistoryItem is a history entry formatted for display.
type SwapHistoryItem struct {
	SwapOrderID     string `json:"swap_order_id"`
	Time            string `json:"time"` // HH:MM, 24-hour clock
	Date            string `json:"date"` // MM/DD/YYYY
	SoldAmount      string `json:"sold_amount"`
	SoldAsset       string `json:"sold_asset"`
	BoughtAmount    string `json:"bought_amount"`
	BoughtAsset     string `json:"bought_asset"`
	Status          string `json:"status"`
	TransactionHash string `json:"transaction_hash,omitempty"`
}
