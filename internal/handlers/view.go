package handlers

import (
	"github.com/sbilibin2017/gw-token-swap/internal/sessions"
)

// SessionView represents the state of an open swap session
// swagger:model SessionView
type SessionView struct {
	// Swap direction
	// default: sol_to_usdt
	SwapType string `json:"swap_type"`

	// Asset being sold
	// default: SOL
	FromAsset string `json:"from_asset"`

	// Asset being bought
	// default: USDT
	ToAsset string `json:"to_asset"`

	// Raw amount entered for the sold asset
	// default: 2
	FromAmount string `json:"from_amount"`

	// Derived amount of the bought asset
	// default: 380.00
	ToAmount string `json:"to_amount"`

	// Entered amount exceeds the available balance
	// default: false
	Insufficient bool `json:"insufficient"`

	// Direction toggle state
	// default: idle
	ToggleState string `json:"toggle_state"`

	// A submission is in flight
	// default: false
	Submitting bool `json:"submitting"`

	// History needs to be refetched
	// default: true
	HistoryStale bool `json:"history_stale"`
}

func newSessionView(v sessions.View) SessionView {
	return SessionView{
		SwapType:     string(v.SwapType),
		FromAsset:    v.SwapType.FromAsset(),
		ToAsset:      v.SwapType.ToAsset(),
		FromAmount:   v.FromAmount,
		ToAmount:     v.ToAmount,
		Insufficient: v.Insufficient,
		ToggleState:  string(v.ToggleState),
		Submitting:   v.Submitting,
		HistoryStale: v.HistoryStale,
	}
}
