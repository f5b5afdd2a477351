package models

// SwapEvent represents an executed swap published to the event stream.
type SwapEvent struct {
	EventID     string `json:"event_id"`     // EventID is a unique identifier for the event.
	Timestamp   int64  `json:"timestamp"`    // Timestamp is the Unix timestamp (in seconds) when the swap was executed.
	UserID      string `json:"user_id"`      // UserID is the identifier of the user who submitted the swap.
	SwapOrderID string `json:"swap_order_id"` // SwapOrderID is the order identifier assigned by the execution engine.
	SwapType    string `json:"swap_type"`    // SwapType is the direction of the swap, e.g. "sol_to_usdt".
	InputAmount string `json:"input_amount"` // InputAmount is the amount sold, as entered by the user.
}

// NotificationEvent represents a fire-and-forget user notification.
type NotificationEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"user_id"`
	Level     string `json:"level"` // "success" or "error"
	Message   string `json:"message"`
}
