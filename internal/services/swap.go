package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-token-swap/internal/converter"
	"github.com/sbilibin2017/gw-token-swap/internal/facades"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/sessions"
)

var (
	// ErrInvalidAmounts is returned when a submit is attempted without both
	// amounts parsing to positive numbers.
	ErrInvalidAmounts = errors.New("invalid swap amounts")
	// ErrInsufficientBalance is returned when the entered amount exceeds the
	// available balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSubmitInFlight is returned when a submission is already pending for
	// the session.
	ErrSubmitInFlight = errors.New("swap submission already in flight")
)

// engineMsgInsufficientFeeSOL is the engine message that gets its own
// user-facing text; every other engine failure maps to the generic one.
const engineMsgInsufficientFeeSOL = "Insufficient SOL for transaction fees"

// User-facing notification messages.
const (
	MsgSwapSuccess        = "Swap completed successfully"
	MsgInsufficientFeeSOL = "Not enough SOL to cover network fees"
	MsgSwapFailed         = "Swap failed. Please try again"
)

// SwapExecutor submits swaps to the execution engine and reads history.
type SwapExecutor interface {
	CreateSwap(ctx context.Context, swapType models.SwapType, inputAmount string) (*models.SwapOrder, error)
	GetSwapHistory(ctx context.Context) ([]models.SwapRecord, error)
}

// SwapOrderWriter persists accepted swap orders.
type SwapOrderWriter interface {
	Save(ctx context.Context, userID uuid.UUID, order models.SwapOrder) error
}

// SwapOrderReader reads locally persisted swap orders.
type SwapOrderReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SwapOrder, error)
}

// Notifier is the fire-and-forget notification sink.
type Notifier interface {
	Success(ctx context.Context, userID uuid.UUID, message string)
	Error(ctx context.Context, userID uuid.UUID, message string)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SwapService orchestrates swap submission and history for open sessions.
type SwapService struct {
	executor    SwapExecutor
	orderWriter SwapOrderWriter
	orderReader SwapOrderReader
	notifier    Notifier
	kafkaWriter KafkaWriter
}

// NewSwapService creates a new SwapService.
func NewSwapService(
	executor SwapExecutor,
	orderWriter SwapOrderWriter,
	orderReader SwapOrderReader,
	notifier Notifier,
	kafkaWriter KafkaWriter,
) *SwapService {
	return &SwapService{
		executor:    executor,
		orderWriter: orderWriter,
		orderReader: orderReader,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
	}
}

// Submit validates the session's amounts and delegates to the execution
// engine. Exactly one submission may be in flight per session; a second
// submit while one is pending is refused, not queued. On success the
// session's amounts are cleared and history is marked stale; on failure
// amounts are left untouched so the user may retry, and the engine message
// is classified into a user notification.
func (s *SwapService) Submit(ctx context.Context, sess *sessions.Session) (*models.SwapOrder, error) {
	view := sess.View()

	if _, ok := converter.ParseAmount(view.FromAmount); !ok {
		return nil, ErrInvalidAmounts
	}
	if _, ok := converter.ParseAmount(view.ToAmount); !ok {
		return nil, ErrInvalidAmounts
	}
	if view.Insufficient {
		return nil, ErrInsufficientBalance
	}

	if !sess.TryBeginSubmit() {
		logger.Log.Infow("submit refused, another submission in flight", "userID", view.UserID)
		return nil, ErrSubmitInFlight
	}
	defer sess.EndSubmit()

	order, err := s.executor.CreateSwap(ctx, view.SwapType, view.FromAmount)
	if err != nil {
		logger.Log.Errorw("swap execution failed",
			"userID", view.UserID, "swap_type", view.SwapType, "amount", view.FromAmount, "error", err)
		if s.notifier != nil {
			s.notifier.Error(ctx, view.UserID, FailureMessage(err))
		}
		return nil, err
	}

	sess.ResetAmounts()

	order.UserID = view.UserID.String()
	if err := s.orderWriter.Save(ctx, view.UserID, *order); err != nil {
		// Audit persistence must not fail an executed swap.
		logger.Log.Errorw("failed to persist swap order", "swap_order_id", order.SwapOrderID, "error", err)
	}

	s.publishSwapEvent(ctx, view.UserID, order)

	if s.notifier != nil {
		s.notifier.Success(ctx, view.UserID, MsgSwapSuccess)
	}

	return order, nil
}

// FailureMessage maps an engine failure to a user-facing message.
func FailureMessage(err error) string {
	var engineErr *facades.EngineError
	if errors.As(err, &engineErr) && engineErr.Message == engineMsgInsufficientFeeSOL {
		return MsgInsufficientFeeSOL
	}
	return MsgSwapFailed
}

// publishSwapEvent publishes an executed swap to Kafka.
func (s *SwapService) publishSwapEvent(ctx context.Context, userID uuid.UUID, order *models.SwapOrder) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "swap_order_id", order.SwapOrderID)
		return
	}

	event := models.SwapEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      userID.String(),
		SwapOrderID: order.SwapOrderID,
		SwapType:    string(order.SwapType),
		InputAmount: order.InputAmount,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal swap event for Kafka", "swap_order_id", order.SwapOrderID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(order.SwapOrderID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish swap event to Kafka", "swap_order_id", order.SwapOrderID, "error", err)
	} else {
		logger.Log.Infow("swap event published to Kafka", "swap_order_id", order.SwapOrderID, "amount", order.InputAmount)
	}
}

// History returns past swap executions formatted for display. The engine
// is the source of truth; when it is unavailable the locally persisted
// orders back a best-effort fallback.
func (s *SwapService) History(ctx context.Context, userID uuid.UUID) ([]models.SwapHistoryItem, error) {
	records, err := s.executor.GetSwapHistory(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch swap history, falling back to local orders", "userID", userID, "error", err)

		orders, readErr := s.orderReader.ListByUserID(ctx, userID)
		if readErr != nil {
			return nil, err
		}
		records = make([]models.SwapRecord, 0, len(orders))
		for _, o := range orders {
			records = append(records, models.SwapRecord{
				SwapOrderID:     o.SwapOrderID,
				CreatedAt:       o.CreatedAt.Format(time.RFC3339),
				SwapType:        o.SwapType,
				InputAmount:     o.InputAmount,
				OutputAmount:    o.OutputAmount,
				Status:          o.Status,
				TransactionHash: o.TransactionHash,
			})
		}
	}

	items := make([]models.SwapHistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, formatHistoryItem(rec))
	}
	return items, nil
}

// formatHistoryItem maps a raw engine record to its display form: HH:MM
// 24-hour time, MM/DD/YYYY date, and sold/bought amounts derived from the
// record's swap direction.
func formatHistoryItem(rec models.SwapRecord) models.SwapHistoryItem {
	item := models.SwapHistoryItem{
		SwapOrderID:     rec.SwapOrderID,
		SoldAmount:      rec.InputAmount,
		SoldAsset:       rec.SwapType.FromAsset(),
		BoughtAmount:    rec.OutputAmount,
		BoughtAsset:     rec.SwapType.ToAsset(),
		Status:          rec.Status,
		TransactionHash: rec.TransactionHash,
	}

	if ts, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
		item.Time = ts.Format("15:04")
		item.Date = ts.Format("01/02/2006")
	} else {
		logger.Log.Warnw("unparseable swap record timestamp", "swap_order_id", rec.SwapOrderID, "created_at", rec.CreatedAt)
	}

	return item
}
