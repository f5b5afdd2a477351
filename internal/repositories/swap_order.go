package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// SwapOrderWriterRepository persists swap orders accepted by the engine.
type SwapOrderWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSwapOrderWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SwapOrderWriterRepository {
	return &SwapOrderWriterRepository{db: db, txGetter: txGetter}
}

// Save inserts an accepted swap order. Replays of the same order ID are
// ignored so a retried engine response cannot duplicate the audit trail.
func (r *SwapOrderWriterRepository) Save(ctx context.Context, userID uuid.UUID, order models.SwapOrder) error {
	query := `
		INSERT INTO swap_orders (swap_order_id, user_id, swap_type, input_amount, output_amount, status, transaction_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (swap_order_id) DO NOTHING
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query,
		order.SwapOrderID, userID, order.SwapType,
		order.InputAmount, order.OutputAmount, order.Status, order.TransactionHash,
	)

	// Log query, args, error
	logger.Log.Infow("save swap order",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{order.SwapOrderID, userID, order.SwapType, order.InputAmount},
		"error", err,
	)

	return err
}

// SwapOrderReaderRepository reads locally persisted swap orders.
type SwapOrderReaderRepository struct {
	db *sqlx.DB
}

func NewSwapOrderReaderRepository(db *sqlx.DB) *SwapOrderReaderRepository {
	return &SwapOrderReaderRepository{db: db}
}

// ListByUserID returns the user's persisted swap orders, newest first.
func (r *SwapOrderReaderRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SwapOrder, error) {
	const query = `
		SELECT swap_order_id, user_id, swap_type, input_amount, output_amount, status, transaction_hash, created_at
		FROM swap_orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var orders []models.SwapOrder
	err := r.db.SelectContext(ctx, &orders, query, userID)

	logger.Log.Infow("list swap orders",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(orders),
		"error", err,
	)

	return orders, err
}
