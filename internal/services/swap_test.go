package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-token-swap/internal/facades"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/sessions"
)

var (
	testPrice   = decimal.RequireFromString("190.00")
	testBalance = decimal.RequireFromString("10")
)

func TestSwapService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	order := &models.SwapOrder{
		SwapOrderID:  "ord-1",
		SwapType:     models.SwapSolToUsdt,
		InputAmount:  "2",
		OutputAmount: "380.00",
		Status:       "completed",
	}

	tests := []struct {
		name        string
		setupSess   func() *sessions.Session
		mockSetup   func() *SwapService
		expectedErr error
	}{
		{
			name: "success",
			setupSess: func() *sessions.Session {
				s := sessions.New(userID)
				s.SetAmount("2", testPrice, testBalance)
				return s
			},
			mockSetup: func() *SwapService {
				mockExecutor := NewMockSwapExecutor(ctrl)
				mockWriter := NewMockSwapOrderWriter(ctrl)
				mockNotifier := NewMockNotifier(ctrl)
				mockKafka := NewMockKafkaWriter(ctrl)

				mockExecutor.EXPECT().
					CreateSwap(ctx, models.SwapSolToUsdt, "2").
					Return(order, nil)
				mockWriter.EXPECT().
					Save(ctx, userID, gomock.Any()).
					Return(nil)
				mockKafka.EXPECT().
					WriteMessages(ctx, gomock.Any()).
					Return(nil)
				mockNotifier.EXPECT().
					Success(ctx, userID, MsgSwapSuccess)

				return NewSwapService(mockExecutor, mockWriter, nil, mockNotifier, mockKafka)
			},
			expectedErr: nil,
		},
		{
			name: "empty_amounts_rejected",
			setupSess: func() *sessions.Session {
				return sessions.New(userID)
			},
			mockSetup: func() *SwapService {
				return NewSwapService(NewMockSwapExecutor(ctrl), NewMockSwapOrderWriter(ctrl), nil, NewMockNotifier(ctrl), nil)
			},
			expectedErr: ErrInvalidAmounts,
		},
		{
			name: "missing_derived_amount_rejected",
			setupSess: func() *sessions.Session {
				s := sessions.New(userID)
				// No usable rate yet: from amount is set, derived amount stays empty.
				s.SetAmount("2", decimal.Zero, testBalance)
				return s
			},
			mockSetup: func() *SwapService {
				return NewSwapService(NewMockSwapExecutor(ctrl), NewMockSwapOrderWriter(ctrl), nil, NewMockNotifier(ctrl), nil)
			},
			expectedErr: ErrInvalidAmounts,
		},
		{
			name: "insufficient_balance_rejected",
			setupSess: func() *sessions.Session {
				s := sessions.New(userID)
				s.SetAmount("2", testPrice, decimal.RequireFromString("1.5"))
				return s
			},
			mockSetup: func() *SwapService {
				return NewSwapService(NewMockSwapExecutor(ctrl), NewMockSwapOrderWriter(ctrl), nil, NewMockNotifier(ctrl), nil)
			},
			expectedErr: ErrInsufficientBalance,
		},
		{
			name: "second_submission_refused",
			setupSess: func() *sessions.Session {
				s := sessions.New(userID)
				s.SetAmount("2", testPrice, testBalance)
				assert.True(t, s.TryBeginSubmit())
				return s
			},
			mockSetup: func() *SwapService {
				// No executor call may happen while a submission is in flight.
				return NewSwapService(NewMockSwapExecutor(ctrl), NewMockSwapOrderWriter(ctrl), nil, NewMockNotifier(ctrl), nil)
			},
			expectedErr: ErrSubmitInFlight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := tt.mockSetup()
			sess := tt.setupSess()

			got, err := svc.Submit(ctx, sess)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "ord-1", got.SwapOrderID)

				// Success clears amounts and marks history stale.
				v := sess.View()
				assert.Equal(t, "", v.FromAmount)
				assert.Equal(t, "", v.ToAmount)
				assert.False(t, v.Insufficient)
				assert.True(t, v.HistoryStale)
				assert.False(t, v.Submitting)
			}
		})
	}
}

func TestSwapService_Submit_FailureClassification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name        string
		engineErr   error
		expectedMsg string
	}{
		{
			name:        "fee_message_gets_specific_text",
			engineErr:   &facades.EngineError{StatusCode: 400, Message: "Insufficient SOL for transaction fees"},
			expectedMsg: MsgInsufficientFeeSOL,
		},
		{
			name:        "other_engine_message_gets_generic_text",
			engineErr:   &facades.EngineError{StatusCode: 400, Message: "liquidity pool exhausted"},
			expectedMsg: MsgSwapFailed,
		},
		{
			name:        "transport_error_gets_generic_text",
			engineErr:   errors.New("connection refused"),
			expectedMsg: MsgSwapFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := sessions.New(userID)
			sess.SetAmount("2", testPrice, testBalance)

			mockExecutor := NewMockSwapExecutor(ctrl)
			mockNotifier := NewMockNotifier(ctrl)

			mockExecutor.EXPECT().
				CreateSwap(ctx, models.SwapSolToUsdt, "2").
				Return(nil, tt.engineErr)
			mockNotifier.EXPECT().
				Error(ctx, userID, tt.expectedMsg)

			svc := NewSwapService(mockExecutor, NewMockSwapOrderWriter(ctrl), nil, mockNotifier, nil)

			_, err := svc.Submit(ctx, sess)
			assert.Error(t, err)

			// Failure leaves amounts untouched so the user may retry.
			v := sess.View()
			assert.Equal(t, "2", v.FromAmount)
			assert.Equal(t, "380.00", v.ToAmount)
			assert.False(t, v.Submitting)
		})
	}
}

func TestSwapService_Submit_PersistFailureDoesNotFailSwap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	sess := sessions.New(userID)
	sess.SetAmount("2", testPrice, testBalance)

	mockExecutor := NewMockSwapExecutor(ctrl)
	mockWriter := NewMockSwapOrderWriter(ctrl)
	mockNotifier := NewMockNotifier(ctrl)

	mockExecutor.EXPECT().
		CreateSwap(ctx, models.SwapSolToUsdt, "2").
		Return(&models.SwapOrder{SwapOrderID: "ord-1", SwapType: models.SwapSolToUsdt, InputAmount: "2"}, nil)
	mockWriter.EXPECT().
		Save(ctx, userID, gomock.Any()).
		Return(errors.New("insert failed"))
	mockNotifier.EXPECT().
		Success(ctx, userID, MsgSwapSuccess)

	svc := NewSwapService(mockExecutor, mockWriter, nil, mockNotifier, nil)

	got, err := svc.Submit(ctx, sess)
	assert.NoError(t, err)
	assert.Equal(t, "ord-1", got.SwapOrderID)
}

func TestSwapService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("formats_engine_records", func(t *testing.T) {
		mockExecutor := NewMockSwapExecutor(ctrl)
		mockExecutor.EXPECT().
			GetSwapHistory(ctx).
			Return([]models.SwapRecord{
				{
					SwapOrderID:     "ord-1",
					CreatedAt:       "2025-03-01T14:05:00Z",
					SwapType:        models.SwapSolToUsdt,
					InputAmount:     "2",
					OutputAmount:    "380.00",
					Status:          "completed",
					TransactionHash: "0xabc",
				},
				{
					SwapOrderID:  "ord-2",
					CreatedAt:    "2025-02-28T09:30:00Z",
					SwapType:     models.SwapUsdtToSol,
					InputAmount:  "190",
					OutputAmount: "1.000000",
					Status:       "pending",
				},
			}, nil)

		svc := NewSwapService(mockExecutor, nil, NewMockSwapOrderReader(ctrl), nil, nil)

		items, err := svc.History(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, items, 2)

		assert.Equal(t, "14:05", items[0].Time)
		assert.Equal(t, "03/01/2025", items[0].Date)
		assert.Equal(t, "2", items[0].SoldAmount)
		assert.Equal(t, models.SOL, items[0].SoldAsset)
		assert.Equal(t, "380.00", items[0].BoughtAmount)
		assert.Equal(t, models.USDT, items[0].BoughtAsset)
		assert.Equal(t, "0xabc", items[0].TransactionHash)

		assert.Equal(t, "09:30", items[1].Time)
		assert.Equal(t, "02/28/2025", items[1].Date)
		assert.Equal(t, models.USDT, items[1].SoldAsset)
		assert.Equal(t, models.SOL, items[1].BoughtAsset)
	})

	t.Run("falls_back_to_local_orders", func(t *testing.T) {
		mockExecutor := NewMockSwapExecutor(ctrl)
		mockReader := NewMockSwapOrderReader(ctrl)

		mockExecutor.EXPECT().
			GetSwapHistory(ctx).
			Return(nil, errors.New("engine unavailable"))
		mockReader.EXPECT().
			ListByUserID(ctx, userID).
			Return([]models.SwapOrder{
				{
					SwapOrderID:  "ord-3",
					SwapType:     models.SwapSolToUsdt,
					InputAmount:  "1",
					OutputAmount: "190.00",
					Status:       "completed",
					CreatedAt:    time.Date(2025, 3, 2, 8, 15, 0, 0, time.UTC),
				},
			}, nil)

		svc := NewSwapService(mockExecutor, nil, mockReader, nil, nil)

		items, err := svc.History(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "ord-3", items[0].SwapOrderID)
		assert.Equal(t, "08:15", items[0].Time)
		assert.Equal(t, "03/02/2025", items[0].Date)
	})

	t.Run("returns_engine_error_when_fallback_fails", func(t *testing.T) {
		mockExecutor := NewMockSwapExecutor(ctrl)
		mockReader := NewMockSwapOrderReader(ctrl)

		engineErr := errors.New("engine unavailable")
		mockExecutor.EXPECT().
			GetSwapHistory(ctx).
			Return(nil, engineErr)
		mockReader.EXPECT().
			ListByUserID(ctx, userID).
			Return(nil, errors.New("db down"))

		svc := NewSwapService(mockExecutor, nil, mockReader, nil, nil)

		_, err := svc.History(ctx, userID)
		assert.ErrorIs(t, err, engineErr)
	})

	t.Run("empty_history_is_empty_not_nil", func(t *testing.T) {
		mockExecutor := NewMockSwapExecutor(ctrl)
		mockExecutor.EXPECT().
			GetSwapHistory(ctx).
			Return([]models.SwapRecord{}, nil)

		svc := NewSwapService(mockExecutor, nil, NewMockSwapOrderReader(ctrl), nil, nil)

		items, err := svc.History(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
