package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/sessions"
)

func TestSetAmountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	price := decimal.RequireFromString("190")
	available := decimal.RequireFromString("2.5")

	newRequest := func(body SetAmountRequest) *http.Request {
		data, _ := json.Marshal(body)
		return httptest.NewRequest(http.MethodPut, "/swap/session/amount", bytes.NewReader(data))
	}

	t.Run("derives_quote_amount", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		expectAuth(tokener, userID)

		sess := sessions.New(userID)
		getter := NewMockSessionGetter(ctrl)
		getter.EXPECT().Get(userID).Return(sess, true)

		prices := NewMockPriceProvider(ctrl)
		prices.EXPECT().Price(gomock.Any()).Return(price)
		prices.EXPECT().Available(models.SOL).Return(available)

		handler := NewSetAmountHandler(tokener, getter, prices)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(SetAmountRequest{Amount: "2"}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp SetAmountResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "2", resp.Session.FromAmount)
		assert.Equal(t, "380.00", resp.Session.ToAmount)
		assert.False(t, resp.Session.Insufficient)
	})

	t.Run("flags_insufficient_balance", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		expectAuth(tokener, userID)

		sess := sessions.New(userID)
		getter := NewMockSessionGetter(ctrl)
		getter.EXPECT().Get(userID).Return(sess, true)

		prices := NewMockPriceProvider(ctrl)
		prices.EXPECT().Price(gomock.Any()).Return(price)
		prices.EXPECT().Available(models.SOL).Return(available)

		handler := NewSetAmountHandler(tokener, getter, prices)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(SetAmountRequest{Amount: "3"}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp SetAmountResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Session.Insufficient)
	})

	t.Run("malformed_input_keeps_previous_state", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		expectAuth(tokener, userID)
		expectAuth(tokener, userID)

		sess := sessions.New(userID)
		getter := NewMockSessionGetter(ctrl)
		getter.EXPECT().Get(userID).Return(sess, true).Times(2)

		prices := NewMockPriceProvider(ctrl)
		prices.EXPECT().Price(gomock.Any()).Return(price).Times(2)
		prices.EXPECT().Available(models.SOL).Return(available).Times(2)

		handler := NewSetAmountHandler(tokener, getter, prices)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(SetAmountRequest{Amount: "2"}))
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(SetAmountRequest{Amount: "2..5"}))
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp SetAmountResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "2", resp.Session.FromAmount)
		assert.Equal(t, "380.00", resp.Session.ToAmount)
	})

	t.Run("max_uses_full_balance", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		expectAuth(tokener, userID)

		sess := sessions.New(userID)
		getter := NewMockSessionGetter(ctrl)
		getter.EXPECT().Get(userID).Return(sess, true)

		prices := NewMockPriceProvider(ctrl)
		prices.EXPECT().Price(gomock.Any()).Return(price)
		prices.EXPECT().Available(models.SOL).Return(available)

		handler := NewSetAmountHandler(tokener, getter, prices)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(SetAmountRequest{Max: true}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp SetAmountResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "2.5", resp.Session.FromAmount)
		assert.Equal(t, "475.00", resp.Session.ToAmount)
		assert.False(t, resp.Session.Insufficient)
	})

	t.Run("no_open_session", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		expectAuth(tokener, userID)

		getter := NewMockSessionGetter(ctrl)
		getter.EXPECT().Get(userID).Return(nil, false)

		handler := NewSetAmountHandler(tokener, getter, NewMockPriceProvider(ctrl))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(SetAmountRequest{Amount: "2"}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
