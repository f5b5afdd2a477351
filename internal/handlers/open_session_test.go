package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/sessions"
)

func TestOpenSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("opens_fresh_session", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		expectAuth(tokener, userID)

		opener := NewMockSessionOpener(ctrl)
		opener.EXPECT().Open(userID).Return(sessions.New(userID))

		handler := NewOpenSessionHandler(tokener, opener)

		req := httptest.NewRequest(http.MethodPost, "/swap/session", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp OpenSessionResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, string(models.SwapSolToUsdt), resp.Session.SwapType)
		assert.Equal(t, models.SOL, resp.Session.FromAsset)
		assert.Equal(t, models.USDT, resp.Session.ToAsset)
		assert.Empty(t, resp.Session.FromAmount)
		assert.Empty(t, resp.Session.ToAmount)
		assert.False(t, resp.Session.Insufficient)
		assert.True(t, resp.Session.HistoryStale)
	})

	t.Run("unauthorized", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		expectNoAuth(tokener)

		handler := NewOpenSessionHandler(tokener, NewMockSessionOpener(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/swap/session", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
