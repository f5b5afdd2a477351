package handlers

import (
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-token-swap/internal/jwt"
)

// expectAuth wires a tokener mock to authenticate as the given user.
func expectAuth(m *MockTokener, userID uuid.UUID) {
	m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
	m.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
}

// expectNoAuth wires a tokener mock to reject the request.
func expectNoAuth(m *MockTokener) {
	m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", errors.New("authorization header missing"))
}
