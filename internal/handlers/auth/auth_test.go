package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkarpovich/givehub/internal/domain"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:          "Invalid request body",
			body:          "{invalid",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "User registered",
			body: `{"login":"mira","password":"secret","name":"Mira"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(&domain.User{ID: 3, Login: "mira", Role: "donor"}, nil)
				service.EXPECT().GenerateToken(3, "donor").Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Login already taken",
			body: `{"login":"mira","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("username already taken"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name: "Token generation fails",
			body: `{"login":"mira","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(&domain.User{ID: 3, Role: "donor"}, nil)
				service.EXPECT().GenerateToken(3, "donor").Return("", errors.New("sign error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			r := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:          "Invalid request body",
			body:          "{invalid",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "User authenticated",
			body: `{"login":"mira","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "mira", "secret").
					Return(&domain.User{ID: 3, Login: "mira", Role: "donor"}, nil)
				service.EXPECT().GenerateToken(3, "donor").Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"mira","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "mira", "wrong").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			r := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}
