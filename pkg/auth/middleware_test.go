package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tokenFor(t *testing.T, userID int, role string) string {
	t.Helper()
	jwtService := &JWTService{}
	token, err := jwtService.GenerateJWT(userID, role, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedID     int
	}{
		{
			name:           "Valid Token",
			authHeader:     "Bearer " + tokenFor(t, 42, "donor"),
			expectedStatus: http.StatusOK,
			expectedID:     42,
		},
		{
			name:           "Missing Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "No Bearer Prefix",
			authHeader:     tokenFor(t, 42, "donor"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage Token",
			authHeader:     "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				principal, ok := PrincipalFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, tt.expectedID, principal.ID)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		authHeader      string
		expectPrincipal bool
	}{
		{
			name:            "Valid Token",
			authHeader:      "Bearer " + tokenFor(t, 42, "donor"),
			expectPrincipal: true,
		},
		{
			name:            "No Token",
			authHeader:      "",
			expectPrincipal: false,
		},
		{
			name:            "Garbage Token",
			authHeader:      "Bearer not.a.token",
			expectPrincipal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, ok := PrincipalFromContext(r.Context())
				assert.Equal(t, tt.expectPrincipal, ok)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			OptionalAuthMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Admin",
			authHeader:     "Bearer " + tokenFor(t, 1, "admin"),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Donor",
			authHeader:     "Bearer " + tokenFor(t, 42, "donor"),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Unauthenticated",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(AdminMiddleware(next)).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
