package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/mkarpovich/givehub/pkg/utils"
)

type ContextKey string

const PrincipalKey ContextKey = "principal"

// Principal is the authenticated caller identity carried in the request
// context instead of ambient session state.
type Principal struct {
	ID   int
	Role string
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(Principal)
	return p, ok
}

func principalFromHeader(r *http.Request) (Principal, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return Principal{}, false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	jwtService := &JWTService{}
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return Principal{}, false
	}
	return Principal{ID: claims.UserID, Role: claims.Role}, true
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromHeader(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware attaches a principal when a valid token is present
// but lets unauthenticated requests through. Guest donations rely on it.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := principalFromHeader(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), PrincipalKey, principal))
		}
		next.ServeHTTP(w, r)
	})
}

// AdminMiddleware requires an authenticated principal with the admin role.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if principal.Role != "admin" {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
