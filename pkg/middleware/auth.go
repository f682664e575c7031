package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rajsingh19/wearhouse/pkg/auth"
	"github.com/rajsingh19/wearhouse/pkg/response"
)

// Identity is the resolved caller, derived from a validated session token.
// Handlers read it from the request context instead of touching any global
// session state, so they stay unit-testable with a hand-built context.
type Identity struct {
	UserID uint
	Role   string
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (id Identity) IsAdmin() bool { return id.Role == "ADMIN" }

type identityKey struct{}

// WithIdentity stores a resolved identity in ctx. Used by Auth and by tests.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromCtx extracts the caller identity from ctx.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Auth validates the Bearer token and injects the caller's Identity into the
// request context. Requests without a valid token get a 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := WithIdentity(r.Context(), Identity{UserID: claims.UserID, Role: claims.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
