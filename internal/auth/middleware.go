package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aiquizzer/aiquizzer-lambda/internal/user"
)

type contextKey string

const claimsContextKey contextKey = "userClaims"

// AuthMiddleware resolves the caller identity for downstream handlers. A valid
// bearer token (or jwt cookie) yields its claims; anything else falls back to
// the standing local user, since this deployment has no account system yet.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := resolveClaims(r)
		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveClaims(r *http.Request) *UserClaims {
	tokenStr := ""
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenStr = strings.TrimPrefix(header, "Bearer ")
	} else if cookie, err := r.Cookie("jwt"); err == nil {
		tokenStr = cookie.Value
	}

	if tokenStr != "" {
		if claims, err := ValidateJWT(tokenStr); err == nil {
			return claims
		}
	}

	return &UserClaims{UserID: user.LocalUserID.String(), Role: "user"}
}

func GetUserClaimsFromContext(ctx context.Context) (*UserClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*UserClaims)
	if !ok || claims == nil {
		return nil, errors.New("no user claims in context")
	}
	return claims, nil
}
