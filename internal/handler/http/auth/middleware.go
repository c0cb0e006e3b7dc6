package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"astrobuzz/internal/handler/http/respond"
	authservice "astrobuzz/internal/service/auth"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxUserID ctxKey = "userID"

// Authz is the authorization middleware. Most of the API is public
// reading; only the account-scoped endpoints registered on the
// AuthService require a valid JWT. For those, the token is validated
// for every method and the account id from the uid claim is put on the
// request context.
func Authz(authService *authservice.AuthService) func(http.Handler) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			if !authService.IsProtectedEndpoint(r.URL.Path) {
				RecordAuthzCheckDuration(time.Since(start).Seconds())
				next.ServeHTTP(w, r)
				return
			}

			uid, err := validateJWT(r.Header.Get("Authorization"), secret)
			RecordAuthzCheckDuration(time.Since(start).Seconds())
			if err != nil {
				RecordRejectedToken(r.Method)
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
		})
	}
}

// WithUserID attaches an authenticated account id to the context.
func WithUserID(ctx context.Context, uid int64) context.Context {
	return context.WithValue(ctx, ctxUserID, uid)
}

// UserID returns the authenticated account id from the request context.
// The second return is false on unauthenticated requests.
func UserID(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(ctxUserID).(int64)
	return uid, ok
}

// validateJWT checks the Authorization header and returns the account id
// from the uid claim.
func validateJWT(authz string, secret []byte) (int64, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return 0, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return 0, errors.New("token expired")
	}
	if _, ok := claims["sub"].(string); !ok {
		return 0, errors.New("invalid sub claim")
	}
	// JSON numbers decode as float64
	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return 0, errors.New("invalid uid claim")
	}
	return int64(uid), nil
}
