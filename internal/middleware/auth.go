package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const emailKey contextKey = "decodedEmail"

// Claims carried by an access token: the identity email only.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignToken issues a long-lived HS256 access token for the given email.
func SignToken(secret, email string) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// RequireJWT verifies the bearer token on protected routes and puts the
// decoded email into the request context. Missing credential is 401,
// bad or expired credential is 403. No session state is kept.
func RequireJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, `{"message":"unauthorized access"}`, http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"message":"forbidden access"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), claims.Email)))
		})
	}
}

// WithEmail returns a context carrying the authenticated email.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// EmailFromContext returns the authenticated email if present.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

// AdminChecker reports whether an email belongs to an admin user.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin runs after RequireJWT on admin-only routes. An unknown
// user is a plain non-admin and gets 403, never a fault.
func RequireAdmin(users AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := EmailFromContext(r.Context())
			if !ok {
				http.Error(w, `{"message":"forbidden access"}`, http.StatusForbidden)
				return
			}

			isAdmin, err := users.IsAdmin(r.Context(), email)
			if err != nil {
				http.Error(w, `{"message":"failed to verify role"}`, http.StatusInternalServerError)
				return
			}
			if !isAdmin {
				http.Error(w, `{"message":"forbidden access"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
