package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestRequireJWTMissingHeader(t *testing.T) {
	mw := RequireJWT("secret")
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireJWTWrongSecret(t *testing.T) {
	mw := RequireJWT("secret")
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "wrong", "a@b.com", time.Hour))
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestRequireJWTExpiredToken(t *testing.T) {
	mw := RequireJWT("secret")
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", "a@b.com", -time.Hour))
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestRequireJWTValidToken(t *testing.T) {
	mw := RequireJWT("secret")
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", "a@b.com", time.Hour))
	rec := httptest.NewRecorder()

	called := false
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		email, ok := EmailFromContext(r.Context())
		if !ok || email != "a@b.com" {
			t.Fatalf("expected email a@b.com in context, got %q (ok=%v)", email, ok)
		}
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	if !called {
		t.Fatalf("expected handler to be called")
	}
}

func TestSignTokenRoundTrip(t *testing.T) {
	signed, err := SignToken("secret", "a@b.com")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected valid token, got err=%v", err)
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("expected email a@b.com, got %q", claims.Email)
	}
}

type fakeAdminChecker struct {
	admins map[string]bool
	err    error
}

func (f *fakeAdminChecker) IsAdmin(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[email], nil
}

func TestRequireAdminNonAdmin(t *testing.T) {
	mw := RequireAdmin(&fakeAdminChecker{admins: map[string]bool{}})
	req := withEmail(httptest.NewRequest(http.MethodGet, "/users", nil), "user@b.com")
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run for non-admin")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestRequireAdminMissingIdentity(t *testing.T) {
	mw := RequireAdmin(&fakeAdminChecker{admins: map[string]bool{"admin@b.com": true}})
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run without identity")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestRequireAdminLookupError(t *testing.T) {
	mw := RequireAdmin(&fakeAdminChecker{err: errors.New("store down")})
	req := withEmail(httptest.NewRequest(http.MethodGet, "/users", nil), "admin@b.com")
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestRequireAdminAdmin(t *testing.T) {
	mw := RequireAdmin(&fakeAdminChecker{admins: map[string]bool{"admin@b.com": true}})
	req := withEmail(httptest.NewRequest(http.MethodGet, "/users", nil), "admin@b.com")
	rec := httptest.NewRecorder()

	called := false
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	if !called {
		t.Fatalf("expected handler to be called")
	}
}

func signedToken(t *testing.T, secret, email string, ttl time.Duration) string {
	t.Helper()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func withEmail(r *http.Request, email string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), emailKey, email))
}
