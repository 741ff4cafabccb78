package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "sk_test_secret", user)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "9900", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, []string{"card"}, r.PostForm["payment_method_types[]"])

		json.NewEncoder(w).Encode(map[string]string{
			"id":            "pi_123",
			"client_secret": "pi_123_secret_456",
		})
	}))
	defer srv.Close()

	stripe := NewStripeService("sk_test_secret", srv.URL)
	clientSecret, err := stripe.CreatePaymentIntent(context.Background(), 99)

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", clientSecret)
}

func TestCreatePaymentIntentRoundsMinorUnits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1050", r.PostForm.Get("amount"))
		json.NewEncoder(w).Encode(map[string]string{"client_secret": "pi_secret"})
	}))
	defer srv.Close()

	stripe := NewStripeService("sk_test_secret", srv.URL)
	_, err := stripe.CreatePaymentIntent(context.Background(), 10.50)

	require.NoError(t, err)
}

func TestCreatePaymentIntentStripeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	stripe := NewStripeService("sk_test_secret", srv.URL)
	_, err := stripe.CreatePaymentIntent(context.Background(), 50)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stripe error")
}
