package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type StripeService struct {
	secretKey string
	baseURL   string
}

type StripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func NewStripeService(secretKey, baseURL string) *StripeService {
	return &StripeService{
		secretKey: secretKey,
		baseURL:   baseURL,
	}
}

// CreatePaymentIntent requests a card-only payment intent from Stripe
// and returns its client secret for client-side confirmation. The price
// is converted to minor units (cents, two-decimal currency assumed).
// Nothing is persisted here.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Add("payment_method_types[]", "card")

	req, _ := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	req.SetBasicAuth(s.secretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.New("Stripe error: " + string(body))
	}

	var result StripeIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.ClientSecret, nil
}
