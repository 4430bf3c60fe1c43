package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	config "github.com/Juantrevi/Backend-Learning-Management-System/configs"
	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/services"
)

const stripeAPIBase = "https://api.stripe.com/v1"

var oneHundredCents = decimal.NewFromInt(100)

type stripeSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"`
}

// StripeService drives Stripe hosted checkout: it opens sessions for
// orders and later verifies that a session was paid.
type StripeService struct {
	client *http.Client
}

func NewStripeService() *StripeService {
	return &StripeService{client: &http.Client{Timeout: 10 * time.Second}}
}

// CreateCheckoutSession opens a hosted checkout session charging the
// order total in cents.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, order *models.CartOrder) (*services.CheckoutSession, error) {
	frontend := config.Config("FRONTEND_BASE_URL")

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer_email", order.Email)
	form.Set("success_url", fmt.Sprintf("%s/payment-success/%s?session_id={CHECKOUT_SESSION_ID}", frontend, order.OID))
	form.Set("cancel_url", fmt.Sprintf("%s/payment-failed/%s", frontend, order.OID))
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][product_data][name]", order.FullName+"'s order")
	form.Set("line_items[0][price_data][unit_amount]", fmt.Sprintf("%d", order.Total.Mul(oneHundredCents).IntPart()))

	session, err := s.do(ctx, "POST", stripeAPIBase+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	return &services.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// Verify reports whether the checkout session identified by sessionID
// was paid.
func (s *StripeService) Verify(ctx context.Context, sessionID string) (bool, error) {
	session, err := s.do(ctx, "GET", stripeAPIBase+"/checkout/sessions/"+sessionID, nil)
	if err != nil {
		return false, err
	}
	return session.PaymentStatus == "paid", nil
}

func (s *StripeService) do(ctx context.Context, method, endpoint string, body *strings.Reader) (*stripeSession, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+config.Config("STRIPE_SECRET_KEY"))
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe returned status %s", resp.Status)
	}

	var session stripeSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}
