package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	config "github.com/Juantrevi/Backend-Learning-Management-System/configs"
)

type payPalOrder struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// PayPalService checks PayPal order status through the REST API. It
// satisfies the payment verifier the checkout flow expects.
type PayPalService struct {
	client *http.Client
}

func NewPayPalService() *PayPalService {
	return &PayPalService{client: &http.Client{Timeout: 10 * time.Second}}
}

func (p *PayPalService) getAccessToken(ctx context.Context) (string, error) {
	apiBase := config.Config("PAYPAL_API_BASE_URL")
	clientID := config.Config("PAYPAL_CLIENT_ID")
	clientSecret := config.Config("PAYPAL_CLIENT_SECRET")

	reqBody := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/v1/oauth2/token", apiBase), reqBody)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(clientID, clientSecret)
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get access token, status: %s", resp.Status)
	}

	var tokenResp accessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	return tokenResp.AccessToken, nil
}

// Verify reports whether the PayPal order identified by orderID has
// been captured.
func (p *PayPalService) Verify(ctx context.Context, orderID string) (bool, error) {
	accessToken, err := p.getAccessToken(ctx)
	if err != nil {
		return false, err
	}

	apiBase := config.Config("PAYPAL_API_BASE_URL")
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/v2/checkout/orders/%s", apiBase, orderID), nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := p.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("failed to fetch order %s, status: %s", orderID, resp.Status)
	}

	var order payPalOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return false, err
	}
	return order.Status == "COMPLETED", nil
}
