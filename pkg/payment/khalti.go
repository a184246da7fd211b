package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Khalti e-payment lookup statuses as reported by the gateway.
const (
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
	StatusRefunded  = "Refunded"
	StatusExpired   = "Expired"
	StatusCanceled  = "User canceled"
)

// Gateway confirms a payment's completion with the external provider.
type Gateway interface {
	LookupPayment(ctx context.Context, pidx string) (*LookupResponse, error)
}

type LookupResponse struct {
	Pidx          string `json:"pidx"`
	TotalAmount   int64  `json:"total_amount"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Idx           string `json:"idx"`
	Fee           int64  `json:"fee"`
	Refunded      bool   `json:"refunded"`
	Mobile        string `json:"mobile"`
}

// TransactionReference derives the identifier used for idempotent payment
// recording: the gateway's transaction id when present, the idx field as a
// fallback, and the original pidx as a last resort.
func (r *LookupResponse) TransactionReference(pidx string) string {
	if r.TransactionID != "" {
		return r.TransactionID
	}
	if r.Idx != "" {
		return r.Idx
	}
	return pidx
}

// GatewayError carries the upstream status code and body so callers can
// surface them without guessing.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}

type KhaltiClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewKhaltiClient(baseURL, secretKey string, timeout time.Duration) *KhaltiClient {
	return &KhaltiClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *KhaltiClient) LookupPayment(ctx context.Context, pidx string) (*LookupResponse, error) {
	payload, err := json.Marshal(map[string]string{"pidx": pidx})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lookup payload: %w", err)
	}

	url := c.baseURL + "/epayment/lookup/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &GatewayError{StatusCode: http.StatusBadGateway, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var lookup LookupResponse
	if err := json.Unmarshal(body, &lookup); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	return &lookup, nil
}
