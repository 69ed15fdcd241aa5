package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/giftmart/giftadmin/internal/models"
	"github.com/shopspring/decimal"
)

// dateLayouts are the timestamp formats the storefront backend is known to emit
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TokenProvider supplies the bearer credential attached to every request.
// Credential acquisition and refresh belong to the external auth service.
type TokenProvider interface {
	Token() string
}

// StaticToken is a fixed bearer credential
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Client represents HTTP client for storefront backend order endpoints
type Client struct {
	client  *http.Client
	baseURL string
	tokens  TokenProvider
}

// NewClient creates new Client instance
func NewClient(baseURL string, tokens TokenProvider) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		tokens:  tokens,
	}
}

type customerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type orderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	Status          string              `json:"status"`
	TotalPrice      decimal.Decimal     `json:"total_price"`
	Date            string              `json:"date"`
	Items           []orderItemResponse `json:"items"`
	ReceiverName    string              `json:"receiver_name"`
	ReceiverPhone   string              `json:"receiver_phone"`
	Customer        customerResponse    `json:"customer"`
	RejectionReason string              `json:"rejection_reason"`
	IsPremium       bool                `json:"is_premium"`
}

type listResponse struct {
	Data []orderResponse `json:"data"`
}

// toOrder converts a wire order to the domain model, normalizing the status.
// Raw backend status strings never leave this package.
func toOrder(resp orderResponse) (models.Order, error) {
	status, err := models.ParseStatus(resp.Status)
	if err != nil {
		return models.Order{}, fmt.Errorf("order %s: %w", resp.ID, err)
	}

	items := make([]models.OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return models.Order{
		ID:              resp.ID,
		Status:          status,
		TotalPrice:      resp.TotalPrice,
		Date:            parseDate(resp.Date),
		Items:           items,
		ReceiverName:    resp.ReceiverName,
		ReceiverPhone:   resp.ReceiverPhone,
		CustomerName:    resp.Customer.Name,
		CustomerEmail:   resp.Customer.Email,
		RejectionReason: resp.RejectionReason,
		IsPremium:       resp.IsPremium,
	}, nil
}

// parseDate parses a backend timestamp. Missing or unparseable dates
// come back as the zero time so they sort as oldest.
func parseDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// ListOrders fetches the full order set from the backend filter endpoint.
// Orders with a status outside the alias table are skipped rather than
// failing the whole fetch.
func (c *Client) ListOrders(ctx context.Context, filters url.Values) ([]models.Order, error) {
	// GET /orders/filter?<query>
	u, err := url.JoinPath(c.baseURL, "orders", "filter")
	if err != nil {
		return nil, err
	}
	if len(filters) > 0 {
		u = u + "?" + filters.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		listResp := listResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
			return nil, fmt.Errorf("decode order list: %w", err)
		}
		orders := make([]models.Order, 0, len(listResp.Data))
		for _, raw := range listResp.Data {
			order, err := toOrder(raw)
			if err != nil {
				continue
			}
			orders = append(orders, order)
		}
		return orders, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, models.ErrUnauthorized
	default:
		return nil, fmt.Errorf("list orders: status %d: %w", resp.StatusCode, models.ErrBackend)
	}
}

// ApplyStatus issues the transition-specific call for an order. The backend
// models transitions as actions, one endpoint per target status; rejection
// is a multipart form carrying the reason.
func (c *Client) ApplyStatus(ctx context.Context, orderID string, next models.Status, reason string) (*models.Order, error) {
	// POST /orders/{id}/status/{next}
	u, err := url.JoinPath(c.baseURL, "orders", orderID, "status", string(next))
	if err != nil {
		return nil, err
	}

	var req *http.Request
	if next == models.StatusRejected {
		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		if err := form.WriteField("reject_reason", reason); err != nil {
			return nil, err
		}
		if err := form.Close(); err != nil {
			return nil, err
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, u, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", form.FormDataContentType())
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
		if err != nil {
			return nil, err
		}
	}
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("apply status %s: %w", next, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		raw := orderResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		order, err := toOrder(raw)
		if err != nil {
			return nil, err
		}
		return &order, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, models.ErrUnauthorized
	case http.StatusNotFound:
		return nil, models.ErrOrderNotFound
	default:
		return nil, fmt.Errorf("apply status %s: status %d: %w", next, resp.StatusCode, models.ErrBackend)
	}
}
