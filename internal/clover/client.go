// Package clover is a client for the Clover v3 merchant REST API.
package clover

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bitewise/internal/apperrors"
	"bitewise/internal/logging"

	"github.com/goccy/go-json"
)

const (
	// DefaultBaseURL is the Clover sandbox host.
	DefaultBaseURL = "https://sandbox.dev.clover.com"

	merchantsPath = "/v3/merchants"
)

// Client issues single-attempt calls against the Clover API. It holds no
// per-merchant state; credentials are passed on every call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for baseURL. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListCategories returns every category of the merchant.
func (c *Client) ListCategories(ctx context.Context, merchantID, accessToken string) ([]Category, error) {
	body, err := c.do(ctx, http.MethodGet, c.merchantURL(merchantID, "categories"), accessToken, nil, false)
	if err != nil {
		return nil, err
	}
	var resp elements[Category]
	if err := decode(body, &resp); err != nil {
		return nil, err
	}
	return resp.Elements, nil
}

// ListItemsInCategory resolves categoryName case-insensitively and returns the
// items under the first matching category.
func (c *Client) ListItemsInCategory(ctx context.Context, merchantID, accessToken, categoryName string) ([]Item, error) {
	categories, err := c.ListCategories(ctx, merchantID, accessToken)
	if err != nil {
		return nil, err
	}

	categoryID := ""
	for _, category := range categories {
		if strings.EqualFold(category.Name, categoryName) {
			categoryID = category.ID
			break
		}
	}
	if categoryID == "" {
		return nil, apperrors.NotFound("Category '%s' not found.", categoryName)
	}

	body, err := c.do(ctx, http.MethodGet, c.merchantURL(merchantID, "categories", categoryID, "items"), accessToken, nil, false)
	if err != nil {
		return nil, err
	}
	var resp elements[Item]
	if err := decode(body, &resp); err != nil {
		return nil, err
	}
	return resp.Elements, nil
}

// GetItemDetail fetches one item with its categories expanded.
func (c *Client) GetItemDetail(ctx context.Context, merchantID, accessToken, itemID string) (Item, error) {
	body, err := c.do(ctx, http.MethodGet, c.merchantURL(merchantID, "items", itemID)+"?expand=categories", accessToken, nil, false)
	if err != nil {
		return nil, err
	}
	var item Item
	if err := decode(body, &item); err != nil {
		return nil, err
	}
	return item, nil
}

// CreateItem creates an inventory item from itemData.
func (c *Client) CreateItem(ctx context.Context, merchantID, accessToken string, itemData map[string]any) (Item, error) {
	payload, err := json.Marshal(itemData)
	if err != nil {
		return nil, &apperrors.UpstreamError{Status: http.StatusInternalServerError, Detail: apperrors.UnexpectedMessage, Err: err}
	}
	body, err := c.do(ctx, http.MethodPost, c.merchantURL(merchantID, "items"), accessToken, payload, true)
	if err != nil {
		return nil, err
	}
	var item Item
	if err := decode(body, &item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns up to limit inventory items of the merchant.
func (c *Client) ListItems(ctx context.Context, merchantID, accessToken string, limit int) ([]Item, error) {
	body, err := c.do(ctx, http.MethodGet, withLimit(c.merchantURL(merchantID, "items"), limit), accessToken, nil, false)
	if err != nil {
		return nil, err
	}
	var resp elements[Item]
	if err := decode(body, &resp); err != nil {
		return nil, err
	}
	return resp.Elements, nil
}

// ListOrders returns up to limit orders of the merchant.
func (c *Client) ListOrders(ctx context.Context, merchantID, accessToken string, limit int) ([]Order, error) {
	body, err := c.do(ctx, http.MethodGet, withLimit(c.merchantURL(merchantID, "orders"), limit), accessToken, nil, false)
	if err != nil {
		return nil, err
	}
	var resp elements[Order]
	if err := decode(body, &resp); err != nil {
		return nil, err
	}
	return resp.Elements, nil
}

// CreateOrder creates an order from orderData.
func (c *Client) CreateOrder(ctx context.Context, merchantID, accessToken string, orderData map[string]any) (Order, error) {
	payload, err := json.Marshal(orderData)
	if err != nil {
		return nil, unexpected(err)
	}
	body, err := c.do(ctx, http.MethodPost, c.merchantURL(merchantID, "orders"), accessToken, payload, true)
	if err != nil {
		return nil, err
	}
	var order Order
	if err := decode(body, &order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetMerchant fetches the merchant resource. It doubles as a token check.
func (c *Client) GetMerchant(ctx context.Context, merchantID, accessToken string) (*Merchant, error) {
	body, err := c.do(ctx, http.MethodGet, c.merchantURL(merchantID), accessToken, nil, false)
	if err != nil {
		return nil, err
	}
	var m Merchant
	if err := decode(body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) merchantURL(merchantID string, segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(merchantsPath)
	b.WriteString("/")
	b.WriteString(url.PathEscape(merchantID))
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func withLimit(rawURL string, limit int) string {
	if limit <= 0 {
		return rawURL
	}
	return rawURL + "?limit=" + strconv.Itoa(limit)
}

// do performs one request and returns the body of a 2xx response. When
// extractMessage is set, a non-2xx body's "message" field is used as the
// error detail.
func (c *Client) do(ctx context.Context, method, rawURL, accessToken string, payload []byte, extractMessage bool) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, unexpected(err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Warn().Err(err).Str("method", method).Str("url", rawURL).Msg("clover request failed")
		return nil, unexpected(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unexpected(err)
	}

	logging.Debug().
		Str("method", method).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("clover response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := string(body)
		if extractMessage {
			var eb errorBody
			if json.Unmarshal(body, &eb) == nil && eb.Message != "" {
				detail = eb.Message
			}
		}
		return nil, &apperrors.UpstreamError{
			Status: resp.StatusCode,
			Detail: fmt.Sprintf("Clover API error: %s", detail),
		}
	}
	return body, nil
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return unexpected(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func unexpected(err error) error {
	return &apperrors.UpstreamError{
		Status: http.StatusInternalServerError,
		Detail: apperrors.UnexpectedMessage,
		Err:    err,
	}
}
