package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"airvoucher-admin/internal/pkg/config"

	"github.com/shopspring/decimal"
)

const maxErrorBody = 4 << 10

type Client struct {
	baseURL  string
	apiKey   string
	clientID string
	http     *http.Client
}

func NewClient(cfg config.PartnerConfig) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		clientID: cfg.ClientID,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

// ListBundles fetches the bundle catalog for a category such as "data" or "airtime".
func (c *Client) ListBundles(ctx context.Context, category string) ([]BundleProduct, error) {
	q := url.Values{}
	q.Set("category", category)

	var out bundleListResponse
	if err := c.do(ctx, http.MethodGet, "/bundles?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	if out.Bundles == nil {
		out.Bundles = []BundleProduct{}
	}
	return out.Bundles, nil
}

// RequestVoucher asks the partner to issue a voucher of value (rand) for provider.
func (c *Client) RequestVoucher(ctx context.Context, value decimal.Decimal, provider string) (*Voucher, error) {
	var out Voucher
	body := voucherRequest{Value: value, Provider: provider}
	if err := c.do(ctx, http.MethodPost, "/vouchers", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("X-Client-ID", c.clientID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "Partner request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err))
		return fmt.Errorf("failed to call partner api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.WarnContext(ctx, "Partner api returned error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode partner response: %w", err)
	}
	return nil
}
