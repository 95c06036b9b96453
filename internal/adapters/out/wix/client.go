// Package wix reads the catalog and the orders of a Wix store through the
// Wix REST API. Client implements ports.CatalogSource.
package wix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"warehouse/internal/pkg/errs"
)

const (
	DefaultBaseURL  = "https://www.wixapis.com"
	defaultPageSize = 100
	defaultTimeout  = 30 * time.Second

	productsV3Path   = "/stores/v3/products/query"
	productsV1Path   = "/stores/v1/products/query"
	ordersSearchPath = "/ecom/v1/orders/search"
)

// ErrNotConfigured is returned when the API key or the site id is missing.
var ErrNotConfigured = fmt.Errorf("wix: %w", errs.NewValueIsRequiredError("WIX_API_KEY, WIX_SITE_ID"))

// APIError is a non-2xx response of the Wix API.
type APIError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wix: %s returned %d: %s", e.Path, e.StatusCode, e.Body)
}

// Config holds the site credentials. APIKey is a site-level API key, sent
// as is in the Authorization header.
type Config struct {
	BaseURL    string
	APIKey     string
	SiteID     string
	PageSize   int
	HTTPClient *http.Client
}

// Client is a Wix REST client. It is safe for concurrent use.
type Client struct {
	baseURL  string
	apiKey   string
	siteID   string
	pageSize int
	http     *http.Client
	logger   *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		siteID:   cfg.SiteID,
		pageSize: cfg.PageSize,
		http:     cfg.HTTPClient,
		logger:   logger.With("component", "wix-client"),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.pageSize < 1 {
		c.pageSize = defaultPageSize
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	return c
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.siteID != ""
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("wix: encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("wix-site-id", c.siteID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("wix: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("wix: decode %s response: %w", path, err)
	}
	return nil
}
