// Package remote fetches the currency catalog from the rates API.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jask/jaskfx/internal/currency"
)

const defaultTimeout = 8 * time.Second

// ErrAPI is returned (wrapped in *APIError) when the API answers success=false.
var ErrAPI = errors.New("currency api error")

// ErrNoAccessKey means the client was built without credentials.
var ErrNoAccessKey = errors.New("currency api: access key not configured")

// APIError is the error body the API sends with success=false.
type APIError struct {
	Code int    `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("currency api: %d %s", e.Code, e.Info)
}

func (e *APIError) Unwrap() error { return ErrAPI }

// Client implements the engine's remote catalog source.
type Client struct {
	baseURL   string
	accessKey string
	source    string
	http      *http.Client
}

// Option tweaks a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithSource sets the quote base currency (e.g. USD).
func WithSource(code string) Option {
	return func(c *Client) { c.source = strings.ToUpper(strings.TrimSpace(code)) }
}

func NewClient(baseURL, accessKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		accessKey: strings.TrimSpace(accessKey),
		http:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listParams struct {
	AccessKey string `url:"access_key,omitempty"`
	Source    string `url:"source,omitempty"`
}

type listResponse struct {
	Success    bool           `json:"success"`
	Source     string         `json:"source"`
	Timestamp  int64          `json:"timestamp"`
	Currencies []currencyJSON `json:"currencies"`
	Error      *APIError      `json:"error"`
}

type currencyJSON struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	FullName string          `json:"full_name"`
	Quote    decimal.Decimal `json:"quote"`
}

// GetCurrencies fetches the full catalog. Any failure is returned as an error;
// there are no partial results.
func (c *Client) GetCurrencies(ctx context.Context) ([]currency.Currency, error) {
	ctx, span := otel.Tracer("jaskfx/remote").Start(ctx, "GetCurrencies")
	defer span.End()

	list, err := c.getCurrencies(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("currencies.count", len(list)))
	return list, nil
}

func (c *Client) getCurrencies(ctx context.Context) ([]currency.Currency, error) {
	if c.accessKey == "" {
		return nil, ErrNoAccessKey
	}
	endpoint, err := c.endpoint("currencies")
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("currency api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("currency api: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("currency api: decode: %w", err)
	}
	if !out.Success {
		if out.Error != nil {
			return nil, out.Error
		}
		return nil, fmt.Errorf("%w: success=false without error body", ErrAPI)
	}

	list := make([]currency.Currency, 0, len(out.Currencies))
	for _, cj := range out.Currencies {
		code := strings.ToUpper(strings.TrimSpace(cj.Code))
		if code == "" {
			continue
		}
		name := strings.TrimSpace(cj.Name)
		if name == "" {
			name = code
		}
		list = append(list, currency.Currency{
			Code:        code,
			DisplayName: name,
			FullName:    strings.TrimSpace(cj.FullName),
			Quote:       cj.Quote,
		})
	}
	return list, nil
}

func (c *Client) endpoint(path string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("currency api: base url not configured")
	}
	u, err := url.Parse(c.baseURL + "/" + path)
	if err != nil {
		return "", fmt.Errorf("currency api: base url: %w", err)
	}
	v, err := query.Values(listParams{AccessKey: c.accessKey, Source: c.source})
	if err != nil {
		return "", err
	}
	u.RawQuery = v.Encode()
	return u.String(), nil
}
