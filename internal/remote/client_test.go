package remote

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskfx/internal/currency"
)

func serve(t *testing.T, status int, body string) (*httptest.Server, *url.URL) {
	t.Helper()
	got := &url.URL{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = *r.URL
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestGetCurrencies(t *testing.T) {
	srv, reqURL := serve(t, http.StatusOK, `{
		"success": true,
		"source": "USD",
		"timestamp": 1597000000,
		"currencies": [
			{"code": "usd", "name": "Dollar", "full_name": "US Dollar", "quote": 1},
			{"code": "EUR", "name": "Euro", "full_name": "Euro Zone", "quote": "0.8472"},
			{"code": "BTC", "name": "", "full_name": "Bitcoin", "quote": 0.0000845},
			{"code": "", "name": "broken"}
		]
	}`)

	c := NewClient(srv.URL+"/", "k3y", WithHTTPClient(srv.Client()), WithSource("usd"), WithTimeout(time.Second))
	list, err := c.GetCurrencies(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"USD", "EUR", "BTC"}, currency.Codes(list))
	require.Equal(t, "0.8472", list[1].Quote.String())
	require.Equal(t, "BTC", list[2].DisplayName)
	require.Equal(t, "Bitcoin", list[2].FullName)

	require.Equal(t, "/currencies", reqURL.Path)
	require.Equal(t, "k3y", reqURL.Query().Get("access_key"))
	require.Equal(t, "USD", reqURL.Query().Get("source"))
}

func TestGetCurrenciesAPIError(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `{"success": false, "error": {"code": 101, "info": "invalid access key"}}`)

	_, err := NewClient(srv.URL, "bad", WithHTTPClient(srv.Client())).GetCurrencies(context.Background())
	require.ErrorIs(t, err, ErrAPI)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, 101, apiErr.Code)
}

func TestGetCurrenciesHTTPStatus(t *testing.T) {
	srv, _ := serve(t, http.StatusBadGateway, `upstream down`)
	_, err := NewClient(srv.URL, "k", WithHTTPClient(srv.Client())).GetCurrencies(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestGetCurrenciesBadJSON(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `{"success": tru`)
	_, err := NewClient(srv.URL, "k", WithHTTPClient(srv.Client())).GetCurrencies(context.Background())
	require.ErrorContains(t, err, "decode")
}

func TestGetCurrenciesNeedsConfig(t *testing.T) {
	_, err := NewClient("http://example.invalid", "").GetCurrencies(context.Background())
	require.ErrorIs(t, err, ErrNoAccessKey)

	_, err = NewClient("", "k").GetCurrencies(context.Background())
	require.ErrorContains(t, err, "base url")
}

func TestGetCurrenciesHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewClient(srv.URL, "k", WithHTTPClient(srv.Client())).GetCurrencies(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestWithHTTPClientIsUsed(t *testing.T) {
	calls := 0
	h := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		require.Equal(t, "rates.test", r.URL.Host)
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"success":true,"currencies":[{"code":"EUR","name":"Euro","quote":"0.9"}]}`)),
			Request:    r,
		}, nil
	})}

	list, err := NewClient("http://rates.test", "k", WithHTTPClient(h)).GetCurrencies(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, []string{"EUR"}, currency.Codes(list))
}
