package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github/chapool/dapp-gateway/internal/api"
	"github/chapool/dapp-gateway/internal/api/router"
	"github/chapool/dapp-gateway/internal/asset"
	"github/chapool/dapp-gateway/internal/config"
	"github/chapool/dapp-gateway/internal/metrics"
	"github/chapool/dapp-gateway/internal/request"
)

// TestTokenAddress is the fixture ERC-20 contract known to the test
// registry (6 decimals, priced at 1).
const TestTokenAddress = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"

// WithTestServer creates a fully initialized server with the fixture asset
// registry and hands it to the closure.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Management.Secret = ""

	s := api.NewServer(cfg)
	s.Metrics = metrics.New()
	s.Assets = NewTestAssetRegistry(t)
	s.Interpreter = request.NewService(s.Metrics)

	router.Init(s)

	closure(s)
}

// NewTestAssetRegistry returns the fixture registry used across tests: the
// native asset priced at 1650.25 and one stablecoin-like token.
//
//nolint:ireturn // Returning interface is intentional
func NewTestAssetRegistry(t *testing.T) asset.Registry {
	t.Helper()

	nativePrice := decimal.RequireFromString("1650.25")

	return asset.NewRegistry(
		&asset.Asset{
			Symbol:   "ETH",
			Decimals: 18,
			Price:    &asset.Price{Value: nativePrice},
		},
		[]*asset.Asset{
			{
				Address:  null.StringFrom(TestTokenAddress),
				Symbol:   "USDC",
				Decimals: 6,
				Price:    &asset.Price{Value: decimal.NewFromInt(1)},
			},
		},
	)
}

// PerformRequest sends a request through the server's full middleware stack
// and returns the recorded response.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body interface{}, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

// ParseResponseBody unmarshals the recorded JSON response into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal(res.Body.Bytes(), v))
}
