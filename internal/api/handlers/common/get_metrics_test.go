package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/dapp-gateway/internal/api"
	"github/chapool/dapp-gateway/internal/test"
)

func TestGetMetrics(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := map[string]interface{}{
			"method": "personal_sign",
			"params": []interface{}{"0x68656c6c6f"},
		}
		res := test.PerformRequest(t, s, "POST", "/api/v1/requests/display-details", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/-/metrics", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), "dapp_gateway_interpreted_requests_total")
		assert.Contains(t, res.Body.String(), `method="personal_sign"`)
	})
}
