package requests_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/dapp-gateway/internal/api"
	"github/chapool/dapp-gateway/internal/test"
	"github/chapool/dapp-gateway/internal/types"
)

func TestPostDisplayDetailsPlainTransfer(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := map[string]interface{}{
			"id":     1630241574000123,
			"method": "eth_sendTransaction",
			"params": []interface{}{
				map[string]string{
					"from":     "0x1111111111111111111111111111111111111111",
					"to":       "0x2222222222222222222222222222222222222222",
					"value":    "0x2386f26fc10000",
					"gasLimit": "0x5208",
				},
			},
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/requests/display-details", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PostDisplayDetailsResponse
		test.ParseResponseBody(t, res, &response)

		assert.Equal(t, "transaction", response.Kind)
		assert.Equal(t, int64(1630241574000), response.TimestampMs)

		tx := response.Transaction
		require.NotNil(t, tx)
		require.NotNil(t, tx.Asset)
		assert.Equal(t, "ETH", tx.Asset.Symbol)
		assert.Nil(t, tx.Asset.Address)
		assert.Equal(t, "0.01", tx.Value)
		assert.Equal(t, "$16.50", tx.NativeAmountDisplay)
		assert.Equal(t, uint64(21000), tx.GasLimit)
	})
}

func TestPostDisplayDetailsTokenTransfer(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := map[string]interface{}{
			"id":     1630241574000123,
			"method": "eth_sendTransaction",
			"params": []interface{}{
				map[string]string{
					"from": "0x1111111111111111111111111111111111111111",
					"to":   test.TestTokenAddress,
					"data": "0xa9059cbb" +
						"0000000000000000000000003333333333333333333333333333333333333333" +
						"00000000000000000000000000000000000000000000000000000000000f4240",
				},
			},
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/requests/display-details", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PostDisplayDetailsResponse
		test.ParseResponseBody(t, res, &response)

		assert.Equal(t, "transaction", response.Kind)

		tx := response.Transaction
		require.NotNil(t, tx)
		require.NotNil(t, tx.Asset)
		assert.Equal(t, "USDC", tx.Asset.Symbol)
		require.NotNil(t, tx.Asset.Address)
		assert.Equal(t, test.TestTokenAddress, *tx.Asset.Address)
		assert.Equal(t, "0x3333333333333333333333333333333333333333", tx.To)
		assert.Equal(t, "1", tx.Value)
		assert.Equal(t, "$1.00", tx.NativeAmountDisplay)
	})
}

func TestPostDisplayDetailsPersonalSign(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := map[string]interface{}{
			"id":     "abc-123",
			"method": "personal_sign",
			"params": []interface{}{"0x68656c6c6f", "0x1111111111111111111111111111111111111111"},
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/requests/display-details", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PostDisplayDetailsResponse
		test.ParseResponseBody(t, res, &response)

		assert.Equal(t, "message", response.Kind)
		require.NotNil(t, response.Message)
		assert.Equal(t, "hello", response.Message.Message)
		assert.Nil(t, response.Transaction)
	})
}

func TestPostDisplayDetailsCurrencyOverride(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := map[string]interface{}{
			"method": "eth_sendTransaction",
			"params": []interface{}{
				map[string]string{
					"to":    "0x2222222222222222222222222222222222222222",
					"value": "0x2386f26fc10000",
				},
			},
			"nativeCurrency": "EUR",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/requests/display-details", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PostDisplayDetailsResponse
		test.ParseResponseBody(t, res, &response)

		require.NotNil(t, response.Transaction)
		assert.Equal(t, "€16.50", response.Transaction.NativeAmountDisplay)
	})
}

func TestPostDisplayDetailsUnsupportedMethod(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := map[string]interface{}{
			"method": "eth_getBalance",
			"params": []interface{}{"0x1111111111111111111111111111111111111111", "latest"},
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/requests/display-details", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PostDisplayDetailsResponse
		test.ParseResponseBody(t, res, &response)

		assert.Equal(t, "none", response.Kind)
		assert.Nil(t, response.Message)
		assert.Nil(t, response.Transaction)
		assert.Nil(t, response.RawCall)
	})
}

func TestPostDisplayDetailsValidation(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// missing method
		payload := map[string]interface{}{
			"params": []interface{}{"0x1"},
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/requests/display-details", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPValidationError
		test.ParseResponseBody(t, res, &response)

		require.Len(t, response.ValidationErrors, 1)
		assert.Equal(t, "method", *response.ValidationErrors[0].Key)
	})
}
