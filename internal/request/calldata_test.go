package request_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/dapp-gateway/internal/asset"
	"github/chapool/dapp-gateway/internal/request"
	"github/chapool/dapp-gateway/internal/test"
)

const transferSelector = "a9059cbb"

// pad32 left-pads a hex fragment to a full 32-byte argument word.
func pad32(hexFragment string) string {
	return strings.Repeat("0", 64-len(hexFragment)) + hexFragment
}

func transferData(recipient string, amountHex string) string {
	return "0x" + transferSelector + pad32(strings.TrimPrefix(recipient, "0x")) + pad32(amountHex)
}

func TestDecodeCallDataPlainTransfer(t *testing.T) {
	reg := test.NewTestAssetRegistry(t)

	for _, data := range []string{"", "0x", "  ", "0X"} {
		cd := request.DecodeCallData(data, test.TestTokenAddress, reg)
		assert.Equal(t, request.CallPlainTransfer, cd.Kind, fmt.Sprintf("data %q", data))
	}
}

func TestDecodeCallDataTokenTransfer(t *testing.T) {
	reg := test.NewTestAssetRegistry(t)

	recipient := "0x1111111111111111111111111111111111111111"
	data := transferData(recipient, "f4240") // 1_000_000

	cd := request.DecodeCallData(data, test.TestTokenAddress, reg)
	require.Equal(t, request.CallTokenTransfer, cd.Kind)
	require.NotNil(t, cd.Asset)
	assert.Equal(t, "USDC", cd.Asset.Symbol)
	assert.Equal(t, recipient, cd.Recipient)
	assert.Equal(t, int64(1000000), cd.RawAmount.Int64())
}

func TestDecodeCallDataRecipientLowercased(t *testing.T) {
	reg := test.NewTestAssetRegistry(t)

	data := transferData("0xAbCdEfAbCdEfAbCdEfAbCdEfAbCdEfAbCdEfAbCd", "1")

	cd := request.DecodeCallData(data, test.TestTokenAddress, reg)
	require.Equal(t, request.CallTokenTransfer, cd.Kind)
	assert.Equal(t, "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd", cd.Recipient)
}

func TestDecodeCallDataHugeAmount(t *testing.T) {
	reg := test.NewTestAssetRegistry(t)

	// max uint256
	data := transferData("0x1111111111111111111111111111111111111111", strings.Repeat("f", 64))

	cd := request.DecodeCallData(data, test.TestTokenAddress, reg)
	require.Equal(t, request.CallTokenTransfer, cd.Kind)
	assert.Equal(t,
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		cd.RawAmount.String())
}

func TestDecodeCallDataUnknownToken(t *testing.T) {
	reg := test.NewTestAssetRegistry(t)

	contract := "0x2222222222222222222222222222222222222222"
	data := transferData("0x1111111111111111111111111111111111111111", "1")

	cd := request.DecodeCallData(data, contract, reg)
	require.Equal(t, request.CallTokenTransfer, cd.Kind)
	require.NotNil(t, cd.Asset)
	assert.Equal(t, asset.UnknownSymbol, cd.Asset.Symbol)
	assert.Equal(t, int32(18), cd.Asset.Decimals)
	assert.Equal(t, contract, cd.Asset.Address.String)
}

func TestDecodeCallDataOtherSelector(t *testing.T) {
	reg := test.NewTestAssetRegistry(t)

	// transferFrom(address,address,uint256) must not be decoded as a transfer
	data := "0x23b872dd" +
		pad32("1111111111111111111111111111111111111111") +
		pad32("2222222222222222222222222222222222222222") +
		pad32("1")

	cd := request.DecodeCallData(data, test.TestTokenAddress, reg)
	require.Equal(t, request.CallRaw, cd.Kind)
	assert.Equal(t, data, cd.Data)
}

func TestDecodeCallDataTruncatedTransfer(t *testing.T) {
	reg := test.NewTestAssetRegistry(t)

	// correct selector but arguments cut short
	data := "0x" + transferSelector + pad32("1111111111111111111111111111111111111111") + "ff"

	cd := request.DecodeCallData(data, test.TestTokenAddress, reg)
	assert.Equal(t, request.CallRaw, cd.Kind)
	assert.Equal(t, data, cd.Data)
}

func TestDecodeCallDataNotHex(t *testing.T) {
	reg := test.NewTestAssetRegistry(t)

	for _, data := range []string{"0xzz", "0x123", "hello world"} {
		cd := request.DecodeCallData(data, test.TestTokenAddress, reg)
		assert.Equal(t, request.CallRaw, cd.Kind, data)
		assert.Equal(t, data, cd.Data, data)
	}
}

func TestDecodeCallDataNilRegistry(t *testing.T) {
	data := transferData("0x1111111111111111111111111111111111111111", "1")

	cd := request.DecodeCallData(data, test.TestTokenAddress, nil)
	require.Equal(t, request.CallTokenTransfer, cd.Kind)
	require.NotNil(t, cd.Asset)
	assert.Equal(t, asset.UnknownSymbol, cd.Asset.Symbol)
}
