package asset

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// unknownAssetDecimals is assumed when a contract is not in the registry.
// 18 is the overwhelmingly common ERC-20 choice, and the symbol makes the
// guess visible to the user.
const unknownAssetDecimals int32 = 18

// UnknownSymbol is displayed for assets the registry cannot resolve.
const UnknownSymbol = "unknown"

// Asset describes a displayable on-chain asset. The chain's native asset
// carries no contract address.
type Asset struct {
	Address  null.String
	Symbol   string
	Decimals int32
	Price    *Price
}

// Price is an asset's unit price in the configured display currency.
type Price struct {
	Value decimal.Decimal
}

// IsNative reports whether the asset is the chain's base unit asset.
func (a *Asset) IsNative() bool {
	return a == nil || !a.Address.Valid
}

// PriceValue returns the unit price, or zero when no price is known.
func (a *Asset) PriceValue() decimal.Decimal {
	if a == nil || a.Price == nil {
		return decimal.Zero
	}
	return a.Price.Value
}

// Unknown returns the placeholder asset substituted on a registry miss.
func Unknown(contractAddress string) *Asset {
	return &Asset{
		Address:  null.NewString(contractAddress, contractAddress != ""),
		Symbol:   UnknownSymbol,
		Decimals: unknownAssetDecimals,
	}
}
