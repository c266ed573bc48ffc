package amounts

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// etherDecimals is the native chain unit convention (1 ether = 10^18 wei).
const etherDecimals int32 = 18

// defaultFractionDigits is used for display when the currency is unknown to
// the CLDR data (most fiat currencies round to 2 digits).
const defaultFractionDigits = 2

// currencySymbols maps supported display currencies to their conventional
// prefix symbol. Currencies not listed here are rendered with the ISO code
// as a suffix instead.
var currencySymbols = map[string]string{
	"AUD": "A$",
	"CAD": "C$",
	"CNY": "¥",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"KRW": "₩",
	"NZD": "NZ$",
	"RUB": "₽",
	"TRY": "₺",
	"USD": "$",
	"ZAR": "R",
}

// RawToDecimal converts an integer amount in a token's smallest unit into its
// human decimal representation, raw / 10^decimals. The arithmetic is exact;
// no binary floating point is involved.
func RawToDecimal(raw *big.Int, decimals int32) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -decimals)
}

// WeiToEther converts a wei amount into ether.
func WeiToEther(wei *big.Int) decimal.Decimal {
	return RawToDecimal(wei, etherDecimals)
}

// NativeDisplay converts an asset amount and its unit price into the native
// display currency. It returns the exact converted amount together with a
// rendered string such as "$16.50". A zero or absent unit price means the
// price is unknown: the amount is zero and the display string is empty, which
// is a recoverable state rather than an error.
func NativeDisplay(amount, unitPrice decimal.Decimal, currencyCode string) (decimal.Decimal, string) {
	if unitPrice.IsZero() {
		return decimal.Zero, ""
	}

	native := amount.Mul(unitPrice)
	rendered := native.StringFixed(fractionDigits(currencyCode))

	if symbol, ok := currencySymbols[currencyCode]; ok {
		return native, symbol + rendered
	}
	return native, rendered + " " + currencyCode
}

// fractionDigits resolves the conventional number of fraction digits for a
// fiat currency (2 for USD, 0 for JPY, ...) via the CLDR cash conventions.
func fractionDigits(currencyCode string) int32 {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return defaultFractionDigits
	}
	scale, _ := currency.Cash.Rounding(unit)
	return int32(scale)
}
