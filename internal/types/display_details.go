package types

import (
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostDisplayDetailsPayload is a raw session request as delivered by the
// dapp transport, plus an optional display currency override.
type PostDisplayDetailsPayload struct {
	// Correlation id assigned by the remote dapp; integer or string
	ID json.RawMessage `json:"id,omitempty"`
	// Session protocol method name
	// Required: true
	Method *string `json:"method"`
	// Positional, method-dependent parameters
	Params []json.RawMessage `json:"params"`
	// ISO 4217 currency code overriding the configured display currency
	NativeCurrency string `json:"nativeCurrency,omitempty"`
}

// Validate validates this payload.
func (p *PostDisplayDetailsPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("method", "body", p.Method); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PublicAsset is the wire shape of a resolved asset.
type PublicAsset struct {
	// Contract address; absent for the chain's native asset
	Address *string `json:"address,omitempty"`
	Symbol  string  `json:"symbol"`
	// Decimal precision of the asset's smallest unit
	Decimals int32 `json:"decimals"`
	// Unit price in the display currency; absent when unknown
	Price *string `json:"price,omitempty"`
}

// PublicMessageDisplay is the wire shape of a signature request record.
type PublicMessageDisplay struct {
	Message string `json:"message"`
}

// PublicTransactionDisplay is the wire shape of a recognized value or token
// transfer record. Amounts are decimal strings to avoid any precision loss
// in transit.
type PublicTransactionDisplay struct {
	Asset               *PublicAsset `json:"asset"`
	From                string       `json:"from"`
	To                  string       `json:"to"`
	Value               string       `json:"value"`
	NativeAmount        string       `json:"nativeAmount"`
	NativeAmountDisplay string       `json:"nativeAmountDisplay"`
	GasLimit            uint64       `json:"gasLimit"`
	GasPrice            uint64       `json:"gasPrice"`
	Nonce               uint64       `json:"nonce"`
}

// PublicRawCallDisplay is the wire shape of an unrecognized contract call.
type PublicRawCallDisplay struct {
	Data     string `json:"data"`
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	GasLimit uint64 `json:"gasLimit"`
	GasPrice uint64 `json:"gasPrice"`
	Nonce    uint64 `json:"nonce"`
}

// PostDisplayDetailsResponse carries exactly one display record variant.
// Kind "none" indicates an unsupported method with nothing actionable.
type PostDisplayDetailsResponse struct {
	Kind        string                    `json:"kind"`
	TimestampMs int64                     `json:"timestampMs,omitempty"`
	Message     *PublicMessageDisplay     `json:"message,omitempty"`
	Transaction *PublicTransactionDisplay `json:"transaction,omitempty"`
	RawCall     *PublicRawCallDisplay     `json:"rawCall,omitempty"`
}
