package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github/chapool/dapp-gateway/internal/asset"
)

// Session protocol method names. These strings are an external contract with
// the dapp transport and must not be renamed.
const (
	MethodSendTransaction = "eth_sendTransaction"
	MethodSignTransaction = "eth_signTransaction"
	MethodSign            = "eth_sign"
	MethodPersonalSign    = "personal_sign"
	MethodSignTypedData   = "eth_signTypedData"
	MethodSignTypedDataV3 = "eth_signTypedData_v3"
	MethodSignTypedDataV4 = "eth_signTypedData_v4"
)

// RawRequest is a session request as delivered by the transport, already
// JSON-deserialized but otherwise untrusted. The id is dapp-supplied and only
// used to derive an approximate timestamp.
type RawRequest struct {
	ID     json.RawMessage   `json:"id,omitempty"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// TransactionPayload is params[0] of a transaction-bearing request. All
// numeric fields are hex-encoded strings; empty or absent means zero.
type TransactionPayload struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Data     string `json:"data"`
	GasLimit string `json:"gasLimit"`
	// Gas is the alias some transports use for gasLimit.
	Gas      string `json:"gas"`
	GasPrice string `json:"gasPrice"`
	Nonce    string `json:"nonce"`
}

// DisplayKind discriminates the display record variants.
type DisplayKind int

const (
	// DisplayNone is produced for unsupported methods and structurally
	// impossible requests; there is nothing actionable to show.
	DisplayNone DisplayKind = iota
	// DisplayMessage is a signature request.
	DisplayMessage
	// DisplayTransaction is a recognized value or token transfer.
	DisplayTransaction
	// DisplayRawCall is an unrecognized contract call.
	DisplayRawCall
)

func (k DisplayKind) String() string {
	switch k {
	case DisplayMessage:
		return "message"
	case DisplayTransaction:
		return "transaction"
	case DisplayRawCall:
		return "rawCall"
	case DisplayNone:
		return "none"
	default:
		return "none"
	}
}

// MessageDisplay shows the payload of a signature request verbatim (or hex
// decoded to text where the protocol conventionally allows it).
type MessageDisplay struct {
	Message string
}

// TransactionDisplay is the normalized view of a value or token transfer:
// who pays whom, which asset, how much, and the fiat equivalent when the
// asset has a known price.
type TransactionDisplay struct {
	Asset               *asset.Asset
	From                string
	To                  string
	Value               decimal.Decimal
	NativeAmount        decimal.Decimal
	NativeAmountDisplay string
	GasLimit            uint64
	GasPrice            uint64
	Nonce               uint64
}

// RawCallDisplay is shown for contract calls the decoder does not recognize.
// The raw call data is surfaced so the user can still make an informed
// rejection.
type RawCallDisplay struct {
	Data     string
	From     string
	To       string
	Value    decimal.Decimal
	GasLimit uint64
	GasPrice uint64
	Nonce    uint64
}

// DisplayDetails is the interpreter's output: exactly one variant per
// request, discriminated by Kind, with the matching pointer field set.
type DisplayDetails struct {
	Kind        DisplayKind
	TimestampMs int64

	Message     *MessageDisplay
	Transaction *TransactionDisplay
	RawCall     *RawCallDisplay
}
