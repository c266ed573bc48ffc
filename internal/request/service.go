package request

import (
	"context"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github/chapool/dapp-gateway/internal/amounts"
	"github/chapool/dapp-gateway/internal/asset"
	"github/chapool/dapp-gateway/internal/metrics"
	"github/chapool/dapp-gateway/internal/util"
)

// timestampSuffixLength is the number of trailing digits the session
// transport appends to a millisecond timestamp when generating numeric
// request ids. Best effort: ids from other transports fall back to the
// wall clock.
const timestampSuffixLength = 3

// Service turns raw session requests into display records for human
// approval.
type Service interface {
	// DisplayDetails produces exactly one display record for req. It is
	// total: it never fails, whatever the request contains. Malformed
	// fields degrade to zero values or placeholders; unsupported methods
	// yield a record of kind DisplayNone.
	DisplayDetails(ctx context.Context, req *RawRequest, reg asset.Registry, nativeCurrency string) *DisplayDetails
}

type service struct {
	metrics *metrics.Service
	now     func() time.Time
}

// NewService creates the request interpreter. metricsService may be nil for
// offline tooling.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(metricsService *metrics.Service) Service {
	return &service{
		metrics: metricsService,
		now:     time.Now,
	}
}

func (s *service) DisplayDetails(ctx context.Context, req *RawRequest, reg asset.Registry, nativeCurrency string) *DisplayDetails {
	if req == nil {
		return &DisplayDetails{Kind: DisplayNone}
	}

	timestampMs := s.timestampFromID(req.ID)

	var details *DisplayDetails
	switch req.Method {
	case MethodSendTransaction, MethodSignTransaction:
		details = s.transactionDetails(ctx, req, reg, nativeCurrency, timestampMs)
	case MethodSign:
		details = s.messageDetails(req, 1, timestampMs)
	case MethodPersonalSign:
		details = s.personalSignDetails(ctx, req, timestampMs)
	case MethodSignTypedData, MethodSignTypedDataV3, MethodSignTypedDataV4:
		details = s.typedDataDetails(ctx, req, timestampMs)
	default:
		util.LogFromContext(ctx).Debug().Str("method", req.Method).Msg("Unsupported session request method")
		details = &DisplayDetails{Kind: DisplayNone}
	}

	s.metrics.ObserveInterpretedRequest(req.Method, details.Kind.String())

	return details
}

// messageDetails passes the message param through verbatim.
func (s *service) messageDetails(req *RawRequest, paramIndex int, timestampMs int64) *DisplayDetails {
	message, ok := paramAsString(req, paramIndex)
	if !ok {
		return &DisplayDetails{Kind: DisplayNone}
	}
	return &DisplayDetails{
		Kind:        DisplayMessage,
		TimestampMs: timestampMs,
		Message:     &MessageDisplay{Message: message},
	}
}

// personalSignDetails decodes conventionally hex-encoded text for display.
// Decoding is best effort: on failure the original hex string is shown
// unchanged, never an error.
func (s *service) personalSignDetails(ctx context.Context, req *RawRequest, timestampMs int64) *DisplayDetails {
	message, ok := paramAsString(req, 0)
	if !ok {
		return &DisplayDetails{Kind: DisplayNone}
	}

	if amounts.IsHexString(message) {
		text, err := amounts.HexToUTF8(message)
		if err == nil {
			message = text
		} else {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Message is not hex-encoded text, displaying raw")
		}
	}

	return &DisplayDetails{
		Kind:        DisplayMessage,
		TimestampMs: timestampMs,
		Message:     &MessageDisplay{Message: message},
	}
}

// typedDataDetails serializes the typed payload's message field to a
// canonical JSON string (object keys sorted).
func (s *service) typedDataDetails(ctx context.Context, req *RawRequest, timestampMs int64) *DisplayDetails {
	if len(req.Params) < 2 {
		return &DisplayDetails{Kind: DisplayNone}
	}

	message, ok := typedDataMessageJSON(req.Params[1])
	if !ok {
		util.LogFromContext(ctx).Debug().Msg("Typed data payload has no decodable message field")
		return &DisplayDetails{Kind: DisplayNone}
	}

	return &DisplayDetails{
		Kind:        DisplayMessage,
		TimestampMs: timestampMs,
		Message:     &MessageDisplay{Message: message},
	}
}

func (s *service) transactionDetails(ctx context.Context, req *RawRequest, reg asset.Registry, nativeCurrency string, timestampMs int64) *DisplayDetails {
	if len(req.Params) < 1 {
		return &DisplayDetails{Kind: DisplayNone}
	}

	var tx TransactionPayload
	if err := json.Unmarshal(req.Params[0], &tx); err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Msg("Transaction payload is not an object")
		return &DisplayDetails{Kind: DisplayNone}
	}

	gasLimitHex := tx.GasLimit
	if gasLimitHex == "" {
		gasLimitHex = tx.Gas
	}
	gasLimit := hexFieldToUint64(ctx, "gasLimit", gasLimitHex)
	gasPrice := hexFieldToUint64(ctx, "gasPrice", tx.GasPrice)
	nonce := hexFieldToUint64(ctx, "nonce", tx.Nonce)

	callData := DecodeCallData(tx.Data, tx.To, reg)

	switch callData.Kind {
	case CallPlainTransfer:
		nativeAsset := resolveAsset(reg, "")
		value := amounts.WeiToEther(hexFieldToBig(ctx, "value", tx.Value))
		nativeAmount, nativeAmountDisplay := amounts.NativeDisplay(value, nativeAsset.PriceValue(), nativeCurrency)

		return &DisplayDetails{
			Kind:        DisplayTransaction,
			TimestampMs: timestampMs,
			Transaction: &TransactionDisplay{
				Asset:               nativeAsset,
				From:                tx.From,
				To:                  tx.To,
				Value:               value,
				NativeAmount:        nativeAmount,
				NativeAmountDisplay: nativeAmountDisplay,
				GasLimit:            gasLimit,
				GasPrice:            gasPrice,
				Nonce:               nonce,
			},
		}

	case CallTokenTransfer:
		value := amounts.RawToDecimal(callData.RawAmount, callData.Asset.Decimals)
		nativeAmount, nativeAmountDisplay := amounts.NativeDisplay(value, callData.Asset.PriceValue(), nativeCurrency)

		return &DisplayDetails{
			Kind:        DisplayTransaction,
			TimestampMs: timestampMs,
			Transaction: &TransactionDisplay{
				Asset: callData.Asset,
				From:  tx.From,
				// the payload's to is the token contract; the actual
				// recipient comes from the decoded arguments
				To:                  callData.Recipient,
				Value:               value,
				NativeAmount:        nativeAmount,
				NativeAmountDisplay: nativeAmountDisplay,
				GasLimit:            gasLimit,
				GasPrice:            gasPrice,
				Nonce:               nonce,
			},
		}

	default: // CallRaw
		value := decimal.Zero
		if tx.Value != "" {
			value = amounts.WeiToEther(hexFieldToBig(ctx, "value", tx.Value))
		}

		return &DisplayDetails{
			Kind:        DisplayRawCall,
			TimestampMs: timestampMs,
			RawCall: &RawCallDisplay{
				Data:     callData.Data,
				From:     tx.From,
				To:       tx.To,
				Value:    value,
				GasLimit: gasLimit,
				GasPrice: gasPrice,
				Nonce:    nonce,
			},
		}
	}
}

// timestampFromID extracts the millisecond timestamp embedded in the leading
// digits of a numeric request id, falling back to the wall clock when the id
// is absent or follows a different scheme.
func (s *service) timestampFromID(id json.RawMessage) int64 {
	digits := strings.TrimSpace(strings.Trim(string(id), `"`))
	if len(digits) > timestampSuffixLength && isDigits(digits) {
		if ms, err := strconv.ParseInt(digits[:len(digits)-timestampSuffixLength], 10, 64); err == nil {
			return ms
		}
	}
	return s.now().UnixMilli()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// paramAsString returns params[i] as a JSON string, reporting false when the
// param is missing or not a string.
func paramAsString(req *RawRequest, i int) (string, bool) {
	if len(req.Params) <= i {
		return "", false
	}
	var s string
	if err := json.Unmarshal(req.Params[i], &s); err != nil {
		return "", false
	}
	return s, true
}

// typedDataMessageJSON extracts the message field of a typed-data payload,
// which arrives either as an object or as a JSON-encoded string, and
// re-serializes it with stable key order.
func typedDataMessageJSON(param json.RawMessage) (string, bool) {
	var asString string
	if err := json.Unmarshal(param, &asString); err == nil {
		param = json.RawMessage(asString)
	}

	var typed struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(param, &typed); err != nil || typed.Message == nil {
		return "", false
	}

	var value interface{}
	if err := json.Unmarshal(typed.Message, &value); err != nil {
		return "", false
	}
	canonical, err := json.Marshal(value)
	if err != nil {
		return "", false
	}
	return string(canonical), true
}

// hexFieldToBig decodes a hex integer field, degrading to zero on malformed
// input so a display can still be produced.
func hexFieldToBig(ctx context.Context, field string, value string) *big.Int {
	v, err := amounts.HexToBig(value)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("field", field).Msg("Malformed hex field, defaulting to zero")
		return new(big.Int)
	}
	return v
}

func hexFieldToUint64(ctx context.Context, field string, value string) uint64 {
	v, err := amounts.HexToUint64(value)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("field", field).Msg("Malformed hex field, defaulting to zero")
		return 0
	}
	return v
}
