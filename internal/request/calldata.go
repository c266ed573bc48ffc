package request

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github/chapool/dapp-gateway/internal/amounts"
	"github/chapool/dapp-gateway/internal/asset"
)

// transferMethodID is the 4-byte selector of ERC-20 transfer(address,uint256),
// 0xa9059cbb. It is the only selector the decoder recognizes; every other
// call, including transferFrom and approvals, is surfaced as a raw call.
var transferMethodID = crypto.Keccak256([]byte("transfer(address,uint256)"))[:4]

const (
	selectorLength = 4
	wordLength     = 32
	// transferCallLength is selector + address word + amount word.
	transferCallLength = selectorLength + 2*wordLength
)

// CallDataKind discriminates the decoder outcomes.
type CallDataKind int

const (
	// CallPlainTransfer is an empty data field: a native value transfer to
	// the payload's own target address.
	CallPlainTransfer CallDataKind = iota
	// CallTokenTransfer is a recognized ERC-20 transfer call.
	CallTokenTransfer
	// CallRaw is any other non-empty data.
	CallRaw
)

// CallData is the decoded classification of a transaction's data field.
type CallData struct {
	Kind CallDataKind

	// Set for CallTokenTransfer.
	Asset     *asset.Asset
	Recipient string
	RawAmount *big.Int

	// Set for CallRaw.
	Data string
}

// DecodeCallData classifies a transaction's data field. It is total: data of
// any shape, including adversarial payloads shorter than a full argument
// word, degrades to CallRaw instead of failing, because a display must
// always be produced.
func DecodeCallData(data string, toAddress string, reg asset.Registry) CallData {
	trimmed := amounts.Strip0x(strings.TrimSpace(data))
	if trimmed == "" {
		return CallData{Kind: CallPlainTransfer}
	}

	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		// not valid hex; show it untouched rather than crash on dapp input
		return CallData{Kind: CallRaw, Data: data}
	}

	if len(raw) < transferCallLength || !bytes.Equal(raw[:selectorLength], transferMethodID) {
		return CallData{Kind: CallRaw, Data: data}
	}

	// Argument words are fixed 32-byte slots: the address is right-aligned in
	// word 1, the amount is a big-endian unsigned integer in word 2.
	addressWord := raw[selectorLength : selectorLength+wordLength]
	amountWord := raw[selectorLength+wordLength : transferCallLength]

	recipient := ethcommon.BytesToAddress(addressWord[wordLength-ethcommon.AddressLength:])
	rawAmount := new(big.Int).SetBytes(amountWord)

	return CallData{
		Kind:      CallTokenTransfer,
		Asset:     resolveAsset(reg, toAddress),
		Recipient: strings.ToLower(recipient.Hex()),
		RawAmount: rawAmount,
	}
}

// resolveAsset looks up contractAddress (empty for the native asset) and
// substitutes the unknown-asset placeholder on a miss; a registry miss is not
// an error.
func resolveAsset(reg asset.Registry, contractAddress string) *asset.Asset {
	if reg == nil {
		return asset.Unknown(contractAddress)
	}
	if a := reg.Lookup(contractAddress); a != nil {
		return a
	}
	return asset.Unknown(contractAddress)
}
