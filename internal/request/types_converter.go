package request

import (
	"github.com/go-openapi/swag"

	"github/chapool/dapp-gateway/internal/asset"
	"github/chapool/dapp-gateway/internal/types"
)

// ToTypes converts the interpreter output into the public wire shape.
func (d *DisplayDetails) ToTypes() *types.PostDisplayDetailsResponse {
	if d == nil {
		return &types.PostDisplayDetailsResponse{Kind: DisplayNone.String()}
	}

	res := &types.PostDisplayDetailsResponse{
		Kind:        d.Kind.String(),
		TimestampMs: d.TimestampMs,
	}

	switch d.Kind {
	case DisplayMessage:
		res.Message = &types.PublicMessageDisplay{Message: d.Message.Message}
	case DisplayTransaction:
		t := d.Transaction
		res.Transaction = &types.PublicTransactionDisplay{
			Asset:               assetToTypes(t.Asset),
			From:                t.From,
			To:                  t.To,
			Value:               t.Value.String(),
			NativeAmount:        t.NativeAmount.String(),
			NativeAmountDisplay: t.NativeAmountDisplay,
			GasLimit:            t.GasLimit,
			GasPrice:            t.GasPrice,
			Nonce:               t.Nonce,
		}
	case DisplayRawCall:
		r := d.RawCall
		res.RawCall = &types.PublicRawCallDisplay{
			Data:     r.Data,
			From:     r.From,
			To:       r.To,
			Value:    r.Value.String(),
			GasLimit: r.GasLimit,
			GasPrice: r.GasPrice,
			Nonce:    r.Nonce,
		}
	case DisplayNone:
		// nothing actionable, no variant payload
	}

	return res
}

func assetToTypes(a *asset.Asset) *types.PublicAsset {
	if a == nil {
		return nil
	}

	res := &types.PublicAsset{
		Symbol:   a.Symbol,
		Decimals: a.Decimals,
	}
	if a.Address.Valid {
		res.Address = swag.String(a.Address.String)
	}
	if a.Price != nil {
		res.Price = swag.String(a.Price.Value.String())
	}
	return res
}
