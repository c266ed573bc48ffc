package asset

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aarondl/null/v8"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Registry resolves assets by contract address. An empty contract address
// resolves to the chain's native asset. A miss returns nil; callers are
// expected to substitute Unknown rather than fail.
//
// Implementations must be safe for concurrent Lookup calls.
type Registry interface {
	// Lookup returns the asset for contractAddress, or nil when unknown.
	Lookup(contractAddress string) *Asset
}

type registry struct {
	native    *Asset
	byAddress map[string]*Asset
}

// NewRegistry builds an in-memory registry snapshot. Token addresses are
// keyed case-insensitively.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewRegistry(native *Asset, tokens []*Asset) Registry {
	byAddress := make(map[string]*Asset, len(tokens))
	for _, t := range tokens {
		if t == nil || !t.Address.Valid {
			continue
		}
		byAddress[strings.ToLower(t.Address.String)] = t
	}
	return &registry{
		native:    native,
		byAddress: byAddress,
	}
}

// NewDefaultRegistry returns a registry containing only the native asset with
// no price information. It backs offline tooling when no asset file is given.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewDefaultRegistry() Registry {
	return NewRegistry(&Asset{Symbol: "ETH", Decimals: 18}, nil)
}

func (r *registry) Lookup(contractAddress string) *Asset {
	if contractAddress == "" {
		return r.native
	}
	return r.byAddress[strings.ToLower(contractAddress)]
}

// registryFile is the on-disk TOML shape of an asset snapshot.
type registryFile struct {
	Native registryEntry   `toml:"native"`
	Tokens []registryEntry `toml:"tokens"`
}

type registryEntry struct {
	Address  string `toml:"address"`
	Symbol   string `toml:"symbol"`
	Decimals int32  `toml:"decimals"`
	Price    string `toml:"price"`
}

// NewRegistryFromFile loads an asset registry snapshot from a TOML file.
// Prices are optional; entries without one resolve with no price, which the
// interpreter treats as "price unknown".
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewRegistryFromFile(path string) (Registry, error) {
	var file registryFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to load asset registry from %q", path)
	}

	if file.Native.Symbol == "" {
		return nil, errors.Errorf("asset registry %q has no native asset", path)
	}

	native, err := file.Native.toAsset()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid native asset in %q", path)
	}

	tokens := make([]*Asset, 0, len(file.Tokens))
	for _, entry := range file.Tokens {
		if entry.Address == "" {
			return nil, errors.Errorf("token %q in %q has no contract address", entry.Symbol, path)
		}
		token, err := entry.toAsset()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid token %q in %q", entry.Symbol, path)
		}
		tokens = append(tokens, token)
	}

	log.Debug().
		Str("path", path).
		Int("tokens", len(tokens)).
		Str("native_symbol", native.Symbol).
		Msg("Loaded asset registry snapshot")

	return NewRegistry(native, tokens), nil
}

func (e registryEntry) toAsset() (*Asset, error) {
	if e.Decimals < 0 {
		return nil, errors.Errorf("negative decimals %d", e.Decimals)
	}

	a := &Asset{
		Address:  null.NewString(e.Address, e.Address != ""),
		Symbol:   e.Symbol,
		Decimals: e.Decimals,
	}

	if e.Price != "" {
		value, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid price %q", e.Price)
		}
		a.Price = &Price{Value: value}
	}

	return a, nil
}
