package api

import (
	"github/chapool/dapp-gateway/internal/asset"
	"github/chapool/dapp-gateway/internal/config"
	"github/chapool/dapp-gateway/internal/metrics"
	"github/chapool/dapp-gateway/internal/request"
)

// NewAssetRegistry loads the asset snapshot configured for the server.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewAssetRegistry(cfg config.Server) (asset.Registry, error) {
	return asset.NewRegistryFromFile(cfg.Assets.Path)
}

// NewInterpreter creates the request interpreter with metrics attached.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewInterpreter(metricsService *metrics.Service) request.Service {
	return request.NewService(metricsService)
}
