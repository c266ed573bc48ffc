package handlers

import (
	"github.com/labstack/echo/v4"

	"github/chapool/dapp-gateway/internal/api"
	"github/chapool/dapp-gateway/internal/api/handlers/common"
	"github/chapool/dapp-gateway/internal/api/handlers/requests"
)

// AttachAllRoutes attaches all registered routes to the server's router.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetMetricsRoute(s),
		requests.PostDisplayDetailsRoute(s),
	}
}
