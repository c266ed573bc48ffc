package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/chapool/dapp-gateway/internal/api"
)

// statusNotReady mirrors Cloudflare's 521 to distinguish "not ready" from
// proper 5xx handler failures in probes and dashboards.
const statusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler is the readiness probe: all server components are
// initialized and the server can interpret requests.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
