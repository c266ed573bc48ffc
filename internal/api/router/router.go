package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github/chapool/dapp-gateway/internal/api"
	"github/chapool/dapp-gateway/internal/api/handlers"
	"github/chapool/dapp-gateway/internal/api/httperrors"
	"github/chapool/dapp-gateway/internal/api/middleware"
)

// Init attaches the middleware stack and all routes to a fresh echo instance
// on the server.
func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = false
	s.Echo.HideBanner = true
	s.Echo.HidePort = true

	s.Echo.HTTPErrorHandler = httperrors.HTTPErrorHandler(s.Config.Echo.HideInternalServerErrorDetails)

	s.Echo.Pre(echomiddleware.RemoveTrailingSlash())

	s.Echo.Use(echomiddleware.Recover())
	s.Echo.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	s.Echo.Use(middleware.Logger(s.Config.Logger.Level))
	s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: s.Metrics.Registry,
	}))

	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		Root: s.Echo.Group(""),

		// management endpoints are guarded by the mgmt-secret query param
		// unless no secret is configured (local development)
		Management: s.Echo.Group("/-", echomiddleware.KeyAuthWithConfig(echomiddleware.KeyAuthConfig{
			KeyLookup: "query:mgmt-secret",
			Validator: func(key string, c echo.Context) (bool, error) {
				return key == s.Config.Management.Secret, nil
			},
			Skipper: func(c echo.Context) bool {
				return s.Config.Management.Secret == ""
			},
		})),

		APIV1Requests: s.Echo.Group("/api/v1/requests"),
	}

	handlers.AttachAllRoutes(s)
}
