package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github/chapool/dapp-gateway/internal/asset"
	"github/chapool/dapp-gateway/internal/config"
	"github/chapool/dapp-gateway/internal/metrics"
	"github/chapool/dapp-gateway/internal/request"
	"github/chapool/dapp-gateway/internal/util"
)

// Router groups the server's route namespaces.
type Router struct {
	Routes        []*echo.Route
	Root          *echo.Group
	Management    *echo.Group
	APIV1Requests *echo.Group
}

// Server is a central struct keeping all the dependencies. It is initialized
// with wire, which handles making the new instances of the components in the
// right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized
// after the InitNewServer* call.
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config      config.Server
	Metrics     *metrics.Service
	Assets      asset.Registry
	Interpreter request.Service
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be
// initialized separately; those must be labeled `wire:"-"` in Server.
func newServerWithComponents(
	cfg config.Server,
	metricsService *metrics.Service,
	assets asset.Registry,
	interpreter request.Service,
) *Server {
	return &Server{
		Config:      cfg,
		Metrics:     metricsService,
		Assets:      assets,
		Interpreter: interpreter,
	}
}

// NewServer returns a bare Server carrying only the config; every other
// component has to be attached before the server is Ready.
func NewServer(cfg config.Server) *Server {
	return &Server{
		Config: cfg,
	}
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
