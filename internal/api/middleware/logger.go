package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger injects a request-scoped zerolog instance (tagged with the request
// id assigned by the RequestID middleware) into the request context and
// emits one line per completed request.
func Logger(level zerolog.Level) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.Logger.Level(level).With().
				Str("req_id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			res := c.Response()
			l.Info().
				Int("status", res.Status).
				Dur("duration", time.Since(start)).
				Int64("bytes_out", res.Size).
				Msg("Handled request")

			return nil
		}
	}
}
