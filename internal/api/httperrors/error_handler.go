package httperrors

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github/chapool/dapp-gateway/internal/types"
)

// HTTPErrorHandler converts every error escaping a handler into the public
// wire shape. Internal details are stripped when hideInternalServerErrorDetails
// is set so that adversarial payloads cannot probe the service.
func HTTPErrorHandler(hideInternalServerErrorDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code    int
			payload interface{}
		)

		var httpError *HTTPError
		var validationError *HTTPValidationError
		var echoError *echo.HTTPError

		switch {
		case errors.As(err, &validationError):
			code = int(swag.Int64Value(validationError.Code))
			payload = validationError
		case errors.As(err, &httpError):
			code = int(swag.Int64Value(httpError.Code))
			payload = httpError
		case errors.As(err, &echoError):
			code = echoError.Code
			title := http.StatusText(code)
			if msg, ok := echoError.Message.(string); ok && !hideInternalServerErrorDetails {
				title = msg
			}
			payload = NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, title)
		default:
			code = http.StatusInternalServerError
			if hideInternalServerErrorDetails {
				payload = NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
			} else {
				payload = NewHTTPErrorWithDetail(code, types.PublicHTTPErrorTypeGeneric, err.Error(), err)
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Int("status", code).Msg("Request failed")
		}

		if c.Response().Committed {
			return
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, payload)
		}

		if writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}
