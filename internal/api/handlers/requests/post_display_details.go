package requests

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/dapp-gateway/internal/api"
	"github/chapool/dapp-gateway/internal/request"
	"github/chapool/dapp-gateway/internal/types"
	"github/chapool/dapp-gateway/internal/util"
)

func PostDisplayDetailsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Requests.POST("/display-details", postDisplayDetailsHandler(s))
}

// postDisplayDetailsHandler decodes a raw session request into a display
// record for the approval UI. The interpreter is total, so any well-formed
// body yields 200 with exactly one record variant; kind "none" signals an
// unsupported method the UI has nothing to show for.
func postDisplayDetailsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostDisplayDetailsPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		nativeCurrency := s.Config.Interpreter.NativeCurrency
		if body.NativeCurrency != "" {
			nativeCurrency = body.NativeCurrency
		}

		raw := &request.RawRequest{
			ID:     body.ID,
			Method: swag.StringValue(body.Method),
			Params: body.Params,
		}

		details := s.Interpreter.DisplayDetails(ctx, raw, s.Assets, nativeCurrency)

		return c.JSON(http.StatusOK, details.ToTypes())
	}
}
