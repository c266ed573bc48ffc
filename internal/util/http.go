package util

import (
	"net/http"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github/chapool/dapp-gateway/internal/api/httperrors"
	"github/chapool/dapp-gateway/internal/types"
)

// BindAndValidateBody binds the JSON request body to v and runs its
// go-openapi validation, converting schema violations into a public
// HTTPValidationError.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("echo binder is not a DefaultBinder")
	}

	if err := binder.BindBody(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind request body")
		return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Malformed request body", err)
	}

	return validatePayload(c, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	var compositeError *openapierrors.CompositeError
	if errors.As(err, &compositeError) {
		LogFromEchoContext(c).Debug().AnErr("validation_error", compositeError).Msg("Payload did not match schema")
		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			"Payload validation failed",
			formatValidationErrors(compositeError.Errors),
		)
	}

	LogFromEchoContext(c).Debug().Err(err).Msg("Failed to validate payload")
	return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Payload validation failed", err)
}

func formatValidationErrors(errs []error) []*types.HTTPValidationErrorDetail {
	details := make([]*types.HTTPValidationErrorDetail, 0, len(errs))
	for _, err := range errs {
		var validationError *openapierrors.Validation
		if errors.As(err, &validationError) {
			details = append(details, &types.HTTPValidationErrorDetail{
				Key:   swag.String(validationError.Name),
				In:    swag.String(validationError.In),
				Error: swag.String(validationError.Error()),
			})
			continue
		}
		details = append(details, &types.HTTPValidationErrorDetail{
			Key:   swag.String("unknown"),
			In:    swag.String("body"),
			Error: swag.String(err.Error()),
		})
	}
	return details
}
