package telegram

import (
	"net/http"

	"patient-intake-router/pkg/response"
)

var errInvalidSecret = response.NewHTTPError(http.StatusUnauthorized, "invalid webhook secret")
