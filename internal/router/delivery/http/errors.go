package http

import (
	"net/http"

	"patient-intake-router/pkg/response"
)

var (
	errInvalidBody        = response.NewHTTPError(http.StatusBadRequest, `request body must be a JSON object with a "text" field`)
	errEmptyParam         = response.NewHTTPError(http.StatusBadRequest, "path parameter is required")
	errDepartmentNotFound = response.NewHTTPError(http.StatusNotFound, "department not found")
)
