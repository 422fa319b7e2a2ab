package response

import "net/http"

// HTTPError is an error that knows which status code it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError with the given status code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrNotFound        = NewHTTPError(http.StatusNotFound, "Not found")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
