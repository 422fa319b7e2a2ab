package middleware

const (
	HeaderRequestID = "X-Request-ID"

	logPrefixRateLimit = "internal.middleware.RateLimit"

	maxTrackedClients = 1000
)
