package http

const logPrefixRoute = "internal.router.delivery.http.Route"
