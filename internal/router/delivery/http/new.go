package http

import (
	"github.com/gin-gonic/gin"

	"patient-intake-router/internal/router"
	"patient-intake-router/internal/routing"
	"patient-intake-router/pkg/log"
)

// Handler is the public interface for the routing HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
	DepartmentDetail(c *gin.Context)
	IntentPrerequisites(c *gin.Context)
}

type handler struct {
	l      log.Logger
	router router.Router
	cfg    *routing.Configuration
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the routing domain.
func New(l log.Logger, r router.Router, cfg *routing.Configuration) *handler {
	return &handler{
		l:      l,
		router: r,
		cfg:    cfg,
	}
}
