package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"patient-intake-router/config"
	"patient-intake-router/internal/prompt"
	"patient-intake-router/internal/router"
	tgDelivery "patient-intake-router/internal/router/delivery/telegram"
	"patient-intake-router/internal/routing"
	"patient-intake-router/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	serviceName string

	// Routing domain
	router    router.Router
	routing   *routing.Configuration
	prompts   *prompt.Library
	rateLimit config.RateLimitConfig

	// Chat intake
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	ServiceName string

	// Routing domain
	Router    router.Router
	Routing   *routing.Configuration
	Prompts   *prompt.Library
	RateLimit config.RateLimitConfig

	// Chat intake (optional)
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		serviceName: cfg.ServiceName,
		router:      cfg.Router,
		routing:     cfg.Routing,
		prompts:     cfg.Prompts,
		rateLimit:   cfg.RateLimit,

		telegramHandler: cfg.TelegramHandler,
	}
	if srv.serviceName == "" {
		srv.serviceName = ServiceName
	}
	if srv.prompts == nil {
		srv.prompts = prompt.Empty()
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.router == nil {
		return errors.New("router is required")
	}
	if srv.routing == nil {
		return errors.New("routing configuration is required")
	}
	return nil
}

// Handler exposes the engine for tests and embedding.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
