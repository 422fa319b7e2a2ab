package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"patient-intake-router/internal/router"
	"patient-intake-router/internal/routing"
	pkgLog "patient-intake-router/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers a reply to a chat. *telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	l           pkgLog.Logger
	router      router.Router
	cfg         *routing.Configuration
	bot         Sender
	secretToken string
	timeout     time.Duration
}

// New creates a new Telegram delivery handler. An empty secretToken disables header verification.
func New(l pkgLog.Logger, r router.Router, cfg *routing.Configuration, bot Sender, secretToken string) Handler {
	return &handler{
		l:           l,
		router:      r,
		cfg:         cfg,
		bot:         bot,
		secretToken: secretToken,
		timeout:     processTimeout,
	}
}
