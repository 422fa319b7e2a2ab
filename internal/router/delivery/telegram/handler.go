package telegram

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	pkgResponse "patient-intake-router/pkg/response"
	pkgTelegram "patient-intake-router/pkg/telegram"
)

// HandleWebhook acknowledges the update immediately and routes the message in the background,
// since Telegram expects a webhook response within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "%s: rejected update with invalid secret token", logPrefixWebhook)
			pkgResponse.Error(c, errInvalidSecret, nil)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", logPrefixWebhook, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	// Keep request-scoped values such as the request id, drop the cancellation.
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		procCtx, cancel := context.WithTimeout(bgCtx, h.timeout)
		defer cancel()
		if err := h.processMessage(procCtx, msg); err != nil {
			h.l.Errorf(procCtx, "%s: background processMessage failed: %v", logPrefixWebhook, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage routes a single Telegram message and replies with the outcome.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case commandStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgWelcome)
	case commandHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	}

	decision := h.router.ProcessUserInput(ctx, text)
	h.l.Infof(ctx, "%s: chat=%d status=%s", logPrefixProcess, msg.Chat.ID, decision.Status)

	return h.bot.SendMessage(ctx, msg.Chat.ID, h.formatReply(decision))
}
