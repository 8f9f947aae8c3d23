package handler

import (
	"io"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/turtlefinance/meeting-sync/errors"
	"github.com/turtlefinance/meeting-sync/internal/usecase/pipeline"
)

// SignatureHeader carries the provider's HMAC tag over the raw body.
const SignatureHeader = "x-hub-signature"

// FirefliesWebhook handles incoming transcription notifications from the
// meeting provider.
type FirefliesWebhook struct {
	svc    pipeline.Service
	logger *zap.Logger
}

// NewFirefliesWebhook creates a new handler
func NewFirefliesWebhook(svc pipeline.Service, logger *zap.Logger) *FirefliesWebhook {
	return &FirefliesWebhook{svc: svc, logger: logger}
}

// Handle receives webhooks from Fireflies. The raw body is passed through
// untouched so the signature is verified over exactly the bytes sent.
func (h *FirefliesWebhook) Handle(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	signature := c.Request().Header.Get(SignatureHeader)

	if err := h.svc.HandleFirefliesWebhook(c.Request().Context(), body, signature); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "accepted"})
}
