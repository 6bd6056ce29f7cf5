package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	svix "github.com/svix/svix-webhooks/go"

	"github.com/eventora/eventora/internal/shared/constants"
)

const webhookSecretPrefix = "whsec_"

var ErrWebhookNotConfigured = errors.New("webhook secret is not configured")

// WebhookVerifier checks svix-signed identity webhooks. The signature binds
// the message ID, the timestamp and the body; timestamps older or newer than
// five minutes are rejected.
type WebhookVerifier struct {
	wh *svix.Webhook
}

// NewWebhookVerifier accepts the provider's base64 "whsec_" secret. Any other
// non-empty value is used as the raw signing key.
func NewWebhookVerifier(secret string) (*WebhookVerifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return &WebhookVerifier{}, nil
	}

	var (
		wh  *svix.Webhook
		err error
	)
	if strings.HasPrefix(secret, webhookSecretPrefix) {
		wh, err = svix.NewWebhook(secret)
	} else {
		wh, err = svix.NewWebhookRaw([]byte(secret))
	}
	if err != nil {
		return nil, fmt.Errorf("invalid webhook secret: %w", err)
	}
	return &WebhookVerifier{wh: wh}, nil
}

// Verify returns the delivery's message ID once body and headers check out.
func (v *WebhookVerifier) Verify(body []byte, headers http.Header) (string, error) {
	if v.wh == nil {
		return "", ErrWebhookNotConfigured
	}
	if err := v.wh.Verify(body, headers); err != nil {
		return "", err
	}
	return headers.Get(constants.HeaderWebhookID), nil
}

// SignedHeaders returns the headers the provider sends with body.
func (v *WebhookVerifier) SignedHeaders(msgID string, at time.Time, body []byte) (http.Header, error) {
	if v.wh == nil {
		return nil, ErrWebhookNotConfigured
	}
	signature, err := v.wh.Sign(msgID, at, body)
	if err != nil {
		return nil, err
	}
	h := http.Header{}
	h.Set(constants.HeaderWebhookID, msgID)
	h.Set(constants.HeaderWebhookTimestamp, strconv.FormatInt(at.Unix(), 10))
	h.Set(constants.HeaderWebhookSignature, signature)
	return h, nil
}
