package webhook

import (
	"context"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/application/user/usecases"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/utils"
)

const maxPayloadBytes = 1 << 20

const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// SignatureVerifier checks the provider's signature headers over the raw
// body and returns the delivery's message ID.
type SignatureVerifier interface {
	Verify(body []byte, headers http.Header) (string, error)
}

// DeliveryGuard remembers message IDs so a delivery is applied once.
type DeliveryGuard interface {
	Claim(ctx context.Context, id string) (bool, error)
	Release(ctx context.Context, id string) error
}

type emailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type phoneNumber struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

type identityData struct {
	ID                    string         `json:"id"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	EmailAddresses        []emailAddress `json:"email_addresses"`
	PrimaryPhoneNumberID  string         `json:"primary_phone_number_id"`
	PhoneNumbers          []phoneNumber  `json:"phone_numbers"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	ImageURL              string         `json:"image_url"`
	Username              string         `json:"username"`
}

// IdentityEvent is the payload posted by the identity provider.
type IdentityEvent struct {
	Type string       `json:"type"`
	Data identityData `json:"data"`
}

func (d identityData) primaryEmail() string {
	for _, e := range d.EmailAddresses {
		if e.ID == d.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	return ""
}

// primaryPhone falls back to the first number when none is marked primary.
func (d identityData) primaryPhone() string {
	for _, p := range d.PhoneNumbers {
		if p.ID == d.PrimaryPhoneNumberID {
			return p.PhoneNumber
		}
	}
	if len(d.PhoneNumbers) > 0 {
		return d.PhoneNumbers[0].PhoneNumber
	}
	return ""
}

// IdentityHandler mirrors provider identities into local users.
type IdentityHandler struct {
	verifier         SignatureVerifier
	deliveries       DeliveryGuard
	syncIdentityUC   usecases.SyncIdentityExecutor
	deleteIdentityUC usecases.DeleteIdentityExecutor
	logger           logger.Interface
}

func NewIdentityHandler(
	verifier SignatureVerifier,
	deliveries DeliveryGuard,
	syncIdentityUC usecases.SyncIdentityExecutor,
	deleteIdentityUC usecases.DeleteIdentityExecutor,
	log logger.Interface,
) *IdentityHandler {
	return &IdentityHandler{
		verifier:         verifier,
		deliveries:       deliveries,
		syncIdentityUC:   syncIdentityUC,
		deleteIdentityUC: deleteIdentityUC,
		logger:           log,
	}
}

// HandleIdentityEvent handles POST /webhooks/identity
func (h *IdentityHandler) HandleIdentityEvent(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadBytes))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read webhook payload")
		return
	}

	msgID, err := h.verifier.Verify(body, c.Request.Header)
	if err != nil {
		h.logger.Warnw("identity webhook signature rejected", "ip", c.ClientIP(), "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "error verifying webhook signature")
		return
	}

	var event IdentityEvent
	if err := sonic.Unmarshal(body, &event); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid webhook payload")
		return
	}

	ctx := c.Request.Context()
	claimed, err := h.deliveries.Claim(ctx, msgID)
	if err != nil {
		// signature and timestamp already passed
		h.logger.Warnw("webhook delivery guard unavailable", "message_id", msgID, "error", err)
		claimed = true
	}
	if !claimed {
		h.logger.Warnw("duplicate identity webhook ignored", "message_id", msgID, "type", event.Type)
		utils.SuccessResponse(c, http.StatusOK, "already processed", nil)
		return
	}

	switch event.Type {
	case EventUserCreated, EventUserUpdated:
		email := event.Data.primaryEmail()
		if event.Data.ID == "" || email == "" {
			// acknowledged so the provider does not retry
			h.logger.Warnw("identity event without primary email", "external_id", event.Data.ID)
			utils.SuccessResponse(c, http.StatusOK, "no primary email", nil)
			return
		}

		result, created, err := h.syncIdentityUC.Execute(ctx, usecases.SyncIdentityCommand{
			ExternalID: event.Data.ID,
			Email:      email,
			FirstName:  event.Data.FirstName,
			LastName:   event.Data.LastName,
			ImageURL:   event.Data.ImageURL,
			Username:   event.Data.Username,
			Phone:      event.Data.primaryPhone(),
		})
		if err != nil {
			h.logger.Errorw("failed to sync identity", "external_id", event.Data.ID, "error", err)
			h.release(ctx, msgID)
			utils.ErrorResponseWithError(c, err)
			return
		}
		h.logger.Infow("identity synced", "external_id", event.Data.ID, "user_id", result.ID, "created", created)

	case EventUserDeleted:
		if event.Data.ID != "" {
			if err := h.deleteIdentityUC.Execute(ctx, event.Data.ID); err != nil {
				h.logger.Errorw("failed to delete identity", "external_id", event.Data.ID, "error", err)
				h.release(ctx, msgID)
				utils.ErrorResponseWithError(c, err)
				return
			}
		}

	default:
		h.logger.Debugw("ignored identity event", "type", event.Type)
	}

	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// release lets the provider's retry of a failed delivery through.
func (h *IdentityHandler) release(ctx context.Context, msgID string) {
	if err := h.deliveries.Release(ctx, msgID); err != nil {
		h.logger.Warnw("failed to release webhook delivery", "message_id", msgID, "error", err)
	}
}
