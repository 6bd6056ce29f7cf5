package webhook

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/application/user/dto"
	"github.com/eventora/eventora/internal/application/user/usecases"
	"github.com/eventora/eventora/internal/infrastructure/auth"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/testutil"
	"github.com/eventora/eventora/internal/shared/errors"
)

var testSecret = "whsec_" + base64.StdEncoding.EncodeToString([]byte("identity-test-key"))

type mockSyncIdentityUC struct {
	calls []usecases.SyncIdentityCommand
	err   error
}

func (m *mockSyncIdentityUC) Execute(_ context.Context, cmd usecases.SyncIdentityCommand) (*dto.UserResponse, bool, error) {
	m.calls = append(m.calls, cmd)
	if m.err != nil {
		return nil, false, m.err
	}
	return &dto.UserResponse{ID: 1, ExternalID: cmd.ExternalID, Email: cmd.Email}, len(m.calls) == 1, nil
}

type mockDeleteIdentityUC struct {
	deleted []string
}

func (m *mockDeleteIdentityUC) Execute(_ context.Context, externalID string) error {
	m.deleted = append(m.deleted, externalID)
	return nil
}

type fixture struct {
	handler *IdentityHandler
	sync    *mockSyncIdentityUC
	del     *mockDeleteIdentityUC
	signer  *auth.WebhookVerifier
	sent    int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	signer, err := auth.NewWebhookVerifier(testSecret)
	require.NoError(t, err)
	f := &fixture{sync: &mockSyncIdentityUC{}, del: &mockDeleteIdentityUC{}, signer: signer}
	f.handler = NewIdentityHandler(signer, auth.NewMemoryDeliveryGuard(time.Minute), f.sync, f.del, testutil.NewMockLogger())
	return f
}

// post sends event as a fresh delivery.
func (f *fixture) post(t *testing.T, event interface{}, sign bool) int {
	t.Helper()
	f.sent++
	return f.deliver(t, fmt.Sprintf("msg_%d", f.sent), time.Now(), event, sign)
}

func (f *fixture) deliver(t *testing.T, msgID string, at time.Time, event interface{}, sign bool) int {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)

	c, w := testutil.NewRawTestContext(http.MethodPost, "/webhooks/identity", body)
	if sign {
		headers, err := f.signer.SignedHeaders(msgID, at, body)
		require.NoError(t, err)
		for name := range headers {
			c.Request.Header.Set(name, headers.Get(name))
		}
	}
	f.handler.HandleIdentityEvent(c)
	return w.Code
}

func userEvent(eventType string) IdentityEvent {
	return IdentityEvent{
		Type: eventType,
		Data: identityData{
			ID:                    "user_2abc",
			PrimaryEmailAddressID: "idn_2",
			EmailAddresses: []emailAddress{
				{ID: "idn_1", EmailAddress: "old@example.com"},
				{ID: "idn_2", EmailAddress: "ada@example.com"},
			},
			FirstName: "Ada",
			LastName:  "Lovelace",
		},
	}
}

func TestIdentityHandler_CreatedSyncsPrimaryEmail(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.post(t, userEvent(EventUserCreated), true))

	require.Len(t, f.sync.calls, 1)
	assert.Equal(t, usecases.SyncIdentityCommand{
		ExternalID: "user_2abc",
		Email:      "ada@example.com",
		FirstName:  "Ada",
		LastName:   "Lovelace",
	}, f.sync.calls[0])
}

func TestIdentityHandler_UpdatedSyncsAgain(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.post(t, userEvent(EventUserCreated), true))
	assert.Equal(t, http.StatusOK, f.post(t, userEvent(EventUserUpdated), true))

	assert.Len(t, f.sync.calls, 2)
}

func TestIdentityHandler_Deleted(t *testing.T) {
	f := newFixture(t)

	event := IdentityEvent{Type: EventUserDeleted, Data: identityData{ID: "user_2abc"}}
	assert.Equal(t, http.StatusOK, f.post(t, event, true))

	assert.Equal(t, []string{"user_2abc"}, f.del.deleted)
	assert.Empty(t, f.sync.calls)
}

func TestIdentityHandler_RejectsBadSignature(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusBadRequest, f.post(t, userEvent(EventUserCreated), false))
	assert.Empty(t, f.sync.calls)
}

func TestIdentityHandler_IgnoresMissingPrimaryEmail(t *testing.T) {
	f := newFixture(t)

	event := userEvent(EventUserCreated)
	event.Data.PrimaryEmailAddressID = "idn_missing"
	assert.Equal(t, http.StatusOK, f.post(t, event, true))
	assert.Empty(t, f.sync.calls)
}

func TestIdentityHandler_IgnoresUnknownType(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.post(t, IdentityEvent{Type: "session.created"}, true))
	assert.Empty(t, f.sync.calls)
	assert.Empty(t, f.del.deleted)
}

func TestIdentityHandler_SyncFailure(t *testing.T) {
	f := newFixture(t)
	f.sync.err = errors.NewValidationError("invalid email")

	assert.Equal(t, http.StatusBadRequest, f.post(t, userEvent(EventUserCreated), true))
}

func TestIdentityHandler_StoresUsernameAndPhone(t *testing.T) {
	f := newFixture(t)

	event := userEvent(EventUserCreated)
	event.Data.Username = "ada"
	event.Data.PrimaryPhoneNumberID = "phn_2"
	event.Data.PhoneNumbers = []phoneNumber{
		{ID: "phn_1", PhoneNumber: "+15550001"},
		{ID: "phn_2", PhoneNumber: "+15550002"},
	}
	assert.Equal(t, http.StatusOK, f.post(t, event, true))

	require.Len(t, f.sync.calls, 1)
	assert.Equal(t, "ada", f.sync.calls[0].Username)
	assert.Equal(t, "+15550002", f.sync.calls[0].Phone)

	event.Data.PrimaryPhoneNumberID = ""
	assert.Equal(t, http.StatusOK, f.post(t, event, true))
	assert.Equal(t, "+15550001", f.sync.calls[1].Phone)
}

func TestIdentityHandler_ReplayedDeliveryIsNotApplied(t *testing.T) {
	f := newFixture(t)
	at := time.Now()
	event := IdentityEvent{Type: EventUserDeleted, Data: identityData{ID: "user_2abc"}}

	assert.Equal(t, http.StatusOK, f.deliver(t, "msg_replay", at, event, true))
	assert.Equal(t, http.StatusOK, f.deliver(t, "msg_replay", at, event, true))

	assert.Equal(t, []string{"user_2abc"}, f.del.deleted)
}

func TestIdentityHandler_RejectsStaleDelivery(t *testing.T) {
	f := newFixture(t)

	code := f.deliver(t, "msg_old", time.Now().Add(-time.Hour), userEvent(EventUserCreated), true)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Empty(t, f.sync.calls)
}

func TestIdentityHandler_FailedDeliveryCanBeRetried(t *testing.T) {
	f := newFixture(t)
	at := time.Now()
	f.sync.err = errors.NewInternalError("database unavailable")

	assert.Equal(t, http.StatusInternalServerError, f.deliver(t, "msg_retry", at, userEvent(EventUserCreated), true))

	f.sync.err = nil
	assert.Equal(t, http.StatusOK, f.deliver(t, "msg_retry", at, userEvent(EventUserCreated), true))
	assert.Len(t, f.sync.calls, 2)
}
