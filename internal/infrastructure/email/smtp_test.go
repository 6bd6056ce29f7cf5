package email

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/eventora/eventora/internal/application/order/dto"
	"github.com/eventora/eventora/internal/shared/logger"
)

type captureDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *captureDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func newTestService(d dialer) *SMTPEmailService {
	return &SMTPEmailService{
		fromAddress: "tickets@eventora.local",
		fromName:    "Eventora",
		dialer:      d,
	}
}

func confirmation() dto.ConfirmationMessage {
	return dto.ConfirmationMessage{
		To:            "ana@example.com",
		RecipientName: "Ana <Silva>",
		OrderID:       42,
		EventTitle:    "Noite de Fado",
		EventStart:    time.Date(2026, 11, 20, 21, 0, 0, 0, time.UTC),
		Timezone:      "UTC",
		Total:         "39.98 EUR",
		TicketNumbers: []string{"EVT-aB3xY9", "EVT-Qw7Er2"},
	}
}

func TestSendOrderConfirmation(t *testing.T) {
	d := &captureDialer{}
	svc := newTestService(d)

	require.NoError(t, svc.SendOrderConfirmation(context.Background(), confirmation()))
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"ana@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Your tickets for Noite de Fado"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "EVT-aB3xY9")
	assert.Contains(t, raw, "EVT-Qw7Er2")
	assert.Contains(t, raw, "39.98 EUR")
	assert.Contains(t, raw, "Fri, 20 Nov 2026 21:00 UTC")
	assert.Contains(t, raw, "Ana &lt;Silva&gt;")
}

func TestSendOrderConfirmation_Errors(t *testing.T) {
	t.Run("missing recipient", func(t *testing.T) {
		d := &captureDialer{}
		msg := confirmation()
		msg.To = ""
		assert.Error(t, newTestService(d).SendOrderConfirmation(context.Background(), msg))
		assert.Empty(t, d.sent)
	})

	t.Run("dial failure", func(t *testing.T) {
		d := &captureDialer{err: errors.New("connection refused")}
		err := newTestService(d).SendOrderConfirmation(context.Background(), confirmation())
		assert.ErrorContains(t, err, "failed to send email")
	})

	t.Run("cancelled context", func(t *testing.T) {
		d := &captureDialer{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, newTestService(d).SendOrderConfirmation(ctx, confirmation()), context.Canceled)
		assert.Empty(t, d.sent)
	})
}

func TestFormatEventTime_FallsBackToUTC(t *testing.T) {
	start := time.Date(2026, 11, 20, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, "Fri, 20 Nov 2026 21:00 UTC", formatEventTime(start, "Not/AZone"))
}

func TestNopEmailService(t *testing.T) {
	svc := NewNopEmailService(logger.NewNop())
	assert.NoError(t, svc.SendOrderConfirmation(context.Background(), confirmation()))
}
