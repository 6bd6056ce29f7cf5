package email

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/eventora/eventora/internal/application/order/dto"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/config"
)

const eventTimeLayout = "Mon, 02 Jan 2006 15:04 MST"

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPEmailService sends transactional mail through an SMTP relay.
type SMTPEmailService struct {
	fromAddress string
	fromName    string
	dialer      dialer
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// SendOrderConfirmation mails the buyer their ticket numbers.
func (s *SMTPEmailService) SendOrderConfirmation(ctx context.Context, msg dto.ConfirmationMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return fmt.Errorf("confirmation for order %d has no recipient", msg.OrderID)
	}

	subject := fmt.Sprintf("Your tickets for %s", msg.EventTitle)
	when := formatEventTime(msg.EventStart, msg.Timezone)

	var plain strings.Builder
	fmt.Fprintf(&plain, "Hi %s,\n\n", msg.RecipientName)
	fmt.Fprintf(&plain, "Your order #%d for %s is confirmed.\n", msg.OrderID, msg.EventTitle)
	fmt.Fprintf(&plain, "When: %s\n", when)
	fmt.Fprintf(&plain, "Total: %s\n\n", msg.Total)
	plain.WriteString("Tickets:\n")
	for _, number := range msg.TicketNumbers {
		fmt.Fprintf(&plain, "  %s\n", number)
	}
	plain.WriteString("\nShow the ticket QR code at the entrance.\n")

	var body strings.Builder
	body.WriteString("<html><body>")
	fmt.Fprintf(&body, "<p>Hi %s,</p>", html.EscapeString(msg.RecipientName))
	fmt.Fprintf(&body, "<p>Your order #%d for <strong>%s</strong> is confirmed.</p>",
		msg.OrderID, html.EscapeString(msg.EventTitle))
	fmt.Fprintf(&body, "<p>When: %s<br>Total: %s</p>", html.EscapeString(when), html.EscapeString(msg.Total))
	body.WriteString("<ul>")
	for _, number := range msg.TicketNumbers {
		fmt.Fprintf(&body, "<li><code>%s</code></li>", html.EscapeString(number))
	}
	body.WriteString("</ul><p>Show the ticket QR code at the entrance.</p></body></html>")

	return s.sendEmail(msg.To, subject, body.String(), plain.String())
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// formatEventTime renders in the event's own zone, or the service display
// zone when the event has none or it does not load.
func formatEventTime(t time.Time, tz string) string {
	loc := biztime.Location()
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	return t.In(loc).Format(eventTimeLayout)
}
