// Package mail implements the booking notifier on top of an SMTP relay.
package mail

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"hallcms/config"
	"hallcms/internal/domain/entity"
	"hallcms/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// smtpNotifier sends booking alerts through a configured SMTP relay.
type smtpNotifier struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

// NewBookingNotifier builds the notifier from configuration. When SMTP is not
// configured it returns a no-op notifier so booking submission keeps working
// in environments without a relay.
func NewBookingNotifier(cfg *config.Config, logger *slog.Logger) service.BookingNotifier {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" || cfg.SMTP.NotificationEmail == "" {
		logger.Warn("SMTP not configured, booking notifications disabled")

		return &noopNotifier{}
	}

	return &smtpNotifier{cfg: cfg.SMTP, logger: logger}
}

// NotifyBookingCreated sends a notification email describing the new enquiry.
func (n *smtpNotifier) NotifyBookingCreated(ctx context.Context, booking *entity.BookingEnquiry) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(n.cfg.FromName, n.cfg.FromEmail); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(n.cfg.NotificationEmail); err != nil {
		return errors.Wrap(err, "invalid notification address")
	}

	msg.Subject(fmt.Sprintf("New booking enquiry from %s", booking.Name))
	msg.SetBodyString(gomail.TypeTextPlain, plainBody(booking))
	msg.AddAlternativeString(gomail.TypeTextHTML, htmlBody(booking))

	opts := []gomail.Option{
		gomail.WithPort(n.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.cfg.Username),
		gomail.WithPassword(n.cfg.Password),
	}
	client, err := gomail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return errors.Wrap(err, "failed to create SMTP client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send booking notification")
	}

	return nil
}

func plainBody(b *entity.BookingEnquiry) string {
	var sb strings.Builder
	sb.WriteString("A new booking enquiry has been submitted.\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.Name)
	fmt.Fprintf(&sb, "Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "Phone: %s\n", b.Phone)
	fmt.Fprintf(&sb, "Event type: %s\n", b.EventType)
	fmt.Fprintf(&sb, "Date: %s\n", b.Date)
	fmt.Fprintf(&sb, "Guests: %d\n", b.Guests)
	if b.Message != "" {
		fmt.Fprintf(&sb, "Message: %s\n", b.Message)
	}

	return sb.String()
}

func htmlBody(b *entity.BookingEnquiry) string {
	row := func(label, value string) string {
		return fmt.Sprintf("<tr><td><strong>%s</strong></td><td>%s</td></tr>",
			label, html.EscapeString(value))
	}

	var sb strings.Builder
	sb.WriteString("<h2>New booking enquiry</h2><table>")
	sb.WriteString(row("Name", b.Name))
	sb.WriteString(row("Email", b.Email))
	sb.WriteString(row("Phone", b.Phone))
	sb.WriteString(row("Event type", b.EventType))
	sb.WriteString(row("Date", b.Date))
	sb.WriteString(row("Guests", fmt.Sprintf("%d", b.Guests)))
	if b.Message != "" {
		sb.WriteString(row("Message", b.Message))
	}
	sb.WriteString("</table>")

	return sb.String()
}

// noopNotifier drops notifications. Used when SMTP is not configured.
type noopNotifier struct{}

func (n *noopNotifier) NotifyBookingCreated(_ context.Context, _ *entity.BookingEnquiry) error {
	return nil
}
